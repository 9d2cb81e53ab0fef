package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/handlers"
)

// The role guard has its own tests; these exercise the handler behind it.
func newAdminApp(db *gorm.DB) *fiber.App {
	handler := handlers.NewAdminHandler(db)
	app := fiber.New()
	app.Get("/api/admin/questions", handler.ListQuestions)
	app.Post("/api/admin/questions", handler.CreateQuestion)
	return app
}

func createQuestion(t *testing.T, app *fiber.App, payload map[string]interface{}) int {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/admin/questions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func validQuestionPayload() map[string]interface{} {
	return map[string]interface{}{
		"q_date":         "2024-03-15",
		"question_text":  "Which planet is known as the red planet?",
		"option_a":       "Venus",
		"option_b":       "Mars",
		"option_c":       "Jupiter",
		"option_d":       "Saturn",
		"correct_option": "B",
		"points":         5,
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	db, _ := newMockDB(t)
	app := newAdminApp(db)

	t.Run("missing question text", func(t *testing.T) {
		payload := validQuestionPayload()
		delete(payload, "question_text")
		assert.Equal(t, fiber.StatusBadRequest, createQuestion(t, app, payload))
	})

	t.Run("missing option", func(t *testing.T) {
		payload := validQuestionPayload()
		delete(payload, "option_c")
		assert.Equal(t, fiber.StatusBadRequest, createQuestion(t, app, payload))
	})

	t.Run("malformed date", func(t *testing.T) {
		payload := validQuestionPayload()
		payload["q_date"] = "15/03/2024"
		assert.Equal(t, fiber.StatusBadRequest, createQuestion(t, app, payload))
	})

	t.Run("bad correct option", func(t *testing.T) {
		payload := validQuestionPayload()
		payload["correct_option"] = "X"
		assert.Equal(t, fiber.StatusBadRequest, createQuestion(t, app, payload))
	})
}

func TestCreateQuestionDuplicateDateConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAdminApp(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "questions"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	assert.Equal(t, fiber.StatusConflict, createQuestion(t, app, validQuestionPayload()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuestionSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAdminApp(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "questions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.Equal(t, fiber.StatusCreated, createQuestion(t, app, validQuestionPayload()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuestionsIncludesAnswerKey(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAdminApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"q_date", "question_text", "correct_option", "points"}).
			AddRow("2024-03-15", "Which planet is known as the red planet?", "B", 5))

	req := httptest.NewRequest("GET", "/api/admin/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "B", body.Data[0]["correct_option"])
	assert.Equal(t, float64(5), body.Data[0]["points"])
	require.NoError(t, mock.ExpectationsWereMet())
}
