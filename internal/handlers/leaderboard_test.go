package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/dailyquiz/internal/handlers"
)

// Role gating for this endpoint is covered by the middleware tests.
func TestLeaderboardRanksByTotalPoints(t *testing.T) {
	db, mock := newMockDB(t)
	handler := handlers.NewLeaderboardHandler(db, 200)

	app := fiber.New()
	app.Get("/api/leaderboard", handler.List)

	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "display_name", "total_points", "role"}).
			AddRow(uuid.New().String(), "top@example.com", "Top Player", 42, "user").
			AddRow(uuid.New().String(), "second@example.com", "Runner Up", 17, "moderator"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/leaderboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Leaderboard []map[string]interface{} `json:"leaderboard"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Leaderboard, 2)

	assert.Equal(t, "Top Player", body.Leaderboard[0]["display_name"])
	assert.Equal(t, float64(42), body.Leaderboard[0]["total_points"])
	assert.Equal(t, "second@example.com", body.Leaderboard[1]["email"])
	require.NoError(t, mock.ExpectationsWereMet())
}
