package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/database"
	"github.com/example/dailyquiz/internal/models"
	"github.com/example/dailyquiz/internal/utils"
)

// AdminHandler manages question administration endpoints. Routes using
// it must sit behind the admin role guard.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListQuestions returns all questions newest first, including the
// answer key and point values.
func (h *AdminHandler) ListQuestions(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return err
	}

	var questions []models.Question
	if err := h.db.Order("q_date desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&questions).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    questions,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type createQuestionRequest struct {
	QDate         string `json:"q_date"`
	QuestionText  string `json:"question_text"`
	ContextText   string `json:"context_text"`
	VideoURL      string `json:"video_url"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Points        int    `json:"points"`
}

// CreateQuestion creates the question for a date. The unique index on
// q_date rejects a second question for the same day; the violation is
// surfaced as a conflict rather than pre-checked with a read.
func (h *AdminHandler) CreateQuestion(c *fiber.Ctx) error {
	var req createQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.QDate == "" || req.QuestionText == "" ||
		req.OptionA == "" || req.OptionB == "" || req.OptionC == "" || req.OptionD == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if _, err := time.Parse(utils.DateLayout, req.QDate); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "q_date must be YYYY-MM-DD")
	}

	correct := strings.ToUpper(strings.TrimSpace(req.CorrectOption))
	if correct != "A" && correct != "B" && correct != "C" && correct != "D" {
		return fiber.NewError(fiber.StatusBadRequest, "correct_option must be A/B/C/D")
	}

	points := req.Points
	if points <= 0 {
		points = 1
	}

	question := models.Question{
		QDate:         req.QDate,
		QuestionText:  req.QuestionText,
		ContextText:   req.ContextText,
		VideoURL:      req.VideoURL,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: correct,
		Points:        points,
	}

	if err := h.db.Create(&question).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "a question already exists for this date")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "created",
		"id":     question.ID,
	})
}
