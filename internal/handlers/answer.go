package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/dailyquiz/internal/middleware"
	"github.com/example/dailyquiz/internal/services"
)

// AnswerHandler exposes the answer submission endpoint.
type AnswerHandler struct {
	answers *services.AnswerService
}

// NewAnswerHandler constructs AnswerHandler.
func NewAnswerHandler(answers *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

type submitAnswerRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// Submit records the user's answer for a question. The response never
// discloses whether the answer was correct or how many points it was
// worth; the reveal comes the next day.
func (h *AnswerHandler) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req submitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid question id")
	}

	err = h.answers.Submit(userID, middleware.GetCurrentUserEmail(c), questionID, req.SelectedOption)
	switch {
	case errors.Is(err, services.ErrInvalidOption):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrQuestionNotFound):
		return fiber.NewError(fiber.StatusNotFound, "question not found")
	case errors.Is(err, services.ErrAlreadySubmitted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "already_submitted",
			"message": "You've already submitted today's answer. Come back tomorrow!",
		})
	case err != nil:
		return err
	}

	return c.JSON(fiber.Map{"status": "submitted"})
}
