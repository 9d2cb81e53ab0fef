package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/dailyquiz/internal/middleware"
	"github.com/example/dailyquiz/internal/models"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// ensureUser creates the user row on first touch. Existing rows are
// left untouched.
func (h *ProfileHandler) ensureUser(userID uuid.UUID, email string) error {
	user := models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     email,
		Role:      models.RoleUser,
	}
	return h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&user).Error
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	email := middleware.GetCurrentUserEmail(c)

	if err := h.ensureUser(userID, email); err != nil {
		return err
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"email":        user.Email,
		"display_name": user.DisplayName,
		"role":         user.Role,
	})
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

// UpdateProfile sets the user's display name.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// Bounds are in characters, not bytes, so multibyte names count
	// the same as ASCII ones.
	name := strings.TrimSpace(req.DisplayName)
	if utf8.RuneCountInString(name) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "name must be at least 2 characters")
	}
	if utf8.RuneCountInString(name) > 30 {
		return fiber.NewError(fiber.StatusBadRequest, "name must be under 30 characters")
	}

	if err := h.ensureUser(userID, middleware.GetCurrentUserEmail(c)); err != nil {
		return err
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("display_name", name).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "updated"})
}
