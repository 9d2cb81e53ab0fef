package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/dailyquiz/internal/config"
	"github.com/example/dailyquiz/internal/database"
	"github.com/example/dailyquiz/internal/models"
	"github.com/example/dailyquiz/internal/services"
	"github.com/example/dailyquiz/internal/utils"
)

// maxOTPAttempts bounds wrong guesses per issued code.
const maxOTPAttempts = 5

// AuthHandler bundles dependencies for phone login endpoints.
type AuthHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	whatsapp *services.WhatsAppService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, whatsapp *services.WhatsAppService) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, whatsapp: whatsapp}
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

// SendOTP generates a one-time login code, stores it keyed by phone
// (replacing any previous code) and delivers it over WhatsApp.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone required")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate code")
	}

	codeHash, err := utils.HashOTP(code)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to store code")
	}

	otp := models.PhoneOTP{
		Phone:     req.Phone,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(h.cfg.OTPExpires),
	}
	// A re-request replaces the previous code and resets its attempt
	// budget.
	if err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"code_hash":  codeHash,
			"attempts":   0,
			"expires_at": otp.ExpiresAt,
			"updated_at": time.Now(),
		}),
	}).Create(&otp).Error; err != nil {
		return err
	}

	if err := h.whatsapp.SendOTP(req.Phone, code); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to send login code")
	}

	return c.JSON(fiber.Map{"success": true})
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTP validates a submitted code and issues a session token. The
// user row is created on first successful login.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Phone == "" || req.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone and code required")
	}

	var otp models.PhoneOTP
	if err := h.db.Where("phone = ?", req.Phone).Take(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "verification code not found")
		}
		return err
	}

	if otp.ExpiresAt.Before(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "verification code expired")
	}

	if !utils.CheckOTP(otp.CodeHash, req.Code) {
		// Burn the code once the guess budget is spent; a 6-digit
		// code must not be brute-forceable within its window.
		if otp.Attempts+1 >= maxOTPAttempts {
			if err := h.db.Delete(&otp).Error; err != nil {
				return err
			}
		} else if err := h.db.Model(&otp).
			UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
			return err
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid verification code")
	}

	// First login creates the account. The unique index on phone is
	// the arbiter: a concurrent verify that loses the insert race
	// falls through to the row the winner created.
	user := models.User{
		Phone: &req.Phone,
		Role:  models.RoleUser,
	}
	if err := h.db.Create(&user).Error; err != nil {
		if !database.IsUniqueViolation(err) {
			return err
		}
		if err := h.db.Where("phone = ?", req.Phone).First(&user).Error; err != nil {
			return err
		}
	}

	// Codes are single-use.
	if err := h.db.Delete(&otp).Error; err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":           user.ID,
			"phone":        req.Phone,
			"display_name": user.DisplayName,
		},
	})
}
