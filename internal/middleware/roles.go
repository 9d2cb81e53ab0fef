package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/models"
)

// RequireRole loads the authenticated user's persisted role and denies
// the request unless it is in the allow-set. A user with no stored row
// is denied; absence never grants access. Must run after AuthMiddleware.
func RequireRole(db *gorm.DB, allowed ...string) fiber.Handler {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		var user models.User
		if err := db.Select("role").Where("id = ?", userID).Take(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "role not found")
			}
			return err
		}

		if _, ok := allowSet[user.Role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}

		return c.Next()
	}
}
