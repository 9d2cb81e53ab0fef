package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/models"
)

// LeaderboardHandler serves ranked user totals. Routes using it must
// sit behind the moderator/admin role guard.
type LeaderboardHandler struct {
	db    *gorm.DB
	limit int
}

// NewLeaderboardHandler constructs LeaderboardHandler.
func NewLeaderboardHandler(db *gorm.DB, limit int) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, limit: limit}
}

// List returns all users ordered by total points descending.
func (h *LeaderboardHandler) List(c *fiber.Ctx) error {
	var users []models.User
	if err := h.db.Select("id", "email", "display_name", "total_points", "role").
		Order("total_points desc").
		Limit(h.limit).
		Find(&users).Error; err != nil {
		return err
	}

	entries := make([]fiber.Map, len(users))
	for i, u := range users {
		entries[i] = fiber.Map{
			"id":           u.ID,
			"email":        u.Email,
			"display_name": u.DisplayName,
			"total_points": u.TotalPoints,
			"role":         u.Role,
		}
	}

	return c.JSON(fiber.Map{"leaderboard": entries})
}
