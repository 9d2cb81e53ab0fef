package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/config"
	"github.com/example/dailyquiz/internal/models"
	"github.com/example/dailyquiz/internal/utils"
)

// streakWindow caps how many recent answers feed the streak
// computation.
const streakWindow = 90

// DailyHandler serves the today summary: today's question (without the
// answer key), yesterday's reveal and the caller's streak.
type DailyHandler struct {
	db  *gorm.DB
	cfg *config.Config
	loc *time.Location
}

// NewDailyHandler constructs DailyHandler.
func NewDailyHandler(db *gorm.DB, cfg *config.Config, loc *time.Location) *DailyHandler {
	return &DailyHandler{db: db, cfg: cfg, loc: loc}
}

type yesterdayReveal struct {
	CorrectOption string `json:"correct_option"`
	CorrectText   string `json:"correct_text"`
}

// Today returns the daily summary. The question and reveal are public;
// the streak needs a session and is zero for anonymous callers.
func (h *DailyHandler) Today(c *fiber.Ctx) error {
	today := utils.Today(h.loc)
	yesterday, err := utils.AddDays(today, -1)
	if err != nil {
		return err
	}

	var todayQuestion *models.PublicQuestion
	var q models.Question
	if err := h.db.Where("q_date = ?", today).Take(&q).Error; err == nil {
		pub := q.Public()
		todayQuestion = &pub
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var reveal *yesterdayReveal
	var yq models.Question
	if err := h.db.Where("q_date = ?", yesterday).Take(&yq).Error; err == nil {
		reveal = &yesterdayReveal{
			CorrectOption: yq.CorrectOption,
			CorrectText:   yq.OptionText(yq.CorrectOption),
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	streak := 0
	if userID, ok := h.resolveUser(c); ok {
		streak, err = h.computeStreak(userID, today, yesterday)
		if err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"today_question":   todayQuestion,
		"yesterday_reveal": reveal,
		"streak":           streak,
		"today":            today,
	})
}

// resolveUser parses an optional bearer token. An absent or invalid
// token is not an error here, it just means no streak.
func (h *DailyHandler) resolveUser(c *fiber.Ctx) (uuid.UUID, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, false
	}

	userID, _, err := utils.ParseToken(h.cfg.JWTSecret, parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func (h *DailyHandler) computeStreak(userID uuid.UUID, today, yesterday string) (int, error) {
	var rawDates []string
	if err := h.db.Model(&models.Answer{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ?", userID).
		Order("answers.answered_at desc").
		Limit(streakWindow).
		Pluck("questions.q_date", &rawDates).Error; err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(rawDates))
	dates := make([]string, 0, len(rawDates))
	for _, d := range rawDates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	// A streak not yet extended today is still alive, so fall back to
	// anchoring at yesterday.
	anchor := yesterday
	if _, ok := seen[today]; ok {
		anchor = today
	}

	return utils.Streak(dates, anchor), nil
}
