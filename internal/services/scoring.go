package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/dailyquiz/internal/models"
)

// ScoringService maintains each user's running point total. It is only
// ever invoked after a first-time answer insert succeeded, so a given
// (user, question) pair reaches it at most once.
type ScoringService struct {
	db *gorm.DB
}

// NewScoringService constructs a ScoringService.
func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{db: db}
}

// Award adds points to a user's total. The user row is created if it
// does not exist yet, and the increment is a single atomic UPDATE so
// concurrent awards for the same user cannot lose an update.
func (s *ScoringService) Award(userID uuid.UUID, email string, points int) error {
	return s.award(s.db, userID, email, points)
}

// award runs on the given handle so callers can keep the ledger write
// inside their own transaction.
func (s *ScoringService) award(db *gorm.DB, userID uuid.UUID, email string, points int) error {
	if points <= 0 {
		return nil
	}

	user := models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     email,
		Role:      models.RoleUser,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&user).Error; err != nil {
		return err
	}

	return db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", points)).Error
}
