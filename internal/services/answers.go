package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/dailyquiz/internal/database"
	"github.com/example/dailyquiz/internal/models"
)

var (
	// ErrInvalidOption is returned when the selected option is not one of A-D.
	ErrInvalidOption = errors.New("selected option must be A, B, C or D")
	// ErrQuestionNotFound indicates the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAlreadySubmitted indicates the user has already answered this question.
	ErrAlreadySubmitted = errors.New("answer already submitted")
)

var validOptions = map[string]struct{}{"A": {}, "B": {}, "C": {}, "D": {}}

// AnswerService runs the daily answer submission workflow.
type AnswerService struct {
	db      *gorm.DB
	scoring *ScoringService
}

// NewAnswerService constructs an AnswerService.
func NewAnswerService(db *gorm.DB, scoring *ScoringService) *AnswerService {
	return &AnswerService{db: db, scoring: scoring}
}

// Submit records a user's answer to a question. The unique constraint
// on (user_id, question_id) is the sole arbiter of "already answered";
// there is deliberately no existence pre-check, so concurrent retries
// cannot race past each other. Correctness and points are graded and
// stored but never returned to the caller.
func (s *AnswerService) Submit(userID uuid.UUID, email string, questionID uuid.UUID, selectedOption string) error {
	selected := strings.ToUpper(strings.TrimSpace(selectedOption))
	if _, ok := validOptions[selected]; !ok {
		return ErrInvalidOption
	}

	var question models.Question
	if err := s.db.Select("id", "correct_option", "points").
		Where("id = ?", questionID).
		Take(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	isCorrect := selected == strings.ToUpper(question.CorrectOption)

	answer := models.Answer{
		UserID:         userID,
		QuestionID:     questionID,
		SelectedOption: selected,
		IsCorrect:      isCorrect,
		AnsweredAt:     time.Now(),
	}

	// Insert and award commit together: if the award fails the answer
	// rolls back too, so a retry can earn the points instead of
	// stranding a correct answer with none.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		if isCorrect && question.Points > 0 {
			return s.scoring.award(tx, userID, email, question.Points)
		}
		return nil
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadySubmitted
		}
		return err
	}

	return nil
}
