package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is the single daily question. QDate is a calendar date in
// the quiz timezone, formatted YYYY-MM-DD; the unique index guarantees
// at most one question per day.
type Question struct {
	BaseModel
	QDate         string `gorm:"uniqueIndex;size:10" json:"q_date"`
	QuestionText  string `json:"question_text"`
	ContextText   string `json:"context_text,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `gorm:"size:1" json:"correct_option"`
	Points        int    `gorm:"default:1" json:"points"`
}

// OptionText returns the text of the given option letter.
func (q *Question) OptionText(option string) string {
	switch option {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// PublicQuestion is the player-facing view of a question. It never
// carries the correct option or the point value.
type PublicQuestion struct {
	ID           uuid.UUID `json:"id"`
	QDate        string    `json:"q_date"`
	QuestionText string    `json:"question_text"`
	ContextText  string    `json:"context_text,omitempty"`
	VideoURL     string    `json:"video_url,omitempty"`
	OptionA      string    `json:"option_a"`
	OptionB      string    `json:"option_b"`
	OptionC      string    `json:"option_c"`
	OptionD      string    `json:"option_d"`
}

// Public strips the answer key from a question.
func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:           q.ID,
		QDate:        q.QDate,
		QuestionText: q.QuestionText,
		ContextText:  q.ContextText,
		VideoURL:     q.VideoURL,
		OptionA:      q.OptionA,
		OptionB:      q.OptionB,
		OptionC:      q.OptionC,
		OptionD:      q.OptionD,
	}
}

// Answer records a user's single submission for a question. The
// composite unique index is the sole arbiter of "already answered".
type Answer struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_answers_user_question" json:"user_id"`
	QuestionID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_answers_user_question" json:"question_id"`
	SelectedOption string    `gorm:"size:1" json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
	AnsweredAt     time.Time `json:"answered_at"`
}
