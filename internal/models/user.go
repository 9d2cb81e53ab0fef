package models

import "time"

// Roles a user account can hold. New accounts always start as RoleUser;
// elevation happens out-of-band by an operator.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User represents a quiz player. Rows are created lazily on first
// profile or answer interaction, keyed by the identity the session
// token carries. Phone is NULL for accounts that never logged in by
// phone; the unique index guarantees one account per phone number.
type User struct {
	BaseModel
	Email       string  `gorm:"index" json:"email"`
	Phone       *string `gorm:"uniqueIndex" json:"phone,omitempty"`
	DisplayName string  `json:"display_name"`
	Role        string  `gorm:"default:user" json:"role"`
	TotalPoints int     `gorm:"default:0" json:"total_points"`
}

// PhoneOTP keeps track of one-time login codes sent over WhatsApp.
// One row per phone number; a re-request overwrites the previous code.
type PhoneOTP struct {
	BaseModel
	Phone     string    `gorm:"uniqueIndex" json:"phone"`
	CodeHash  string    `json:"-"`
	Attempts  int       `gorm:"default:0" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
