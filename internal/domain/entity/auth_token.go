package entity

import "time"

// Token kind constants
const (
	TokenKindAccess        = "access"
	TokenKindPasswordReset = "password_reset"
)

// AuthToken is the persisted token ledger. Access rows exist for audit and
// listing only and are never consulted when validating a JWT. Password reset
// rows hold the sha256 hex of the raw token and are consumed on use. Rows are
// never mutated; expiry is a timestamp comparison.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"token_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"token"`
	Kind      string    `gorm:"type:varchar(20);not null;index" json:"kind"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}

// Expired reports whether the token's lifetime has elapsed at the given time.
func (t *AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
