package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CapsuleStatusLocked   = "locked"
	CapsuleStatusUnlocked = "unlocked"
	CapsuleStatusPublic   = "public"
)

type CapsuleList []Capsule

type Capsule struct {
	ID              uuid.UUID  `db:"id"`
	Title           string     `db:"title"`
	Content         string     `db:"content"`
	UnlockDate      *time.Time `db:"unlock_date"`
	UnlockCondition *string    `db:"unlock_condition"`
	IsPublic        bool       `db:"is_public"`
	UserID          uuid.UUID  `db:"user_id"`
	Status          string     `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// CapsuleUpdate carries the owner-editable fields; nil means unchanged.
type CapsuleUpdate struct {
	Title           *string
	Content         *string
	UnlockDate      *time.Time
	UnlockCondition *string
	IsPublic        *bool
}

// VisibleTo reports whether userID may read the capsule.
func (c *Capsule) VisibleTo(userID uuid.UUID) bool {
	return c.UserID == userID || (c.IsPublic && c.Status == CapsuleStatusPublic)
}
