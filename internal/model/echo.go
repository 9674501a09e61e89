package model

import (
	"time"

	"github.com/google/uuid"
)

const NeutralEmotionTag = "neutral"

type EchoList []Echo

type Echo struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Content    string    `db:"content" json:"content"`
	EmotionTag string    `db:"emotion_tag" json:"emotion_tag"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	IsMatched  bool      `db:"is_matched" json:"is_matched"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type EchoMatchList []EchoMatch

type EchoMatch struct {
	ID            uuid.UUID `db:"id" json:"id"`
	EchoID        uuid.UUID `db:"echo_id" json:"echo_id"`
	MatchedEchoID uuid.UUID `db:"matched_echo_id" json:"matched_echo_id"`
	MatchedAt     time.Time `db:"matched_at" json:"matched_at"`
}

// IDs returns the ids of the messages in the list, in order.
func (l EchoList) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l))
	for _, e := range l {
		ids = append(ids, e.ID)
	}
	return ids
}
