package capsule

import (
	"fmt"
	"time"

	"github.com/s21platform/echo-service/internal/model"
)

const unlockDateLayout = "2006-01-02 15:04"

const (
	MessageUnlocked        = "the time has come, time capsule unlocked"
	MessageAlreadyUnlocked = "time capsule is already unlocked"
	MessageNoUnlockPath    = "time capsule has no unlock date or condition"
	MessagePublished       = "time capsule published to the public gallery"
	MessageNotPublishable  = "only unlocked time capsules can be published"
)

type Decision struct {
	Allowed bool
	Message string
}

// EvaluateUnlock decides whether a capsule may move from locked to unlocked
// at now. The unlock condition is shown to the user but never evaluated.
func EvaluateUnlock(c *model.Capsule, now time.Time) Decision {
	if c.Status != model.CapsuleStatusLocked {
		return Decision{Message: MessageAlreadyUnlocked}
	}

	if c.UnlockDate != nil {
		unlockAt := c.UnlockDate.UTC()
		if !now.UTC().Before(unlockAt) {
			return Decision{Allowed: true, Message: MessageUnlocked}
		}
		return Decision{Message: fmt.Sprintf("not yet, please try again after %s", unlockAt.Format(unlockDateLayout))}
	}

	if c.UnlockCondition != nil && *c.UnlockCondition != "" {
		return Decision{Message: fmt.Sprintf("unlock condition: %s", *c.UnlockCondition)}
	}

	return Decision{Message: MessageNoUnlockPath}
}

// EvaluatePublish allows publishing only straight from unlocked.
func EvaluatePublish(c *model.Capsule) Decision {
	if c.Status != model.CapsuleStatusUnlocked {
		return Decision{Message: MessageNotPublishable}
	}
	return Decision{Allowed: true, Message: MessagePublished}
}
