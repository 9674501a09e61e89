// Package matcher pairs a freshly written echo with an unmatched echo of a
// related emotion.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/echo-service/internal/config"
	"github.com/s21platform/echo-service/internal/model"
	"github.com/s21platform/echo-service/internal/service/emotion"
)

const candidatesPerTag = 10

const (
	metricMatched  = "echo_match.matched"
	metricNoMatch  = "echo_match.no_candidates"
	metricLostRace = "echo_match.lost_race"
	metricFailed   = "echo_match.failed"
)

type Finder struct {
	repository DBRepo
	pick       func(n int) int
}

func New(repo DBRepo) *Finder {
	return &Finder{
		repository: repo,
		pick:       rand.IntN,
	}
}

// TryMatch links echo with one random candidate and returns the match, or nil
// when nothing was matched. Failures are logged and never returned: the echo
// has already been stored by the time matching runs.
func (f *Finder) TryMatch(ctx context.Context, echo *model.Echo) *model.EchoMatch {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("TryMatch")

	pool, err := f.candidates(ctx, echo)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to collect match candidates for echo %s: %v", echo.ID, err))
		increment(ctx, metricFailed)
		return nil
	}

	for len(pool) > 0 {
		candidate := pool[f.pick(len(pool))]

		match, err := f.link(ctx, echo.ID, candidate.ID)
		if errors.Is(err, model.ErrAlreadyMatched) {
			logger.Warn(fmt.Sprintf("candidate %s was matched concurrently, picking another", candidate.ID))
			increment(ctx, metricLostRace)
			pool = without(pool, candidate.ID)
			continue
		}
		if err != nil {
			logger.Error(fmt.Sprintf("failed to match echo %s with %s: %v", echo.ID, candidate.ID, err))
			increment(ctx, metricFailed)
			return nil
		}

		logger.Info(fmt.Sprintf("echo %s matched with echo %s", echo.ID, candidate.ID))
		increment(ctx, metricMatched)
		return match
	}

	increment(ctx, metricNoMatch)
	return nil
}

// candidates gathers up to candidatesPerTag echoes per related tag. An echo
// may show up under several tags; it then simply weighs more in the draw.
func (f *Finder) candidates(ctx context.Context, echo *model.Echo) (model.EchoList, error) {
	var pool model.EchoList
	for _, tag := range emotion.RelatedTags(echo.EmotionTag) {
		found, err := f.repository.FindMatchCandidates(ctx, tag, echo.UserID, echo.ID, candidatesPerTag)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		pool = append(pool, found...)
	}

	return pool, nil
}

func (f *Finder) link(ctx context.Context, echoID, candidateID uuid.UUID) (*model.EchoMatch, error) {
	var match *model.EchoMatch
	err := f.repository.WithTx(ctx, func(ctx context.Context) error {
		if err := f.repository.ClaimEcho(ctx, candidateID); err != nil {
			return err
		}

		var err error
		match, err = f.repository.CreateMatch(ctx, echoID, candidateID)
		if err != nil {
			return err
		}

		return f.repository.SetEchoesMatched(ctx, echoID)
	})
	if err != nil {
		return nil, err
	}

	return match, nil
}

// increment is a no-op when the context carries no metrics client.
func increment(ctx context.Context, name string) {
	if metrics, ok := ctx.Value(config.KeyMetrics).(Metrics); ok && metrics != nil {
		metrics.Increment(name)
	}
}

func without(pool model.EchoList, id uuid.UUID) model.EchoList {
	kept := make(model.EchoList, 0, len(pool))
	for _, e := range pool {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept
}
