//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package matcher

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/echo-service/internal/model"
)

type DBRepo interface {
	FindMatchCandidates(ctx context.Context, tag string, authorID, excludeID uuid.UUID, limit uint64) (model.EchoList, error)
	ClaimEcho(ctx context.Context, id uuid.UUID) error
	SetEchoesMatched(ctx context.Context, ids ...uuid.UUID) error
	CreateMatch(ctx context.Context, echoID, matchedEchoID uuid.UUID) (*model.EchoMatch, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Metrics counts match outcomes. It is read from the request context.
type Metrics interface {
	Increment(name string)
}
