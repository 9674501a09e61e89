//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import (
	"context"

	"github.com/s21platform/echo-service/internal/model"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

type RevocationStore interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Metrics interface {
	Increment(name string)
}
