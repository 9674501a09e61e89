//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	api "github.com/s21platform/echo-service/internal/generated"
	"github.com/s21platform/echo-service/internal/model"
)

type DBRepo interface {
	CreateCapsule(ctx context.Context, capsule *model.Capsule) error
	GetUserCapsules(ctx context.Context, userID uuid.UUID, status string) (model.CapsuleList, error)
	GetPublicCapsules(ctx context.Context, limit uint64) (model.CapsuleList, error)
	GetCapsule(ctx context.Context, id uuid.UUID) (*model.Capsule, error)
	GetUserCapsule(ctx context.Context, id, userID uuid.UUID) (*model.Capsule, error)
	UpdateCapsule(ctx context.Context, id, userID uuid.UUID, update model.CapsuleUpdate, now time.Time) (*model.Capsule, error)
	UnlockCapsule(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	PublishCapsule(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	DeleteCapsule(ctx context.Context, id, userID uuid.UUID) (bool, error)

	CreateEcho(ctx context.Context, echo *model.Echo) error
	GetEcho(ctx context.Context, id uuid.UUID) (*model.Echo, error)
	GetEchoesByIDs(ctx context.Context, ids []uuid.UUID) (model.EchoList, error)
	GetUserEchoes(ctx context.Context, userID uuid.UUID) (model.EchoList, error)
	GetRecentEchoes(ctx context.Context, since time.Time, limit uint64) (model.EchoList, error)
	SetEchoesMatched(ctx context.Context, ids ...uuid.UUID) error
	CreateMatch(ctx context.Context, echoID, matchedEchoID uuid.UUID) (*model.EchoMatch, error)
	GetUserMatches(ctx context.Context, userID uuid.UUID) (model.EchoMatchList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type IdentityClient interface {
	SignUp(ctx context.Context, email, password string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, sessionToken string) error
	UpdatePassword(ctx context.Context, sessionToken, password string) error
	ResetPasswordForEmail(ctx context.Context, email string) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

type TokenStore interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
}

type Matcher interface {
	TryMatch(ctx context.Context, echo *model.Echo) *model.EchoMatch
}

type Validator interface {
	ValidateRegister(req *api.RegisterRequest) error
	ValidateLogin(req *api.LoginRequest) error
	ValidateChangePassword(req *api.ChangePasswordRequest) error
	ValidateForgotPassword(req *api.ForgotPasswordRequest) error
	ValidateCreateCapsule(req *api.CreateCapsuleRequest) error
	ValidateUpdateCapsule(req *api.UpdateCapsuleRequest) error
	ValidateCreateEcho(req *api.CreateEchoRequest) error
	ValidateManualMatch(req *api.ManualMatchRequest) error
}

type JWTGenerator interface {
	GenerateAccessToken(user *model.User) (string, int64, error)
}
