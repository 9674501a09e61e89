package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/s21platform/echo-service/internal/model"
)

const defaultTTL = 30 * time.Minute

type Generator struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// New builds a generator for HMAC tokens. Unknown or non-HMAC algorithms fall
// back to HS256.
func New(secret, algorithm string, ttl time.Duration) *Generator {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		method = jwt.SigningMethodHS256
	}

	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Generator{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}
}

func (g *Generator) GenerateAccessToken(user *model.User) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(g.ttl)

	claims := model.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(g.method, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateAccessToken(tokenString string) (*model.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{g.method.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse access JWT token: %w", err)
	}

	claims, ok := token.Claims.(*model.AccessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid access JWT token")
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("invalid access JWT token subject: %w", err)
	}

	return claims, nil
}
