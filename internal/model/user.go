package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User is the identity returned by the hosted auth service.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a hosted auth session. Its access token is only used for
// follow-up calls against the auth service and never handed to clients.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type AccessClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}
