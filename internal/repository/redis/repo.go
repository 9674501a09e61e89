package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/s21platform/echo-service/internal/config"
)

const revokedTokenPrefix = "echo:revoked:"

type Repository struct {
	client *goredis.Client
}

func New(cfg *config.Config) *Repository {
	client := goredis.NewClient(&goredis.Options{
		Addr:         net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return &Repository{client: client}
}

func (r *Repository) Close() {
	_ = r.client.Close()
}

// RevokeToken denylists a token id until the token would have expired anyway.
func (r *Repository) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (r *Repository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	err := r.client.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return true, nil
}

func revokedKey(tokenID string) string {
	return revokedTokenPrefix + tokenID
}
