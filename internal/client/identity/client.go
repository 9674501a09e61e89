package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/echo-service/internal/config"
	"github.com/s21platform/echo-service/internal/model"
)

const (
	signUpPath     = "/auth/v1/signup"
	tokenPath      = "/auth/v1/token?grant_type=password"
	logoutPath     = "/auth/v1/logout"
	userPath       = "/auth/v1/user"
	recoverPath    = "/auth/v1/recover"
	adminUsersPath = "/auth/v1/admin/users/"
)

// Client talks to a GoTrue-compatible hosted auth service.
type Client struct {
	baseURL    string
	apiKey     string
	adminKey   string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.Supabase.URL, "/"),
		apiKey:   cfg.Supabase.AnonKey,
		adminKey: cfg.Supabase.AdminKey(),
		httpClient: &http.Client{
			Timeout: cfg.Supabase.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.status)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.status, e.message)
}

// SignUp registers a new account. Depending on the project's e-mail
// confirmation setting the service answers with a session or a bare user.
func (c *Client) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	var resp struct {
		ID        uuid.UUID   `json:"id"`
		Email     string      `json:"email"`
		CreatedAt time.Time   `json:"created_at"`
		User      *model.User `json:"user"`
	}

	err := c.do(ctx, http.MethodPost, signUpPath, c.apiKey, credentials{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.status == http.StatusUnprocessableEntity {
			return nil, fmt.Errorf("%w: %v", model.ErrUserExists, err)
		}
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	switch {
	case resp.User != nil && resp.User.ID != uuid.Nil:
		return resp.User, nil
	case resp.ID != uuid.Nil:
		return &model.User{ID: resp.ID, Email: resp.Email, CreatedAt: resp.CreatedAt}, nil
	default:
		return nil, fmt.Errorf("failed to sign up: empty user in response")
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	var session model.Session

	err := c.do(ctx, http.MethodPost, tokenPath, c.apiKey, credentials{Email: email, Password: password}, &session)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && (apiErr.status == http.StatusBadRequest || apiErr.status == http.StatusUnauthorized) {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if session.AccessToken == "" || session.User.ID == uuid.Nil {
		return nil, fmt.Errorf("failed to sign in: incomplete session in response")
	}

	return &session, nil
}

func (c *Client) SignOut(ctx context.Context, sessionToken string) error {
	if err := c.do(ctx, http.MethodPost, logoutPath, sessionToken, nil, nil); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	return nil
}

func (c *Client) UpdatePassword(ctx context.Context, sessionToken, password string) error {
	body := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPut, userPath, sessionToken, body, nil); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (c *Client) ResetPasswordForEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, recoverPath, c.apiKey, body, nil); err != nil {
		return fmt.Errorf("failed to send password reset: %w", err)
	}

	return nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User

	err := c.do(ctx, http.MethodGet, adminUsersPath+url.PathEscape(userID), c.adminKey, nil, &user)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %v", model.ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiError{status: resp.StatusCode, message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func errorMessage(r io.Reader) string {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}

	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil {
		return ""
	}

	for _, m := range []string{payload.Msg, payload.Message, payload.ErrorDescription, payload.Error} {
		if m != "" {
			return m
		}
	}

	return ""
}
