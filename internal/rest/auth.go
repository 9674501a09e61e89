package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/echo-service/internal/config"
	api "github.com/s21platform/echo-service/internal/generated"
	"github.com/s21platform/echo-service/internal/model"
)

const (
	tokenTypeBearer = "bearer"

	messageLoggedOut       = "logged out"
	messagePasswordChanged = "password changed"
	messageResetSent       = "if this email is registered, a password reset email will be sent"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Register")

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRegister(&req); err != nil {
		logger.Error(fmt.Sprintf("registration validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("registration validation failed: %v", err), http.StatusBadRequest)
		return
	}

	user, err := h.identityClient.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to register user: %v", err))
		if errors.Is(err, model.ErrUserExists) {
			h.writeError(w, "registration failed, the email may already be in use", http.StatusBadRequest)
			return
		}
		h.writeError(w, fmt.Sprintf("registration failed: %v", err), http.StatusBadRequest)
		return
	}

	logger.Info(fmt.Sprintf("registered user %s", user.ID))

	h.writeToken(w, logger, user)
}

// Login accepts both an OAuth2 password form and a JSON body.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	req, err := decodeLogin(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateLogin(req); err != nil {
		logger.Error(fmt.Sprintf("login validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("login validation failed: %v", err), http.StatusBadRequest)
		return
	}

	session, err := h.identityClient.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to sign in: %v", err))
		h.writeError(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}

	h.writeToken(w, logger, &session.User)
}

// Logout revokes the presented token. It reports success even when the
// revocation could not be stored, the client drops the token either way.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Logout")

	h.revokeCurrentToken(r, logger)

	h.writeMessage(w, messageLoggedOut, true, nil)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMe")

	user, ok := h.loadCurrentUser(w, r, logger)
	if !ok {
		return
	}

	h.writeJSON(w, toAPIUser(user), http.StatusOK)
}

// RefreshToken issues a fresh token and retires the one used to ask for it.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RefreshToken")

	user, ok := h.loadCurrentUser(w, r, logger)
	if !ok {
		return
	}

	if !h.writeToken(w, logger, user) {
		return
	}

	h.revokeCurrentToken(r, logger)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ChangePassword")

	var req api.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateChangePassword(&req); err != nil {
		logger.Error(fmt.Sprintf("password validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("password validation failed: %v", err), http.StatusBadRequest)
		return
	}

	email, _ := r.Context().Value(config.KeyEmail).(string)
	if email == "" {
		user, ok := h.loadCurrentUser(w, r, logger)
		if !ok {
			return
		}
		email = user.Email
	}

	session, err := h.identityClient.SignIn(r.Context(), email, req.OldPassword)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to verify old password: %v", err))
		h.writeError(w, "old password is incorrect", http.StatusUnauthorized)
		return
	}

	if err := h.identityClient.UpdatePassword(r.Context(), session.AccessToken, req.NewPassword); err != nil {
		logger.Error(fmt.Sprintf("failed to update password: %v", err))
		h.writeError(w, fmt.Sprintf("failed to change password: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.identityClient.SignOut(r.Context(), session.AccessToken); err != nil {
		logger.Warn(fmt.Sprintf("failed to close verification session: %v", err))
	}

	logger.Info(fmt.Sprintf("changed password for user %s", session.User.ID))

	h.writeMessage(w, messagePasswordChanged, true, nil)
}

// ForgotPassword never reveals whether the address is registered.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ForgotPassword")

	var req api.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateForgotPassword(&req); err != nil {
		logger.Error(fmt.Sprintf("email validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("email validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.identityClient.ResetPasswordForEmail(r.Context(), req.Email); err != nil {
		logger.Warn(fmt.Sprintf("failed to send password reset: %v", err))
	}

	h.writeMessage(w, messageResetSent, true, nil)
}

func (h *Handler) loadCurrentUser(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface) (*model.User, bool) {
	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return nil, false
	}

	user, err := h.identityClient.GetUser(r.Context(), userID.String())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user %s: %v", userID, err))
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "user not found", http.StatusUnauthorized)
			return nil, false
		}
		h.writeError(w, fmt.Sprintf("failed to get user: %v", err), http.StatusBadRequest)
		return nil, false
	}

	return user, true
}

func (h *Handler) writeToken(w http.ResponseWriter, logger logger_lib.LoggerInterface, user *model.User) bool {
	token, expiresAt, err := h.jwtGenerator.GenerateAccessToken(user)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return false
	}

	h.writeJSON(w, api.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        toAPIUser(user),
	}, http.StatusOK)

	return true
}

func (h *Handler) revokeCurrentToken(r *http.Request, logger logger_lib.LoggerInterface) {
	tokenID, _ := r.Context().Value(config.KeyTokenID).(string)
	expiresAt, _ := r.Context().Value(config.KeyTokenExpiry).(time.Time)
	if tokenID == "" {
		return
	}

	if err := h.tokenStore.RevokeToken(r.Context(), tokenID, expiresAt.Sub(h.now())); err != nil {
		logger.Warn(fmt.Sprintf("failed to revoke token: %v", err))
	}
}

func decodeLogin(r *http.Request) (*api.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return &api.LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		var req api.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}
}
