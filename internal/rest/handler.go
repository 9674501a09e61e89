package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/echo-service/internal/config"
	api "github.com/s21platform/echo-service/internal/generated"
	"github.com/s21platform/echo-service/internal/model"
)

const healthStatus = "healthy"

type Handler struct {
	repository     DBRepo
	identityClient IdentityClient
	tokenStore     TokenStore
	matcher        Matcher
	validator      Validator
	jwtGenerator   JWTGenerator
	service        config.Service
	now            func() time.Time
}

func New(
	repo DBRepo,
	identityClient IdentityClient,
	tokenStore TokenStore,
	matcher Matcher,
	validator Validator,
	jwtGenerator JWTGenerator,
	service config.Service,
) *Handler {
	return &Handler{
		repository:     repo,
		identityClient: identityClient,
		tokenStore:     tokenStore,
		matcher:        matcher,
		validator:      validator,
		jwtGenerator:   jwtGenerator,
		service:        service,
		now:            time.Now,
	}
}

func (h *Handler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, api.HealthResponse{
		Status:  healthStatus,
		App:     h.service.Name,
		Version: h.service.Version,
	}, http.StatusOK)
}

// ParamError answers requests whose path or query parameters failed to bind.
func (h *Handler) ParamError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ParamError")
	logger.Warn(fmt.Sprintf("failed to bind request parameters: %v", err))

	h.writeError(w, err.Error(), http.StatusBadRequest)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) currentUserID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	if statusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}

func (h *Handler) writeMessage(w http.ResponseWriter, message string, success bool, data map[string]interface{}) {
	response := api.MessageResponse{
		Message: message,
		Success: success,
	}
	if data != nil {
		response.Data = &data
	}

	h.writeJSON(w, response, http.StatusOK)
}

func toAPIUser(user *model.User) api.User {
	return api.User{
		Id:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toAPICapsule(c *model.Capsule) api.Capsule {
	return api.Capsule{
		Id:              c.ID,
		Title:           c.Title,
		Content:         c.Content,
		UnlockDate:      c.UnlockDate,
		UnlockCondition: c.UnlockCondition,
		IsPublic:        c.IsPublic,
		UserId:          c.UserID,
		Status:          api.CapsuleStatus(c.Status),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toAPICapsules(list model.CapsuleList) []api.Capsule {
	capsules := make([]api.Capsule, len(list))
	for i := range list {
		capsules[i] = toAPICapsule(&list[i])
	}
	return capsules
}

// toAPIEcho drops the author unless showAuthor is set.
func toAPIEcho(e *model.Echo, showAuthor bool) api.Echo {
	echo := api.Echo{
		Id:         e.ID,
		Content:    e.Content,
		EmotionTag: e.EmotionTag,
		IsMatched:  e.IsMatched,
		CreatedAt:  e.CreatedAt,
	}
	if showAuthor {
		userID := e.UserID
		echo.UserId = &userID
	}
	return echo
}
