package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/echo-service/internal/config"
	api "github.com/s21platform/echo-service/internal/generated"
	"github.com/s21platform/echo-service/internal/model"
	"github.com/s21platform/echo-service/internal/service/capsule"
)

const (
	publicCapsulesLimit = 50

	messageCapsuleDeleted = "time capsule deleted"
)

func (h *Handler) CreateCapsule(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateCapsule")

	var req api.CreateCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.validator.ValidateCreateCapsule(&req); err != nil {
		logger.Error(fmt.Sprintf("capsule validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("capsule validation failed: %v", err), http.StatusBadRequest)
		return
	}

	created := &model.Capsule{
		Title:           req.Title,
		Content:         req.Content,
		UnlockDate:      req.UnlockDate,
		UnlockCondition: req.UnlockCondition,
		UserID:          userID,
	}
	if req.IsPublic != nil {
		created.IsPublic = *req.IsPublic
	}

	if err := h.repository.CreateCapsule(r.Context(), created); err != nil {
		logger.Error(fmt.Sprintf("failed to create time capsule: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create time capsule: %v", err), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, toAPICapsule(created), http.StatusOK)
}

func (h *Handler) GetCapsules(w http.ResponseWriter, r *http.Request, params api.GetCapsulesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCapsules")

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	status := ""
	if params.Status != nil {
		switch *params.Status {
		case api.CapsuleStatusLocked, api.CapsuleStatusUnlocked, api.CapsuleStatusPublic:
			status = string(*params.Status)
		default:
			h.writeError(w, fmt.Sprintf("unknown capsule status '%s'", *params.Status), http.StatusBadRequest)
			return
		}
	}

	capsules, err := h.repository.GetUserCapsules(r.Context(), userID, status)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get time capsules: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get time capsules: %v", err), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, toAPICapsules(capsules), http.StatusOK)
}

func (h *Handler) GetPublicCapsules(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPublicCapsules")

	capsules, err := h.repository.GetPublicCapsules(r.Context(), publicCapsulesLimit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get public time capsules: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get public time capsules: %v", err), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, toAPICapsules(capsules), http.StatusOK)
}

func (h *Handler) GetCapsule(w http.ResponseWriter, r *http.Request, capsuleId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCapsule")

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	found, err := h.repository.GetCapsule(r.Context(), capsuleId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get time capsule %s: %v", capsuleId, err))
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "time capsule not found", http.StatusNotFound)
			return
		}
		h.writeError(w, fmt.Sprintf("failed to get time capsule: %v", err), http.StatusBadRequest)
		return
	}

	if !found.VisibleTo(userID) {
		logger.Warn(fmt.Sprintf("user %s is not allowed to view time capsule %s", userID, capsuleId))
		h.writeError(w, "no permission to view this time capsule", http.StatusForbidden)
		return
	}

	h.writeJSON(w, toAPICapsule(found), http.StatusOK)
}

func (h *Handler) UpdateCapsule(w http.ResponseWriter, r *http.Request, capsuleId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateCapsule")

	var req api.UpdateCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.validator.ValidateUpdateCapsule(&req); err != nil {
		logger.Error(fmt.Sprintf("capsule validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("capsule validation failed: %v", err), http.StatusBadRequest)
		return
	}

	update := model.CapsuleUpdate{
		Title:           req.Title,
		Content:         req.Content,
		UnlockDate:      req.UnlockDate,
		UnlockCondition: req.UnlockCondition,
		IsPublic:        req.IsPublic,
	}

	updated, err := h.repository.UpdateCapsule(r.Context(), capsuleId, userID, update, h.now().UTC())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update time capsule %s: %v", capsuleId, err))
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "time capsule not found or no permission to modify it", http.StatusNotFound)
			return
		}
		h.writeError(w, fmt.Sprintf("failed to update time capsule: %v", err), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, toAPICapsule(updated), http.StatusOK)
}

func (h *Handler) UnlockCapsule(w http.ResponseWriter, r *http.Request, capsuleId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnlockCapsule")

	owned, ok := h.loadOwnedCapsule(w, r, logger, capsuleId)
	if !ok {
		return
	}

	now := h.now().UTC()
	decision := capsule.EvaluateUnlock(owned, now)
	if !decision.Allowed {
		h.writeMessage(w, decision.Message, false, nil)
		return
	}

	unlocked, err := h.repository.UnlockCapsule(r.Context(), capsuleId, now)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to unlock time capsule %s: %v", capsuleId, err))
		h.writeError(w, fmt.Sprintf("failed to unlock time capsule: %v", err), http.StatusBadRequest)
		return
	}

	if !unlocked {
		h.writeMessage(w, capsule.MessageAlreadyUnlocked, false, nil)
		return
	}

	logger.Info(fmt.Sprintf("unlocked time capsule %s", capsuleId))

	h.writeMessage(w, decision.Message, true, map[string]interface{}{"capsule_id": capsuleId.String()})
}

func (h *Handler) PublishCapsule(w http.ResponseWriter, r *http.Request, capsuleId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PublishCapsule")

	owned, ok := h.loadOwnedCapsule(w, r, logger, capsuleId)
	if !ok {
		return
	}

	decision := capsule.EvaluatePublish(owned)
	if !decision.Allowed {
		h.writeMessage(w, decision.Message, false, nil)
		return
	}

	published, err := h.repository.PublishCapsule(r.Context(), capsuleId, h.now().UTC())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to publish time capsule %s: %v", capsuleId, err))
		h.writeError(w, fmt.Sprintf("failed to publish time capsule: %v", err), http.StatusBadRequest)
		return
	}

	if !published {
		h.writeMessage(w, capsule.MessageNotPublishable, false, nil)
		return
	}

	logger.Info(fmt.Sprintf("published time capsule %s", capsuleId))

	h.writeMessage(w, decision.Message, true, map[string]interface{}{"capsule_id": capsuleId.String()})
}

func (h *Handler) DeleteCapsule(w http.ResponseWriter, r *http.Request, capsuleId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteCapsule")

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	deleted, err := h.repository.DeleteCapsule(r.Context(), capsuleId, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete time capsule %s: %v", capsuleId, err))
		h.writeError(w, fmt.Sprintf("failed to delete time capsule: %v", err), http.StatusBadRequest)
		return
	}

	if !deleted {
		h.writeError(w, "time capsule not found or no permission to delete it", http.StatusNotFound)
		return
	}

	h.writeMessage(w, messageCapsuleDeleted, true, nil)
}

func (h *Handler) loadOwnedCapsule(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, capsuleID uuid.UUID) (*model.Capsule, bool) {
	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return nil, false
	}

	owned, err := h.repository.GetUserCapsule(r.Context(), capsuleID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get time capsule %s: %v", capsuleID, err))
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "time capsule not found or no permission to access it", http.StatusNotFound)
			return nil, false
		}
		h.writeError(w, fmt.Sprintf("failed to get time capsule: %v", err), http.StatusBadRequest)
		return nil, false
	}

	return owned, true
}
