package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/echo-service/internal/config"
	api "github.com/s21platform/echo-service/internal/generated"
	"github.com/s21platform/echo-service/internal/model"
	"github.com/s21platform/echo-service/internal/pkg/tx"
	"github.com/s21platform/echo-service/internal/service/emotion"
)

const (
	recentEchoesWindow       = 24 * time.Hour
	defaultRecentEchoesLimit = 20
	maxRecentEchoesLimit     = 100

	messageMatchCreated = "match created"
)

func (h *Handler) CreateEcho(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateEcho")

	var req api.CreateEchoRequest
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

	if err := h.validator.ValidateCreateEcho(&req); err != nil {
		logger.Error(fmt.Sprintf("echo validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("echo validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var tag string
	if req.EmotionTag != nil {
		tag = strings.TrimSpace(*req.EmotionTag)
	}
	if tag == "" {
		tag = emotion.Classify(req.Content)
	}

	echo := &model.Echo{
		Content:    req.Content,
		EmotionTag: tag,
		UserID:     userID,
	}

	if err := h.repository.CreateEcho(r.Context(), echo); err != nil {
		logger.Error(fmt.Sprintf("failed to create echo: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create echo: %v", err), http.StatusBadRequest)
		return
	}

	if match := h.matcher.TryMatch(r.Context(), echo); match != nil {
		echo.IsMatched = true
	}

	h.writeJSON(w, toAPIEcho(echo, true), http.StatusOK)
}

func (h *Handler) GetMyEchoes(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMyEchoes")

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	echoes, err := h.repository.GetUserEchoes(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get echoes: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get echoes: %v", err), http.StatusBadRequest)
		return
	}

	response := make([]api.Echo, len(echoes))
	for i := range echoes {
		response[i] = toAPIEcho(&echoes[i], true)
	}

	h.writeJSON(w, response, http.StatusOK)
}

// GetMyMatches lists matches on either side of the caller's echoes. The other
// participant stays anonymous.
func (h *Handler) GetMyMatches(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMyMatches")

	userID, ok := h.currentUserID(r)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	matches, err := h.repository.GetUserMatches(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get matches: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get matches: %v", err), http.StatusBadRequest)
		return
	}

	response := make([]api.EchoMatch, 0, len(matches))
	if len(matches) == 0 {
		h.writeJSON(w, response, http.StatusOK)
		return
	}

	ids := make([]uuid.UUID, 0, 2*len(matches))
	for _, m := range matches {
		ids = append(ids, m.EchoID, m.MatchedEchoID)
	}

	echoes, err := h.repository.GetEchoesByIDs(r.Context(), ids)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get matched echoes: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get matches: %v", err), http.StatusBadRequest)
		return
	}

	byID := make(map[uuid.UUID]*model.Echo, len(echoes))
	for i := range echoes {
		byID[echoes[i].ID] = &echoes[i]
	}

	attach := func(id uuid.UUID) *api.Echo {
		e, ok := byID[id]
		if !ok {
			return nil
		}
		echo := toAPIEcho(e, e.UserID == userID)
		return &echo
	}

	for _, m := range matches {
		response = append(response, api.EchoMatch{
			Id:            m.ID,
			EchoId:        m.EchoID,
			MatchedEchoId: m.MatchedEchoID,
			MatchedAt:     m.MatchedAt,
			Echo:          attach(m.EchoID),
			MatchedEcho:   attach(m.MatchedEchoID),
		})
	}

	h.writeJSON(w, response, http.StatusOK)
}

// GetRecentEchoes is the public feed of the last day, without authors.
func (h *Handler) GetRecentEchoes(w http.ResponseWriter, r *http.Request, params api.GetRecentEchoesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRecentEchoes")

	limit := defaultRecentEchoesLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	if limit < 1 || limit > maxRecentEchoesLimit {
		h.writeError(w, fmt.Sprintf("limit must be between 1 and %d", maxRecentEchoesLimit), http.StatusBadRequest)
		return
	}

	since := h.now().UTC().Add(-recentEchoesWindow)

	echoes, err := h.repository.GetRecentEchoes(r.Context(), since, uint64(limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get recent echoes: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get recent echoes: %v", err), http.StatusBadRequest)
		return
	}

	response := make([]api.Echo, len(echoes))
	for i := range echoes {
		response[i] = toAPIEcho(&echoes[i], false)
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetEmotionTags(w http.ResponseWriter, _ *http.Request) {
	tags := emotion.Tags()

	response := make([]api.EmotionTag, len(tags))
	for i, t := range tags {
		response[i] = api.EmotionTag{
			Value: t.Value,
			Label: t.Label,
			Type:  api.EmotionTagType(t.Type),
		}
	}

	h.writeJSON(w, response, http.StatusOK)
}

// CreateManualMatch links two echoes directly. The caller has to own at least
// one of them.
func (h *Handler) CreateManualMatch(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateManualMatch")

	var req api.ManualMatchRequest
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

	if err := h.validator.ValidateManualMatch(&req); err != nil {
		logger.Error(fmt.Sprintf("match validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("match validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var match *model.EchoMatch
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		first, err := h.repository.GetEcho(ctx, req.EchoId)
		if err != nil {
			return fmt.Errorf("failed to get echo %s: %w", req.EchoId, err)
		}

		second, err := h.repository.GetEcho(ctx, req.MatchedEchoId)
		if err != nil {
			return fmt.Errorf("failed to get echo %s: %w", req.MatchedEchoId, err)
		}

		if first.UserID != userID && second.UserID != userID {
			return errNotEchoOwner
		}

		match, err = h.repository.CreateMatch(ctx, first.ID, second.ID)
		if err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}

		if err := h.repository.SetEchoesMatched(ctx, first.ID, second.ID); err != nil {
			return fmt.Errorf("failed to mark echoes as matched: %w", err)
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete manual match transaction: %v", err))
		switch {
		case errors.Is(err, model.ErrNotFound):
			h.writeError(w, "echo not found", http.StatusNotFound)
		case errors.Is(err, errNotEchoOwner):
			h.writeError(w, "no permission to create this match", http.StatusForbidden)
		default:
			h.writeError(w, fmt.Sprintf("failed to create match: %v", err), http.StatusBadRequest)
		}
		return
	}

	logger.Info(fmt.Sprintf("created manual match %s", match.ID))

	h.writeMessage(w, messageMatchCreated, true, map[string]interface{}{
		"id":              match.ID.String(),
		"echo_id":         match.EchoID.String(),
		"matched_echo_id": match.MatchedEchoID.String(),
	})
}

var errNotEchoOwner = errors.New("caller owns neither echo")
