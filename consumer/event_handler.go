package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"feed-composer/config"
	"feed-composer/usecase"
)

// FeedRefreshRequestedPayload is the payload of a FeedRefreshRequested
// event.
type FeedRefreshRequestedPayload struct {
	UserID string `json:"user_id"`
}

// RefreshEventHandler runs the feed refresh pipeline for each
// FeedRefreshRequested event on the stream.
type RefreshEventHandler struct {
	refreshUsecase *usecase.RefreshFeedUsecase
	logger         *slog.Logger
}

// NewRefreshEventHandler creates a new RefreshEventHandler.
func NewRefreshEventHandler(refreshUsecase *usecase.RefreshFeedUsecase, logger *slog.Logger) *RefreshEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefreshEventHandler{
		refreshUsecase: refreshUsecase,
		logger:         logger,
	}
}

// HandleEvent processes a single event. Unknown event types are
// acknowledged and skipped.
func (h *RefreshEventHandler) HandleEvent(ctx context.Context, event Event) error {
	switch event.EventType {
	case "FeedRefreshRequested":
		return h.handleFeedRefreshRequested(ctx, event)
	default:
		h.logger.Warn("unknown event type, skipping",
			"event_type", event.EventType,
			"event_id", event.EventID,
		)
		return nil
	}
}

func (h *RefreshEventHandler) handleFeedRefreshRequested(ctx context.Context, event Event) error {
	var payload FeedRefreshRequestedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		h.logger.Error("failed to unmarshal FeedRefreshRequested payload",
			"event_id", event.EventID,
			"error", err,
		)
		return err
	}

	if payload.UserID == "" {
		h.logger.Warn("FeedRefreshRequested without user_id, skipping",
			"event_id", event.EventID,
		)
		return nil
	}

	refreshCtx, cancel := context.WithTimeout(ctx, config.RefreshTimeout)
	defer cancel()

	result, err := h.refreshUsecase.Execute(refreshCtx, payload.UserID)
	if err != nil {
		h.logger.Error("feed refresh failed",
			"event_id", event.EventID,
			"user_id", payload.UserID,
			"error", err,
		)
		return err
	}

	h.logger.Info("feed refresh event processed",
		"event_id", event.EventID,
		"user_id", payload.UserID,
		"sections", result.Sections,
		"skipped", result.Skipped,
	)

	return nil
}
