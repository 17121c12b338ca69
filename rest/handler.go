package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feed-composer/config"
	"feed-composer/usecase"
)

// Handler contains the HTTP handlers for the feed surface.
type Handler struct {
	refreshUsecase *usecase.RefreshFeedUsecase
	fetchUsecase   *usecase.FetchFeedUsecase
}

func NewHandler(refreshUsecase *usecase.RefreshFeedUsecase, fetchUsecase *usecase.FetchFeedUsecase) *Handler {
	return &Handler{
		refreshUsecase: refreshUsecase,
		fetchUsecase:   fetchUsecase,
	}
}

type RefreshResponse struct {
	Candidates int `json:"candidates"`
	Sections   int `json:"sections"`
	Dropped    int `json:"dropped"`
}

type FeedEntryResponse struct {
	Layout string             `json:"layout"`
	Items  []FeedItemResponse `json:"items"`
	Rank   int64              `json:"rank"`
}

type FeedItemResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type FeedResponse struct {
	UserID  string              `json:"user_id"`
	Entries []FeedEntryResponse `json:"entries"`
}

// RefreshFeed runs the refresh job for one user. 202 with counts when
// sections were written, 204 when the job ended early.
func (h *Handler) RefreshFeed(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), config.RefreshTimeout)
	defer cancel()

	result, err := h.refreshUsecase.Execute(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if result.Skipped {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusAccepted, RefreshResponse{
		Candidates: result.Candidates,
		Sections:   result.Sections,
		Dropped:    result.Dropped,
	})
}

// GetFeed serves one page of a user's feed. The optional "before"
// query parameter is the exclusive rank ceiling from the previous page.
func (h *Handler) GetFeed(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	var before *int64
	if v := c.QueryParam("before"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "before must be an integer rank")
		}
		before = &parsed
	}

	entries, err := h.fetchUsecase.Execute(c.Request().Context(), userID, limit, before)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	response := FeedResponse{
		UserID:  userID,
		Entries: make([]FeedEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		items := make([]FeedItemResponse, 0, len(entry.Section.Items))
		for _, item := range entry.Section.Items {
			items = append(items, FeedItemResponse{ID: item.ID, Type: item.Type})
		}
		response.Entries = append(response.Entries, FeedEntryResponse{
			Layout: entry.Section.Layout,
			Items:  items,
			Rank:   entry.Rank,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// Health is the liveness endpoint.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
