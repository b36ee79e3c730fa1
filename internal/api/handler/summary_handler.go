package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/service"
	"github.com/blaisecz/dailyform-tracker/pkg/problem"
)

// SummaryHandler handles the weekly AI summary endpoints.
type SummaryHandler struct {
	service service.SummaryService
	errors  ErrorWriter
}

func NewSummaryHandler(service service.SummaryService, errors ErrorWriter) *SummaryHandler {
	return &SummaryHandler{service: service, errors: errors}
}

// Analyze handles POST /api/dailyform/ai/analyze
// @Summary Generate the weekly summary
// @Description Summarize seven days of metrics and store the text as today's summary. When data is omitted the stored week is used. If generation fails a deterministic summary is returned (source=fallback); if storage fails the summary is still returned with saved=false.
// @Tags summaries
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeRequest true "User and optional weekly arrays"
// @Success 200 {object} domain.AnalyzeResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /ai/analyze [post]
func (h *SummaryHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		h.errors.Write(w, r, err, "Failed to analyze week")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Today handles GET /api/dailyform/ai/summary/today
// @Summary Get today's stored summary
// @Tags summaries
// @Produce json
// @Param user_id query string true "User identifier" example(u1)
// @Success 200 {object} domain.DailySummary
// @Success 204 "No summary generated today"
// @Failure 400 {object} problem.Problem "Missing user_id"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /ai/summary/today [get]
func (h *SummaryHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Today(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.errors.Write(w, r, err, "Failed to load today's summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// History handles GET /api/dailyform/ai/summary/history
// @Summary List stored summaries
// @Description Newest first, cursor-paginated.
// @Tags summaries
// @Produce json
// @Param user_id query string true "User identifier" example(u1)
// @Param limit query integer false "Page size" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.SummaryListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /ai/summary/history [get]
func (h *SummaryHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	filter := domain.SummaryFilter{Cursor: r.URL.Query().Get("cursor")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			problem.BadRequest("limit must be a positive integer").Write(w)
			return
		}
		filter.Limit = limit
	}

	resp, err := h.service.History(r.Context(), userID, filter)
	if err != nil {
		h.errors.Write(w, r, err, "Failed to list summaries")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /api/dailyform/ai/summary/feedback
// @Summary Rate a generated summary
// @Description Attach a 1-5 rating and optional comment to the trace returned by analyze.
// @Tags summaries
// @Accept json
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /ai/summary/feedback [post]
func (h *SummaryHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Feedback(r.Context(), &req); err != nil {
		h.errors.Write(w, r, err, "Failed to record feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
