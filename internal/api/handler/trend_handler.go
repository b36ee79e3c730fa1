package handler

import (
	"net/http"

	"github.com/blaisecz/dailyform-tracker/internal/service"
)

// TrendHandler serves the seven-day chart data.
type TrendHandler struct {
	service service.TrendService
	errors  ErrorWriter
}

func NewTrendHandler(service service.TrendService, errors ErrorWriter) *TrendHandler {
	return &TrendHandler{service: service, errors: errors}
}

// LastSevenMorning handles GET /api/dailyform/morning/last_seven
// @Summary Morning chart for the last seven days
// @Description Seven values per metric, oldest day first, ending today. Days without a form are 0 (numbers) or "" (objectives).
// @Tags trends
// @Produce json
// @Param user_id query string true "User identifier" example(u1)
// @Success 200 {object} domain.MorningTrendResponse
// @Failure 400 {object} problem.Problem "Missing user_id"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /morning/last_seven [get]
func (h *TrendHandler) LastSevenMorning(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.LastSevenMorning(r.Context(), userID)
	if err != nil {
		h.errors.Write(w, r, err, "Internal server error while fetching chart data")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// LastSevenEvening handles GET /api/dailyform/night/last_seven
// @Summary Evening chart for the last seven days
// @Tags trends
// @Produce json
// @Param user_id query string true "User identifier" example(u1)
// @Success 200 {object} domain.EveningTrendResponse
// @Failure 400 {object} problem.Problem "Missing user_id"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /night/last_seven [get]
func (h *TrendHandler) LastSevenEvening(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.LastSevenEvening(r.Context(), userID)
	if err != nil {
		h.errors.Write(w, r, err, "Internal server error while fetching chart data")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
