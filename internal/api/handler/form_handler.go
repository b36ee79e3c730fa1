package handler

import (
	"net/http"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/service"
)

// FormHandler handles morning and evening form submissions.
type FormHandler struct {
	service service.FormService
	errors  ErrorWriter
}

func NewFormHandler(service service.FormService, errors ErrorWriter) *FormHandler {
	return &FormHandler{service: service, errors: errors}
}

// CreateMorning handles POST /api/dailyform/morning
// @Summary Submit the morning form
// @Description Store sleep quality, motivation and the two objectives of the day. Several submissions per day are kept.
// @Tags forms
// @Accept json
// @Produce json
// @Param request body domain.CreateMorningRequest true "Morning form"
// @Success 201 {object} domain.MorningEntry "Entry created"
// @Failure 400 {object} problem.Problem "Missing or invalid field"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /morning [post]
func (h *FormHandler) CreateMorning(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMorningRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.CreateMorning(r.Context(), &req)
	if err != nil {
		h.errors.Write(w, r, err, "Failed to save morning form")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// CreateEvening handles POST /api/dailyform/night
// @Summary Submit the evening form
// @Description Store mood, lift, endurance and chess scores. Each score accepts 1-3 or bad|neutral|top, optionally prefixed with the field name (e.g. "mood-top").
// @Tags forms
// @Accept json
// @Produce json
// @Param request body domain.CreateEveningRequest true "Evening form"
// @Success 201 {object} domain.EveningEntry "Entry created"
// @Failure 400 {object} problem.Problem "Missing or invalid score"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /night [post]
func (h *FormHandler) CreateEvening(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEveningRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.CreateEvening(r.Context(), &req)
	if err != nil {
		h.errors.Write(w, r, err, "Failed to save evening form")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// CheckMorning handles GET /api/dailyform/morning/check
// @Summary Check today's morning form
// @Description Tell whether the user already submitted a morning form today (reference timezone).
// @Tags forms
// @Produce json
// @Param user_id query string true "User identifier" example(u1)
// @Success 200 {object} domain.SubmissionCheckResponse
// @Failure 400 {object} problem.Problem "Missing user_id"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /morning/check [get]
func (h *FormHandler) CheckMorning(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.CheckMorning(r.Context(), userID)
	if err != nil {
		h.errors.Write(w, r, err, "Failed to check morning form")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CheckEvening handles GET /api/dailyform/night/check
// @Summary Check today's evening form
// @Tags forms
// @Produce json
// @Param user_id query string true "User identifier" example(u1)
// @Success 200 {object} domain.SubmissionCheckResponse
// @Failure 400 {object} problem.Problem "Missing user_id"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /night/check [get]
func (h *FormHandler) CheckEvening(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.CheckEvening(r.Context(), userID)
	if err != nil {
		h.errors.Write(w, r, err, "Failed to check evening form")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
