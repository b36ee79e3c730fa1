package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blaisecz/dailyform-tracker/internal/api/validation"
	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// ErrorWriter maps service errors to problem responses.
type ErrorWriter struct {
	logger *zap.Logger
	// exposeDetail adds the internal error text to 500 responses (non-production only)
	exposeDetail bool
}

func NewErrorWriter(logger *zap.Logger, exposeDetail bool) ErrorWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ErrorWriter{logger: logger, exposeDetail: exposeDetail}
}

// Write sends a 400 for validation failures and a 500 for anything else.
func (e ErrorWriter) Write(w http.ResponseWriter, r *http.Request, err error, action string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		problem.ValidationError("Request contains invalid fields", validation.FromDomain(vErr)).WithInstance(r.URL.Path).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).WithInstance(r.URL.Path).Write(w)
	default:
		e.logger.Error(action,
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
		detail := action
		if e.exposeDetail {
			detail = action + ": " + err.Error()
		}
		problem.InternalError(detail).WithInstance(r.URL.Path).Write(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody decodes a JSON body and validates it, writing the problem
// response itself when either step fails.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}

// userIDParam reads the required user_id query parameter.
func userIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		problem.ValidationError("Missing query parameter", []problem.FieldError{
			{Field: "user_id", Message: "is required"},
		}).Write(w)
		return "", false
	}
	return userID, true
}
