package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/pkg/problem"
	"go.uber.org/zap"
)

func testErrors() ErrorWriter {
	return NewErrorWriter(zap.NewNop(), false)
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problem.Problem {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != problem.ContentType {
		t.Fatalf("Content-Type = %q, want %q", ct, problem.ContentType)
	}
	var p problem.Problem
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	return p
}

func TestFormHandler_CreateMorning(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockFormService
		wantStatusCode int
		wantField      string
	}{
		{
			name:           "valid request",
			body:           `{"user_id":"u1","sleep":7,"motivation":8,"objective_1":"run","objective_2":"read"}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "zero sleep is accepted",
			body:           `{"user_id":"u1","sleep":0,"motivation":0,"objective_1":"run","objective_2":"read"}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing user_id",
			body:           `{"sleep":7,"motivation":8,"objective_1":"run","objective_2":"read"}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusBadRequest,
			wantField:      "user_id",
		},
		{
			name:           "missing sleep",
			body:           `{"user_id":"u1","motivation":8,"objective_1":"run","objective_2":"read"}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusBadRequest,
			wantField:      "sleep",
		},
		{
			name:           "motivation out of range",
			body:           `{"user_id":"u1","sleep":7,"motivation":11,"objective_1":"run","objective_2":"read"}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusBadRequest,
			wantField:      "motivation",
		},
		{
			name:           "empty objective",
			body:           `{"user_id":"u1","sleep":7,"motivation":8,"objective_1":"","objective_2":"read"}`,
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusBadRequest,
			wantField:      "objective_1",
		},
		{
			name: "service error",
			body: `{"user_id":"u1","sleep":7,"motivation":8,"objective_1":"run","objective_2":"read"}`,
			mockService: &MockFormService{
				createMorningFunc: func(ctx context.Context, req *domain.CreateMorningRequest) (*domain.MorningEntry, error) {
					return nil, errors.New("connection refused")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFormHandler(tt.mockService, testErrors())

			req := httptest.NewRequest(http.MethodPost, "/api/dailyform/morning", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.CreateMorning(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("CreateMorning() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantField != "" {
				p := decodeProblem(t, rec)
				if len(p.Errors) == 0 || p.Errors[0].Field != tt.wantField {
					t.Errorf("problem errors = %+v, want field %s", p.Errors, tt.wantField)
				}
			}
		})
	}
}

func TestFormHandler_CreateEvening(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantMood       int
		wantField      string
	}{
		{
			name:           "numeric scores",
			body:           `{"user_id":"u1","mood":3,"lift":2,"endurance":1,"chess":2}`,
			wantStatusCode: http.StatusCreated,
			wantMood:       3,
		},
		{
			name:           "prefixed labels and numeric strings",
			body:           `{"user_id":"u1","mood":"mood-top","lift":"2","endurance":"bad","chess":"chess-neutral"}`,
			wantStatusCode: http.StatusCreated,
			wantMood:       3,
		},
		{
			name:           "missing chess",
			body:           `{"user_id":"u1","mood":3,"lift":2,"endurance":1}`,
			wantStatusCode: http.StatusBadRequest,
			wantField:      "chess",
		},
		{
			name:           "score out of range",
			body:           `{"user_id":"u1","mood":4,"lift":2,"endurance":1,"chess":2}`,
			wantStatusCode: http.StatusBadRequest,
			wantField:      "mood",
		},
		{
			name:           "unknown label",
			body:           `{"user_id":"u1","mood":"great","lift":2,"endurance":1,"chess":2}`,
			wantStatusCode: http.StatusBadRequest,
			wantField:      "mood",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFormHandler(&MockFormService{}, testErrors())

			req := httptest.NewRequest(http.MethodPost, "/api/dailyform/night", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateEvening(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("CreateEvening() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusCreated {
				var entry domain.EveningEntry
				if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
					t.Fatalf("failed to decode entry: %v", err)
				}
				if entry.Mood != tt.wantMood {
					t.Errorf("mood = %d, want %d", entry.Mood, tt.wantMood)
				}
			}
			if tt.wantField != "" {
				p := decodeProblem(t, rec)
				if len(p.Errors) == 0 || p.Errors[0].Field != tt.wantField {
					t.Errorf("problem errors = %+v, want field %s", p.Errors, tt.wantField)
				}
			}
		})
	}
}

func TestFormHandler_CreateEvening_ServiceValidationError(t *testing.T) {
	mock := &MockFormService{
		createEveningFunc: func(ctx context.Context, req *domain.CreateEveningRequest) (*domain.EveningEntry, error) {
			return nil, &domain.ValidationError{Field: "lift", Message: "must be one of: 1, 2, 3, bad, neutral, top"}
		},
	}
	handler := NewFormHandler(mock, testErrors())

	req := httptest.NewRequest(http.MethodPost, "/api/dailyform/night",
		strings.NewReader(`{"user_id":"u1","mood":3,"lift":2,"endurance":1,"chess":2}`))
	rec := httptest.NewRecorder()

	handler.CreateEvening(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if p := decodeProblem(t, rec); len(p.Errors) != 1 || p.Errors[0].Field != "lift" {
		t.Errorf("problem errors = %+v, want lift", p.Errors)
	}
}

func TestFormHandler_Check(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockService    *MockFormService
		wantStatusCode int
		wantSubmitted  bool
	}{
		{
			name: "already submitted",
			url:  "/api/dailyform/morning/check?user_id=u1",
			mockService: &MockFormService{
				checkFunc: func(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
					return &domain.SubmissionCheckResponse{AlreadySubmitted: true, Date: "2024-01-15", UserID: userID}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantSubmitted:  true,
		},
		{
			name:           "not submitted",
			url:            "/api/dailyform/morning/check?user_id=u1",
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing user_id",
			url:            "/api/dailyform/morning/check",
			mockService:    &MockFormService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "repository failure",
			url:  "/api/dailyform/morning/check?user_id=u1",
			mockService: &MockFormService{
				checkFunc: func(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
					return nil, errors.New("timeout")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFormHandler(tt.mockService, testErrors())

			for name, fn := range map[string]http.HandlerFunc{
				"morning": handler.CheckMorning,
				"evening": handler.CheckEvening,
			} {
				req := httptest.NewRequest(http.MethodGet, tt.url, nil)
				rec := httptest.NewRecorder()

				fn(rec, req)

				if rec.Code != tt.wantStatusCode {
					t.Fatalf("%s check status = %d, want %d", name, rec.Code, tt.wantStatusCode)
				}
				if rec.Code != http.StatusOK {
					continue
				}
				var resp domain.SubmissionCheckResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.AlreadySubmitted != tt.wantSubmitted || resp.UserID != "u1" {
					t.Errorf("%s check = %+v", name, resp)
				}
			}
		})
	}
}

func TestErrorWriter_ExposeDetail(t *testing.T) {
	for _, expose := range []bool{false, true} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		NewErrorWriter(zap.NewNop(), expose).Write(rec, req, errors.New("pq: relation missing"), "Failed to save")

		p := decodeProblem(t, rec)
		if p.Status != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", p.Status)
		}
		if got := strings.Contains(p.Detail, "relation missing"); got != expose {
			t.Errorf("expose=%v: detail %q", expose, p.Detail)
		}
	}
}
