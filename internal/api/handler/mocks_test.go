package handler

import (
	"context"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
)

// MockFormService is a mock implementation of FormService
type MockFormService struct {
	createMorningFunc func(ctx context.Context, req *domain.CreateMorningRequest) (*domain.MorningEntry, error)
	createEveningFunc func(ctx context.Context, req *domain.CreateEveningRequest) (*domain.EveningEntry, error)
	checkFunc         func(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error)
}

func (m *MockFormService) CreateMorning(ctx context.Context, req *domain.CreateMorningRequest) (*domain.MorningEntry, error) {
	if m.createMorningFunc != nil {
		return m.createMorningFunc(ctx, req)
	}
	return &domain.MorningEntry{ID: 1, UserID: req.UserID, Sleep: *req.Sleep, Motivation: *req.Motivation}, nil
}

func (m *MockFormService) CreateEvening(ctx context.Context, req *domain.CreateEveningRequest) (*domain.EveningEntry, error) {
	if m.createEveningFunc != nil {
		return m.createEveningFunc(ctx, req)
	}
	scores, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	return &domain.EveningEntry{ID: 1, UserID: req.UserID, Mood: scores.Mood, Lift: scores.Lift, Endurance: scores.Endurance, Chess: scores.Chess}, nil
}

func (m *MockFormService) CheckMorning(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
	return m.check(ctx, userID)
}

func (m *MockFormService) CheckEvening(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
	return m.check(ctx, userID)
}

func (m *MockFormService) check(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, userID)
	}
	return &domain.SubmissionCheckResponse{UserID: userID, Date: "2024-01-15"}, nil
}

// MockTrendService is a mock implementation of TrendService
type MockTrendService struct {
	err error
}

func (m *MockTrendService) LastSevenMorning(ctx context.Context, userID string) (*domain.MorningTrendResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.MorningTrendResponse{
		Success: true,
		UserID:  userID,
		Labels:  []string{"mar.", "mer.", "jeu.", "ven.", "sam.", "dim.", "lun."},
		ChartData: domain.MorningChart{
			Sleep:      []int{7, 0, 0, 0, 0, 0, 8},
			Motivation: []int{6, 0, 0, 0, 0, 0, 9},
			Objective1: []string{"run", "", "", "", "", "", "read"},
			Objective2: []string{"cook", "", "", "", "", "", "write"},
		},
	}, nil
}

func (m *MockTrendService) LastSevenEvening(ctx context.Context, userID string) (*domain.EveningTrendResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.EveningTrendResponse{
		Success: true,
		UserID:  userID,
		Labels:  []string{"mar.", "mer.", "jeu.", "ven.", "sam.", "dim.", "lun."},
		ChartData: domain.EveningChart{
			Mood:      make([]int, domain.WindowDays),
			Lift:      make([]int, domain.WindowDays),
			Endurance: make([]int, domain.WindowDays),
			Chess:     make([]int, domain.WindowDays),
		},
	}, nil
}

func (m *MockTrendService) Weekly(ctx context.Context, userID string) (domain.Week, error) {
	return domain.Week{}, m.err
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	analyzeFunc  func(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error)
	todayFunc    func(ctx context.Context, userID string) (*domain.DailySummary, error)
	historyFunc  func(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.SummaryListResponse, error)
	feedbackFunc func(ctx context.Context, req *domain.FeedbackRequest) error
}

func (m *MockSummaryService) Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, req)
	}
	return &domain.AnalyzeResponse{Success: true, Analysis: "ok", Source: domain.SummarySourceAI, Saved: true}, nil
}

func (m *MockSummaryService) Today(ctx context.Context, userID string) (*domain.DailySummary, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSummaryService) History(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.SummaryListResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, filter)
	}
	return &domain.SummaryListResponse{Data: []domain.DailySummary{}}, nil
}

func (m *MockSummaryService) Feedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, req)
	}
	return nil
}
