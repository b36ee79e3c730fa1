package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/langfuse"
	"github.com/blaisecz/dailyform-tracker/internal/repository"
	"github.com/blaisecz/dailyform-tracker/internal/trend"
	"github.com/blaisecz/dailyform-tracker/pkg/pagination"
	"go.uber.org/zap"
)

const (
	msgSummarySaved    = "Summary generated and saved"
	msgSummaryNotSaved = "Summary generated but could not be saved"
	feedbackScoreName  = "user_rating"
)

// SummaryService generates, stores and serves weekly summaries.
type SummaryService interface {
	// Analyze summarizes the supplied week, or the stored one when req.Data
	// is nil, and upserts the text for today. A storage failure is reported
	// through Saved=false, not as an error.
	Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error)
	// Today returns today's summary or domain.ErrNotFound.
	Today(ctx context.Context, userID string) (*domain.DailySummary, error)
	History(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.SummaryListResponse, error)
	Feedback(ctx context.Context, req *domain.FeedbackRequest) error
}

type summaryService struct {
	generator SummaryGenerator
	summaries repository.SummaryRepository
	trends    TrendService
	langfuse  langfuse.Client
	calendar  Calendar
	logger    *zap.Logger
}

func NewSummaryService(
	generator SummaryGenerator,
	summaries repository.SummaryRepository,
	trends TrendService,
	lf langfuse.Client,
	calendar Calendar,
	logger *zap.Logger,
) SummaryService {
	if lf == nil {
		lf = langfuse.NewClient(langfuse.Config{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &summaryService{
		generator: generator,
		summaries: summaries,
		trends:    trends,
		langfuse:  lf,
		calendar:  calendar,
		logger:    logger,
	}
}

func (s *summaryService) Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	var week domain.Week
	if req.Data != nil {
		if err := checkWeekly(*req.Data); err != nil {
			return nil, err
		}
		// Supplied arrays carry no record presence, so coverage is inferred
		// from positive values.
		week = domain.Week{Data: *req.Data, Coverage: trend.CoverageOf(*req.Data)}
	} else {
		loaded, err := s.trends.Weekly(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		week = loaded
	}

	result := s.generator.Generate(ctx, req.UserID, week)

	resp := &domain.AnalyzeResponse{
		Success:  true,
		Analysis: result.Text,
		Source:   result.Source,
		Averages: result.Averages,
		Coverage: result.Coverage,
		TraceID:  result.TraceID,
	}

	saved, err := s.summaries.Upsert(ctx, req.UserID, s.calendar.Today(), result.Text)
	if err != nil {
		s.logger.Error("failed to persist summary",
			zap.String("user_id", req.UserID),
			zap.Error(fmt.Errorf("%w: %v", domain.ErrPersistence, err)),
		)
		resp.Message = msgSummaryNotSaved
		return resp, nil
	}

	resp.Saved = true
	resp.SavedData = saved
	resp.Message = msgSummarySaved
	return resp, nil
}

func (s *summaryService) Today(ctx context.Context, userID string) (*domain.DailySummary, error) {
	return s.summaries.FindByDay(ctx, userID, s.calendar.Today())
}

func (s *summaryService) History(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.SummaryListResponse, error) {
	summaries, err := s.summaries.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(summaries) > limit
	if hasMore {
		summaries = summaries[:limit]
	}

	response := &domain.SummaryListResponse{
		Data:       summaries,
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	if response.Data == nil {
		response.Data = []domain.DailySummary{}
	}

	if hasMore && len(summaries) > 0 {
		last := summaries[len(summaries)-1]
		cursor := &pagination.Cursor{ID: last.ID, Day: last.CreatedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// Feedback forwards a user rating to Langfuse. With Langfuse disabled the
// rating is accepted and dropped.
func (s *summaryService) Feedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if !s.langfuse.IsEnabled() {
		s.logger.Debug("feedback dropped, langfuse disabled", zap.String("user_id", req.UserID))
		return nil
	}

	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}

// checkWeekly enforces one value per window day on every metric.
func checkWeekly(data domain.WeeklyData) error {
	series := []struct {
		field  string
		values []int
	}{
		{"data.sleep", data.Sleep},
		{"data.motivation", data.Motivation},
		{"data.mood", data.Mood},
		{"data.lift", data.Lift},
		{"data.endurance", data.Endurance},
		{"data.chess", data.Chess},
	}
	for _, s := range series {
		if len(s.values) != domain.WindowDays {
			return &domain.ValidationError{
				Field:   s.field,
				Message: fmt.Sprintf("must contain exactly %d values", domain.WindowDays),
			}
		}
	}
	return nil
}
