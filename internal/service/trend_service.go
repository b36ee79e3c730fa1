package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/repository"
	"github.com/blaisecz/dailyform-tracker/internal/trend"
)

// TrendService renders the last seven days of a user's forms.
type TrendService interface {
	LastSevenMorning(ctx context.Context, userID string) (*domain.MorningTrendResponse, error)
	LastSevenEvening(ctx context.Context, userID string) (*domain.EveningTrendResponse, error)
	// Weekly returns the six numeric arrays of the current window along with
	// the number of days holding a submitted form.
	Weekly(ctx context.Context, userID string) (domain.Week, error)
}

type trendService struct {
	morningRepo repository.MorningRepository
	eveningRepo repository.EveningRepository
	calendar    Calendar
}

func NewTrendService(morningRepo repository.MorningRepository, eveningRepo repository.EveningRepository, calendar Calendar) TrendService {
	return &trendService{
		morningRepo: morningRepo,
		eveningRepo: eveningRepo,
		calendar:    calendar,
	}
}

func (s *trendService) LastSevenMorning(ctx context.Context, userID string) (*domain.MorningTrendResponse, error) {
	window := s.calendar.Window()
	records, err := s.morningRecords(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	return &domain.MorningTrendResponse{
		Success:   true,
		UserID:    userID,
		Labels:    trend.Labels(window),
		ChartData: trend.AlignMorning(window, records),
	}, nil
}

func (s *trendService) LastSevenEvening(ctx context.Context, userID string) (*domain.EveningTrendResponse, error) {
	window := s.calendar.Window()
	records, err := s.eveningRecords(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	return &domain.EveningTrendResponse{
		Success:   true,
		UserID:    userID,
		Labels:    trend.Labels(window),
		ChartData: trend.AlignEvening(window, records),
	}, nil
}

func (s *trendService) Weekly(ctx context.Context, userID string) (domain.Week, error) {
	window := s.calendar.Window()

	morning, err := s.morningRecords(ctx, userID, window)
	if err != nil {
		return domain.Week{}, err
	}
	evening, err := s.eveningRecords(ctx, userID, window)
	if err != nil {
		return domain.Week{}, err
	}

	morningDays := make([]time.Time, len(morning))
	for i, r := range morning {
		morningDays[i] = r.CreatedAt
	}
	eveningDays := make([]time.Time, len(evening))
	for i, r := range evening {
		eveningDays[i] = r.CreatedAt
	}

	return domain.Week{
		Data: trend.Weekly(trend.AlignMorning(window, morning), trend.AlignEvening(window, evening)),
		Coverage: domain.Coverage{
			MorningDays: trend.RecordedDays(window, morningDays),
			EveningDays: trend.RecordedDays(window, eveningDays),
		},
	}, nil
}

func (s *trendService) morningRecords(ctx context.Context, userID string, window []domain.DayDescriptor) ([]domain.MorningEntry, error) {
	records, err := s.morningRepo.ListRange(ctx, userID, window[0].Date, window[len(window)-1].Date)
	if err != nil {
		return nil, fmt.Errorf("load morning entries: %w", err)
	}
	return records, nil
}

func (s *trendService) eveningRecords(ctx context.Context, userID string, window []domain.DayDescriptor) ([]domain.EveningEntry, error) {
	records, err := s.eveningRepo.ListRange(ctx, userID, window[0].Date, window[len(window)-1].Date)
	if err != nil {
		return nil, fmt.Errorf("load evening entries: %w", err)
	}
	return records, nil
}
