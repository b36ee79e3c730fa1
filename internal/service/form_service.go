package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/repository"
)

type FormService interface {
	CreateMorning(ctx context.Context, req *domain.CreateMorningRequest) (*domain.MorningEntry, error)
	CreateEvening(ctx context.Context, req *domain.CreateEveningRequest) (*domain.EveningEntry, error)
	CheckMorning(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error)
	CheckEvening(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error)
}

type formService struct {
	morningRepo repository.MorningRepository
	eveningRepo repository.EveningRepository
	calendar    Calendar
}

func NewFormService(morningRepo repository.MorningRepository, eveningRepo repository.EveningRepository, calendar Calendar) FormService {
	return &formService{
		morningRepo: morningRepo,
		eveningRepo: eveningRepo,
		calendar:    calendar,
	}
}

// CreateMorning stores a morning form dated today. Several forms per day are kept.
func (s *formService) CreateMorning(ctx context.Context, req *domain.CreateMorningRequest) (*domain.MorningEntry, error) {
	if req.Sleep == nil {
		return nil, &domain.ValidationError{Field: "sleep", Message: "is required"}
	}
	if req.Motivation == nil {
		return nil, &domain.ValidationError{Field: "motivation", Message: "is required"}
	}

	entry := &domain.MorningEntry{
		UserID:     req.UserID,
		Sleep:      *req.Sleep,
		Motivation: *req.Motivation,
		Objective1: req.Objective1,
		Objective2: req.Objective2,
		CreatedAt:  s.calendar.Today(),
	}

	if err := s.morningRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create morning entry: %w", err)
	}

	return entry, nil
}

// CreateEvening normalizes the four scores and stores the form dated today.
func (s *formService) CreateEvening(ctx context.Context, req *domain.CreateEveningRequest) (*domain.EveningEntry, error) {
	scores, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	entry := &domain.EveningEntry{
		UserID:    req.UserID,
		Mood:      scores.Mood,
		Lift:      scores.Lift,
		Endurance: scores.Endurance,
		Chess:     scores.Chess,
		CreatedAt: s.calendar.Today(),
	}

	if err := s.eveningRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create evening entry: %w", err)
	}

	return entry, nil
}

func (s *formService) CheckMorning(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
	today := s.calendar.Today()
	exists, err := s.morningRepo.ExistsOnDay(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("check morning entry: %w", err)
	}
	return submissionCheck(userID, today.Format(domain.DateLayout), exists), nil
}

func (s *formService) CheckEvening(ctx context.Context, userID string) (*domain.SubmissionCheckResponse, error) {
	today := s.calendar.Today()
	exists, err := s.eveningRepo.ExistsOnDay(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("check evening entry: %w", err)
	}
	return submissionCheck(userID, today.Format(domain.DateLayout), exists), nil
}

func submissionCheck(userID, date string, exists bool) *domain.SubmissionCheckResponse {
	return &domain.SubmissionCheckResponse{
		AlreadySubmitted: exists,
		Date:             date,
		UserID:           userID,
	}
}
