package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/langfuse"
)

func dayKey(userID string, day time.Time) string {
	return userID + "|" + day.Format(domain.DateLayout)
}

// MockMorningRepository is a mock implementation of MorningRepository
type MockMorningRepository struct {
	entries []domain.MorningEntry
	nextID  uint
	err     error
}

func NewMockMorningRepository() *MockMorningRepository {
	return &MockMorningRepository{nextID: 1}
}

func (m *MockMorningRepository) Create(ctx context.Context, entry *domain.MorningEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockMorningRepository) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, e := range m.entries {
		if dayKey(e.UserID, e.CreatedAt) == dayKey(userID, day) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockMorningRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.MorningEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MorningEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

// MockEveningRepository is a mock implementation of EveningRepository
type MockEveningRepository struct {
	entries []domain.EveningEntry
	nextID  uint
	err     error
}

func NewMockEveningRepository() *MockEveningRepository {
	return &MockEveningRepository{nextID: 1}
}

func (m *MockEveningRepository) Create(ctx context.Context, entry *domain.EveningEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockEveningRepository) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, e := range m.entries {
		if dayKey(e.UserID, e.CreatedAt) == dayKey(userID, day) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockEveningRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.EveningEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.EveningEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

// MockSummaryRepository keeps one row per (user, day), like the unique index.
type MockSummaryRepository struct {
	rows      map[string]*domain.DailySummary
	nextID    uint
	upserts   int
	upsertErr error
	err       error
}

func NewMockSummaryRepository() *MockSummaryRepository {
	return &MockSummaryRepository{rows: make(map[string]*domain.DailySummary), nextID: 1}
}

func (m *MockSummaryRepository) Upsert(ctx context.Context, userID string, day time.Time, text string) (*domain.DailySummary, error) {
	m.upserts++
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	key := dayKey(userID, day)
	row, ok := m.rows[key]
	if !ok {
		row = &domain.DailySummary{ID: m.nextID, UserID: userID, CreatedAt: day}
		m.nextID++
		m.rows[key] = row
	}
	row.AISummary = text
	row.UpdatedAt = time.Now()
	stored := *row
	return &stored, nil
}

func (m *MockSummaryRepository) FindByDay(ctx context.Context, userID string, day time.Time) (*domain.DailySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[dayKey(userID, day)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored := *row
	return &stored, nil
}

func (m *MockSummaryRepository) List(ctx context.Context, userID string, filter domain.SummaryFilter) ([]domain.DailySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailySummary
	for _, row := range m.rows {
		if row.UserID == userID {
			result = append(result, *row)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// MockTextGenerator is a mock implementation of llm.TextGenerator
type MockTextGenerator struct {
	text    string
	err     error
	delay   time.Duration
	prompts []string
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// MockLangfuseClient records traces and scores in memory.
type MockLangfuseClient struct {
	mu      sync.Mutex
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return "trace-1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Close(ctx context.Context) error {
	return nil
}

// fixedCalendar pins "now" to 2024-01-15 10:00 in Paris (a Monday).
func fixedCalendar() Calendar {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		loc = time.UTC
	}
	return Calendar{
		Location: loc,
		Locale:   "fr-FR",
		Now: func() time.Time {
			return time.Date(2024, 1, 15, 10, 0, 0, 0, loc)
		},
	}
}

func intPtr(v int) *int {
	return &v
}
