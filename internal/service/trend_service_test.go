package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
)

func TestTrendService_LastSevenMorning(t *testing.T) {
	morningRepo := NewMockMorningRepository()
	morningRepo.entries = []domain.MorningEntry{
		{ID: 1, UserID: "u1", Sleep: 6, Motivation: 5, Objective1: "a", Objective2: "b", CreatedAt: monday.AddDate(0, 0, -6)},
		{ID: 2, UserID: "u1", Sleep: 8, Motivation: 9, Objective1: "c", Objective2: "d", CreatedAt: monday},
		{ID: 3, UserID: "u1", Sleep: 1, Motivation: 1, Objective1: "x", Objective2: "y", CreatedAt: monday.AddDate(0, 0, -7)},
		{ID: 4, UserID: "u2", Sleep: 2, Motivation: 2, Objective1: "x", Objective2: "y", CreatedAt: monday},
	}
	svc := NewTrendService(morningRepo, NewMockEveningRepository(), fixedCalendar())

	resp, err := svc.LastSevenMorning(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success || resp.UserID != "u1" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	wantLabels := []string{"mar.", "mer.", "jeu.", "ven.", "sam.", "dim.", "lun."}
	if !reflect.DeepEqual(resp.Labels, wantLabels) {
		t.Errorf("labels = %v, want %v", resp.Labels, wantLabels)
	}
	if want := []int{6, 0, 0, 0, 0, 0, 8}; !reflect.DeepEqual(resp.ChartData.Sleep, want) {
		t.Errorf("sleep = %v, want %v", resp.ChartData.Sleep, want)
	}
	if want := []string{"a", "", "", "", "", "", "c"}; !reflect.DeepEqual(resp.ChartData.Objective1, want) {
		t.Errorf("objective_1 = %v, want %v", resp.ChartData.Objective1, want)
	}
}

func TestTrendService_LastSevenEvening_Empty(t *testing.T) {
	svc := NewTrendService(NewMockMorningRepository(), NewMockEveningRepository(), fixedCalendar())

	resp, err := svc.LastSevenEvening(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Labels) != domain.WindowDays || len(resp.ChartData.Mood) != domain.WindowDays {
		t.Fatalf("expected full window, got %+v", resp)
	}
	for _, v := range resp.ChartData.Chess {
		if v != 0 {
			t.Fatalf("expected sentinel zeros, got %v", resp.ChartData.Chess)
		}
	}
}

func TestTrendService_Weekly(t *testing.T) {
	morningRepo := NewMockMorningRepository()
	eveningRepo := NewMockEveningRepository()
	morningRepo.entries = []domain.MorningEntry{
		{ID: 1, UserID: "u1", Sleep: 7, Motivation: 8, CreatedAt: monday.AddDate(0, 0, -1)},
	}
	eveningRepo.entries = []domain.EveningEntry{
		{ID: 1, UserID: "u1", Mood: 3, Lift: 2, Endurance: 1, Chess: 2, CreatedAt: monday},
	}
	svc := NewTrendService(morningRepo, eveningRepo, fixedCalendar())

	week, err := svc.Weekly(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.WeeklyData{
		Sleep:      []int{0, 0, 0, 0, 0, 7, 0},
		Motivation: []int{0, 0, 0, 0, 0, 8, 0},
		Mood:       []int{0, 0, 0, 0, 0, 0, 3},
		Lift:       []int{0, 0, 0, 0, 0, 0, 2},
		Endurance:  []int{0, 0, 0, 0, 0, 0, 1},
		Chess:      []int{0, 0, 0, 0, 0, 0, 2},
	}
	if !reflect.DeepEqual(week.Data, want) {
		t.Errorf("weekly = %+v, want %+v", week.Data, want)
	}
	if week.Coverage != (domain.Coverage{MorningDays: 1, EveningDays: 1}) {
		t.Errorf("coverage = %+v, want one day per form", week.Coverage)
	}
}

func TestTrendService_Weekly_ZeroValuedFormsCounted(t *testing.T) {
	morningRepo := NewMockMorningRepository()
	eveningRepo := NewMockEveningRepository()
	morningRepo.entries = []domain.MorningEntry{
		{ID: 1, UserID: "u1", Sleep: 0, Motivation: 0, Objective1: "rest", Objective2: "rest", CreatedAt: monday},
		{ID: 2, UserID: "u1", Sleep: 5, Motivation: 4, CreatedAt: monday.AddDate(0, 0, -2)},
	}
	eveningRepo.entries = []domain.EveningEntry{
		{ID: 1, UserID: "u1", Mood: 0, Lift: 0, Endurance: 0, Chess: 0, CreatedAt: monday.AddDate(0, 0, -3)},
	}
	svc := NewTrendService(morningRepo, eveningRepo, fixedCalendar())

	week, err := svc.Weekly(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if week.Coverage != (domain.Coverage{MorningDays: 2, EveningDays: 1}) {
		t.Errorf("coverage = %+v, want 2 morning and 1 evening day", week.Coverage)
	}
}

func TestTrendService_RepositoryError(t *testing.T) {
	eveningRepo := NewMockEveningRepository()
	eveningRepo.err = errors.New("timeout")
	svc := NewTrendService(NewMockMorningRepository(), eveningRepo, fixedCalendar())

	if _, err := svc.Weekly(context.Background(), "u1"); !errors.Is(err, eveningRepo.err) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestCalendar_TodayUsesReferenceZone(t *testing.T) {
	cal := fixedCalendar()
	cal.Now = func() time.Time {
		// 23:30 UTC on Sunday is already Monday in Paris.
		return time.Date(2024, 1, 14, 23, 30, 0, 0, time.UTC)
	}
	if got := cal.Today(); !got.Equal(monday) {
		t.Errorf("Today() = %v, want %v", got, monday)
	}
}
