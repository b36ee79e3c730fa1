// Package seed fills the database with demo form submissions.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/trend"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 14

// DemoUsers are the identifiers seeded by Run.
var DemoUsers = []string{"demo-regular", "demo-sparse"}

var objectives = []string{
	"Finish the report",
	"30 minutes of reading",
	"Go for a run",
	"Call the family",
	"Tidy the desk",
	"Study an opening",
}

// Entries builds the demo submissions ending on today. The sparse user
// skips about half of the days so charts show missing-day sentinels.
func Entries(today time.Time, rng *rand.Rand) ([]domain.MorningEntry, []domain.EveningEntry) {
	var mornings []domain.MorningEntry
	var evenings []domain.EveningEntry

	for _, userID := range DemoUsers {
		skipRate := 0.1
		if userID == "demo-sparse" {
			skipRate = 0.5
		}

		for i := seededDays - 1; i >= 0; i-- {
			day := today.AddDate(0, 0, -i)

			if rng.Float64() >= skipRate {
				mornings = append(mornings, domain.MorningEntry{
					UserID:     userID,
					Sleep:      4 + rng.Intn(7),
					Motivation: 3 + rng.Intn(8),
					Objective1: objectives[rng.Intn(len(objectives))],
					Objective2: objectives[rng.Intn(len(objectives))],
					CreatedAt:  day,
				})
			}
			if rng.Float64() >= skipRate {
				evenings = append(evenings, domain.EveningEntry{
					UserID:    userID,
					Mood:      1 + rng.Intn(3),
					Lift:      1 + rng.Intn(3),
					Endurance: 1 + rng.Intn(3),
					Chess:     1 + rng.Intn(3),
					CreatedAt: day,
				})
			}
		}
	}
	return mornings, evenings
}

// Run seeds demo morning and evening forms. Safe to call multiple times:
// a (user, day) pair that already has a form is left untouched.
func Run(db *gorm.DB, loc *time.Location, logger *zap.Logger) error {
	if err := db.AutoMigrate(&domain.MorningEntry{}, &domain.EveningEntry{}, &domain.DailySummary{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	today := trend.Today(time.Now(), loc)
	rng := rand.New(rand.NewSource(today.Unix()))
	mornings, evenings := Entries(today, rng)

	for i := range mornings {
		m := mornings[i]
		err := db.Where("user_id = ? AND created_at = ?", m.UserID, m.CreatedAt.Format(domain.DateLayout)).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to create morning form for %s: %w", m.UserID, err)
		}
	}
	for i := range evenings {
		e := evenings[i]
		err := db.Where("user_id = ? AND created_at = ?", e.UserID, e.CreatedAt.Format(domain.DateLayout)).
			FirstOrCreate(&e).Error
		if err != nil {
			return fmt.Errorf("failed to create evening form for %s: %w", e.UserID, err)
		}
	}

	logger.Info("seed completed",
		zap.Int("morning_forms", len(mornings)),
		zap.Int("evening_forms", len(evenings)),
		zap.Strings("users", DemoUsers),
	)
	return nil
}
