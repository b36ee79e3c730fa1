package trend

import (
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
)

func dayKey(t time.Time) string {
	return DateOf(t).Format(domain.DateLayout)
}

// AlignMorning maps morning records onto the window by their created_at
// date. When a day holds several records the lowest ID wins. Missing days
// are 0 / "".
func AlignMorning(window []domain.DayDescriptor, records []domain.MorningEntry) domain.MorningChart {
	byDay := make(map[string]domain.MorningEntry, len(records))
	for _, r := range records {
		key := dayKey(r.CreatedAt)
		if cur, ok := byDay[key]; !ok || r.ID < cur.ID {
			byDay[key] = r
		}
	}

	chart := domain.MorningChart{
		Sleep:      make([]int, len(window)),
		Motivation: make([]int, len(window)),
		Objective1: make([]string, len(window)),
		Objective2: make([]string, len(window)),
	}
	for i, day := range window {
		r, ok := byDay[day.Date.Format(domain.DateLayout)]
		if !ok {
			continue
		}
		chart.Sleep[i] = r.Sleep
		chart.Motivation[i] = r.Motivation
		chart.Objective1[i] = r.Objective1
		chart.Objective2[i] = r.Objective2
	}
	return chart
}

// AlignEvening maps evening records onto the window with the same rules as
// AlignMorning.
func AlignEvening(window []domain.DayDescriptor, records []domain.EveningEntry) domain.EveningChart {
	byDay := make(map[string]domain.EveningEntry, len(records))
	for _, r := range records {
		key := dayKey(r.CreatedAt)
		if cur, ok := byDay[key]; !ok || r.ID < cur.ID {
			byDay[key] = r
		}
	}

	chart := domain.EveningChart{
		Mood:      make([]int, len(window)),
		Lift:      make([]int, len(window)),
		Endurance: make([]int, len(window)),
		Chess:     make([]int, len(window)),
	}
	for i, day := range window {
		r, ok := byDay[day.Date.Format(domain.DateLayout)]
		if !ok {
			continue
		}
		chart.Mood[i] = r.Mood
		chart.Lift[i] = r.Lift
		chart.Endurance[i] = r.Endurance
		chart.Chess[i] = r.Chess
	}
	return chart
}

// Weekly combines both charts into the numeric arrays used for summaries.
func Weekly(morning domain.MorningChart, evening domain.EveningChart) domain.WeeklyData {
	return domain.WeeklyData{
		Sleep:      morning.Sleep,
		Motivation: morning.Motivation,
		Mood:       evening.Mood,
		Lift:       evening.Lift,
		Endurance:  evening.Endurance,
		Chess:      evening.Chess,
	}
}

// RecordedDays counts the window days holding at least one record, whatever
// the record's values. created holds the created_at of each record.
func RecordedDays(window []domain.DayDescriptor, created []time.Time) int {
	present := make(map[string]bool, len(created))
	for _, t := range created {
		present[dayKey(t)] = true
	}

	count := 0
	for _, day := range window {
		if present[day.Date.Format(domain.DateLayout)] {
			count++
		}
	}
	return count
}
