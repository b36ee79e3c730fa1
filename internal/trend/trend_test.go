package trend

import (
	"reflect"
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/blaisecz/dailyform-tracker/internal/domain"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	return loc
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildWindow(t *testing.T) {
	today := day(2024, 1, 15) // Monday

	window := BuildWindow(today, "fr-FR")
	if len(window) != domain.WindowDays {
		t.Fatalf("expected %d days, got %d", domain.WindowDays, len(window))
	}
	if !window[len(window)-1].Date.Equal(today) {
		t.Errorf("last day = %v, want %v", window[len(window)-1].Date, today)
	}
	for i := 1; i < len(window); i++ {
		if got := window[i].Date.Sub(window[i-1].Date); got != 24*time.Hour {
			t.Errorf("day %d is %v after day %d, want 24h", i, got, i-1)
		}
	}

	wantLabels := []string{"mar.", "mer.", "jeu.", "ven.", "sam.", "dim.", "lun."}
	if got := Labels(window); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("labels = %v, want %v", got, wantLabels)
	}
}

func TestBuildWindow_Locales(t *testing.T) {
	today := day(2024, 1, 15)

	if got := Labels(BuildWindow(today, "en-US"))[6]; got != "Mon" {
		t.Errorf("en-US label = %q, want Mon", got)
	}
	if got := Labels(BuildWindow(today, "xx-XX"))[6]; got != "lun." {
		t.Errorf("unknown locale label = %q, want lun.", got)
	}
}

func TestBuildWindow_Deterministic(t *testing.T) {
	today := day(2024, 3, 31) // DST switch in Europe, irrelevant for civil days
	first := BuildWindow(today, "fr-FR")
	second := BuildWindow(today, "fr-FR")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("BuildWindow should return identical output for the same day")
	}
	if !first[0].Date.Equal(day(2024, 3, 25)) {
		t.Errorf("first day = %v, want 2024-03-25", first[0].Date)
	}
}

func TestBuildWindow_CrossesMonthAndYear(t *testing.T) {
	window := BuildWindow(day(2024, 1, 3), "fr-FR")
	if !window[0].Date.Equal(day(2023, 12, 28)) {
		t.Errorf("first day = %v, want 2023-12-28", window[0].Date)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC)

	if got := Today(now, mustLoad(t, "Europe/Paris")); !got.Equal(day(2024, 1, 16)) {
		t.Errorf("Paris today = %v, want 2024-01-16", got)
	}
	if got := Today(now, mustLoad(t, "America/New_York")); !got.Equal(day(2024, 1, 15)) {
		t.Errorf("New York today = %v, want 2024-01-15", got)
	}
	if got := Today(now, nil); !got.Equal(day(2024, 1, 15)) {
		t.Errorf("nil location today = %v, want 2024-01-15", got)
	}
}

func TestDateOf(t *testing.T) {
	paris := mustLoad(t, "Europe/Paris")
	newYork := mustLoad(t, "America/New_York")

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"midnight UTC", day(2024, 1, 15), day(2024, 1, 15)},
		{"date scanned in New York", time.Date(2024, 1, 15, 0, 0, 0, 0, newYork), day(2024, 1, 15)},
		{"date scanned in Paris", time.Date(2024, 1, 15, 0, 0, 0, 0, paris), day(2024, 1, 15)},
		{"time of day dropped", time.Date(2024, 1, 15, 23, 59, 0, 0, newYork), day(2024, 1, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateOf(tt.in)
			if !got.Equal(tt.want) || got.Location() != time.UTC {
				t.Errorf("DateOf(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlignMorning(t *testing.T) {
	window := BuildWindow(day(2024, 1, 15), "fr-FR")

	records := []domain.MorningEntry{
		{ID: 4, Sleep: 9, Motivation: 9, Objective1: "later", Objective2: "later", CreatedAt: day(2024, 1, 15)},
		{ID: 1, Sleep: 6, Motivation: 5, Objective1: "run", Objective2: "read", CreatedAt: day(2024, 1, 9)},
		{ID: 3, Sleep: 7, Motivation: 8, Objective1: "first", Objective2: "first", CreatedAt: day(2024, 1, 15)},
		{ID: 9, Sleep: 1, Motivation: 1, Objective1: "old", Objective2: "old", CreatedAt: day(2024, 1, 2)},
	}

	chart := AlignMorning(window, records)

	if want := []int{6, 0, 0, 0, 0, 0, 7}; !reflect.DeepEqual(chart.Sleep, want) {
		t.Errorf("sleep = %v, want %v", chart.Sleep, want)
	}
	if want := []int{5, 0, 0, 0, 0, 0, 8}; !reflect.DeepEqual(chart.Motivation, want) {
		t.Errorf("motivation = %v, want %v", chart.Motivation, want)
	}
	if want := []string{"run", "", "", "", "", "", "first"}; !reflect.DeepEqual(chart.Objective1, want) {
		t.Errorf("objective_1 = %v, want %v", chart.Objective1, want)
	}
	if len(chart.Objective2) != domain.WindowDays {
		t.Errorf("objective_2 has %d values, want %d", len(chart.Objective2), domain.WindowDays)
	}
}

func TestAlignEvening_NoRecords(t *testing.T) {
	window := BuildWindow(day(2024, 1, 15), "fr-FR")
	chart := AlignEvening(window, nil)

	for name, series := range map[string][]int{
		"mood": chart.Mood, "lift": chart.Lift, "endurance": chart.Endurance, "chess": chart.Chess,
	} {
		if len(series) != domain.WindowDays {
			t.Fatalf("%s has %d values, want %d", name, len(series), domain.WindowDays)
		}
		for i, v := range series {
			if v != 0 {
				t.Errorf("%s[%d] = %d, want sentinel 0", name, i, v)
			}
		}
	}
}

func TestAlignEvening_MissingDayExcludedFromAverage(t *testing.T) {
	window := BuildWindow(day(2024, 1, 15), "fr-FR")

	var records []domain.EveningEntry
	for i, d := range window {
		if i == 2 {
			continue // user u2 skipped day 3
		}
		records = append(records, domain.EveningEntry{
			ID: uint(i + 1), UserID: "u2", Mood: 3, Lift: 2, Endurance: 1, Chess: 2, CreatedAt: d.Date,
		})
	}

	chart := AlignEvening(window, records)
	if chart.Mood[2] != 0 || chart.Lift[2] != 0 || chart.Endurance[2] != 0 || chart.Chess[2] != 0 {
		t.Fatalf("day 3 should be sentinel for every metric: %+v", chart)
	}

	averages := Aggregate(Weekly(domain.MorningChart{}, chart))
	if averages.Mood != 3 || averages.Lift != 2 || averages.Endurance != 1 || averages.Chess != 2 {
		t.Errorf("sentinel day leaked into averages: %+v", averages)
	}
	if cov := CoverageOf(Weekly(domain.MorningChart{}, chart)); cov.EveningDays != 6 || cov.MorningDays != 0 {
		t.Errorf("coverage = %+v, want 6 evening days", cov)
	}
}

func TestAlignEvening_DateColumnInAnyZoneKeepsItsDay(t *testing.T) {
	window := BuildWindow(day(2024, 1, 15), "fr-FR")
	records := []domain.EveningEntry{
		// A driver may hand back a date column as local midnight.
		{ID: 1, Mood: 2, Lift: 2, Endurance: 2, Chess: 2, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, mustLoad(t, "America/New_York"))},
		{ID: 2, Mood: 3, Lift: 3, Endurance: 3, Chess: 3, CreatedAt: time.Date(2024, 1, 14, 0, 0, 0, 0, mustLoad(t, "Asia/Tokyo"))},
	}

	chart := AlignEvening(window, records)
	if want := []int{0, 0, 0, 0, 0, 3, 2}; !reflect.DeepEqual(chart.Mood, want) {
		t.Errorf("mood = %v, want %v", chart.Mood, want)
	}
}

func TestRecordedDays(t *testing.T) {
	window := BuildWindow(day(2024, 1, 15), "en-US")

	tests := []struct {
		name    string
		created []time.Time
		want    int
	}{
		{"none", nil, 0},
		{"one day", []time.Time{day(2024, 1, 15)}, 1},
		{"duplicates counted once", []time.Time{day(2024, 1, 15), day(2024, 1, 15), day(2024, 1, 10)}, 2},
		{"outside window ignored", []time.Time{day(2024, 1, 8), day(2024, 1, 16)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordedDays(window, tt.created); got != tt.want {
				t.Errorf("RecordedDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"nil", nil, 0},
		{"empty", []int{}, 0},
		{"all zero", []int{0, 0, 0}, 0},
		{"zero excluded", []int{2, 0, 4}, 3},
		{"single", []int{0, 0, 0, 0, 0, 0, 5}, 5},
		{"fractional", []int{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.values); got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestAggregate_RoundsToTwoDecimals(t *testing.T) {
	data := domain.WeeklyData{
		Sleep:      []int{7, 8, 8, 0, 0, 0, 0},
		Motivation: []int{0, 0, 0, 0, 0, 0, 0},
		Mood:       []int{1, 2, 2, 0, 0, 0, 0},
	}

	got := Aggregate(data)
	if got.Sleep != 7.67 {
		t.Errorf("sleep average = %v, want 7.67", got.Sleep)
	}
	if got.Mood != 1.67 {
		t.Errorf("mood average = %v, want 1.67", got.Mood)
	}
	if got.Motivation != 0 || got.Lift != 0 {
		t.Errorf("missing metrics should average to 0: %+v", got)
	}
}
