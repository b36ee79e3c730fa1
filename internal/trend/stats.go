package trend

import (
	"math"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
)

// Average is the mean of the strictly positive values; 0 when there are none.
func Average(values []int) float64 {
	sum, count := 0, 0
	for _, v := range values {
		if v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// Aggregate averages every metric independently, rounded to two decimals.
func Aggregate(data domain.WeeklyData) domain.Averages {
	return domain.Averages{
		Sleep:      round2(Average(data.Sleep)),
		Motivation: round2(Average(data.Motivation)),
		Mood:       round2(Average(data.Mood)),
		Lift:       round2(Average(data.Lift)),
		Endurance:  round2(Average(data.Endurance)),
		Chess:      round2(Average(data.Chess)),
	}
}

// CoverageOf counts, per form, the days holding at least one positive metric.
// Arrays cannot tell a morning form submitted with sleep=0 and motivation=0
// from a missing day, so such a day is not counted. Prefer RecordedDays when
// the records themselves are available.
func CoverageOf(data domain.WeeklyData) domain.Coverage {
	return domain.Coverage{
		MorningDays: daysWithData(data.Sleep, data.Motivation),
		EveningDays: daysWithData(data.Mood, data.Lift, data.Endurance, data.Chess),
	}
}

func daysWithData(series ...[]int) int {
	days := 0
	for _, s := range series {
		if len(s) > days {
			days = len(s)
		}
	}

	count := 0
	for i := 0; i < days; i++ {
		for _, s := range series {
			if i < len(s) && s[i] > 0 {
				count++
				break
			}
		}
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
