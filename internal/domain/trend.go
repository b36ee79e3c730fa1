package domain

import "time"

// WindowDays is the length of every trend window.
const WindowDays = 7

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

// DayDescriptor is one slot of a trend window.
type DayDescriptor struct {
	// Calendar day at midnight UTC
	Date time.Time
	// Localized short weekday name
	Label string
}

// MorningChart holds the morning metrics of a window, one value per day.
// Missing days are 0 for numbers and "" for objectives.
// @Description Morning chart arrays, oldest day first.
type MorningChart struct {
	Sleep      []int    `json:"sleep"`
	Motivation []int    `json:"motivation"`
	Objective1 []string `json:"objective_1"`
	Objective2 []string `json:"objective_2"`
}

// EveningChart holds the evening metrics of a window, one value per day.
// @Description Evening chart arrays, oldest day first.
type EveningChart struct {
	Mood      []int `json:"mood"`
	Lift      []int `json:"lift"`
	Endurance []int `json:"endurance"`
	Chess     []int `json:"chess"`
}

// MorningTrendResponse is the response for the morning last_seven endpoint.
// @Description Last seven days of morning data.
type MorningTrendResponse struct {
	Success   bool         `json:"success" example:"true"`
	UserID    string       `json:"user_id" example:"u1"`
	Labels    []string     `json:"labels"`
	ChartData MorningChart `json:"chartData"`
}

// EveningTrendResponse is the response for the night last_seven endpoint.
// @Description Last seven days of evening data.
type EveningTrendResponse struct {
	Success   bool         `json:"success" example:"true"`
	UserID    string       `json:"user_id" example:"u1"`
	Labels    []string     `json:"labels"`
	ChartData EveningChart `json:"chartData"`
}

// WeeklyData carries the six numeric metric arrays of a window.
// @Description Seven-day metric arrays used for the weekly summary.
type WeeklyData struct {
	Sleep      []int `json:"sleep" validate:"len=7,dive,min=0,max=10"`
	Motivation []int `json:"motivation" validate:"len=7,dive,min=0,max=10"`
	Mood       []int `json:"mood" validate:"len=7,dive,min=0,max=3"`
	Lift       []int `json:"lift" validate:"len=7,dive,min=0,max=3"`
	Endurance  []int `json:"endurance" validate:"len=7,dive,min=0,max=3"`
	Chess      []int `json:"chess" validate:"len=7,dive,min=0,max=3"`
}

// Averages holds per-metric means over strictly positive values.
// @Description Per-metric averages (zero days excluded).
type Averages struct {
	Sleep      float64 `json:"sleep" example:"7.3"`
	Motivation float64 `json:"motivation" example:"6.8"`
	Mood       float64 `json:"mood" example:"2.4"`
	Lift       float64 `json:"lift" example:"2"`
	Endurance  float64 `json:"endurance" example:"1.5"`
	Chess      float64 `json:"chess" example:"2.7"`
}

// Coverage counts the days of a window that hold data for each form.
// @Description Days with a submitted form.
type Coverage struct {
	MorningDays int `json:"morning_days" example:"5"`
	EveningDays int `json:"evening_days" example:"4"`
}

// Week is the seven-day input of a summary: the aligned arrays plus how many
// days actually hold a form.
type Week struct {
	Data     WeeklyData
	Coverage Coverage
}
