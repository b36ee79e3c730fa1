package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ScoreBad     = 1
	ScoreNeutral = 2
	ScoreTop     = 3
)

var scoreLabels = map[string]int{
	"bad":     ScoreBad,
	"neutral": ScoreNeutral,
	"top":     ScoreTop,
}

// NormalizeScore coerces an evening-form value into the 1-3 scale.
//
// Accepted inputs are whole numbers in [1,3] (JSON numbers or numeric
// strings) and the labels bad, neutral and top, case-insensitive, optionally
// prefixed with "<field>-" (e.g. "mood-top").
func NormalizeScore(value any, field string) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, &ValidationError{Field: field, Message: "is required"}
	case int:
		return scoreFromNumber(float64(v), field, value)
	case int64:
		return scoreFromNumber(float64(v), field, value)
	case float32:
		return scoreFromNumber(float64(v), field, value)
	case float64:
		return scoreFromNumber(v, field, value)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, invalidScore(field, value)
		}
		return scoreFromNumber(f, field, value)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, &ValidationError{Field: field, Message: "is required"}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return scoreFromNumber(f, field, value)
		}
		label := strings.TrimPrefix(strings.ToLower(s), strings.ToLower(field)+"-")
		if score, ok := scoreLabels[label]; ok {
			return score, nil
		}
		return 0, invalidScore(field, value)
	default:
		return 0, invalidScore(field, value)
	}
}

func scoreFromNumber(f float64, field string, raw any) (int, error) {
	if math.IsNaN(f) || f != math.Trunc(f) || f < ScoreBad || f > ScoreTop {
		return 0, invalidScore(field, raw)
	}
	return int(f), nil
}

func invalidScore(field string, raw any) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: 1, 2, 3 or %[1]s-bad | %[1]s-neutral | %[1]s-top (got %q)", field, fmt.Sprint(raw)),
	}
}
