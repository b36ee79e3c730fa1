package domain

import "time"

// MorningEntry is one morning form submission. Several submissions on the
// same day are allowed.
type MorningEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(255);not null;index:idx_morning_forms_user_day" json:"user_id"`
	Sleep      int       `gorm:"type:smallint;not null;check:sleep BETWEEN 0 AND 10" json:"sleep"`
	Motivation int       `gorm:"type:smallint;not null;check:motivation BETWEEN 0 AND 10" json:"motivation"`
	Objective1 string    `gorm:"column:objective_1;type:varchar(255);not null" json:"objective_1"`
	Objective2 string    `gorm:"column:objective_2;type:varchar(255);not null" json:"objective_2"`
	CreatedAt  time.Time `gorm:"type:date;not null;index:idx_morning_forms_user_day" json:"created_at"`
}

func (MorningEntry) TableName() string {
	return "morning_forms"
}

// EveningEntry is one evening form submission with every score on the 1-3 scale.
type EveningEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null;index:idx_night_forms_user_day" json:"user_id"`
	Mood      int       `gorm:"type:smallint;not null;check:mood BETWEEN 1 AND 3" json:"mood"`
	Lift      int       `gorm:"type:smallint;not null;check:lift BETWEEN 1 AND 3" json:"lift"`
	Endurance int       `gorm:"type:smallint;not null;check:endurance BETWEEN 1 AND 3" json:"endurance"`
	Chess     int       `gorm:"type:smallint;not null;check:chess BETWEEN 1 AND 3" json:"chess"`
	CreatedAt time.Time `gorm:"type:date;not null;index:idx_night_forms_user_day" json:"created_at"`
}

func (EveningEntry) TableName() string {
	return "night_forms"
}

// CreateMorningRequest is the request body for the morning form.
// @Description Morning form: sleep quality, motivation and two objectives.
type CreateMorningRequest struct {
	// Opaque user identifier
	UserID string `json:"user_id" validate:"required,max=255" example:"u1"`
	// Sleep quality from 0 to 10
	Sleep *int `json:"sleep" validate:"required,min=0,max=10" example:"7" minimum:"0" maximum:"10"`
	// Motivation from 0 to 10
	Motivation *int `json:"motivation" validate:"required,min=0,max=10" example:"8" minimum:"0" maximum:"10"`
	// First objective of the day
	Objective1 string `json:"objective_1" validate:"required,max=255" example:"Finish the report"`
	// Second objective of the day
	Objective2 string `json:"objective_2" validate:"required,max=255" example:"30 minutes of reading"`
}

// CreateEveningRequest is the request body for the evening form. Scores
// accept 1-3 as numbers or strings, or the labels bad/neutral/top with an
// optional "<field>-" prefix.
// @Description Evening form: mood, lift, endurance and chess scores.
type CreateEveningRequest struct {
	// Opaque user identifier
	UserID string `json:"user_id" validate:"required,max=255" example:"u1"`
	// Mood score (1-3 or bad|neutral|top)
	Mood any `json:"mood" validate:"required,dailyscore=mood" swaggertype:"string" example:"mood-top"`
	// Strength training score
	Lift any `json:"lift" validate:"required,dailyscore=lift" swaggertype:"string" example:"2"`
	// Endurance training score
	Endurance any `json:"endurance" validate:"required,dailyscore=endurance" swaggertype:"string" example:"3"`
	// Chess session score
	Chess any `json:"chess" validate:"required,dailyscore=chess" swaggertype:"string" example:"bad"`
}

// EveningScores holds normalized evening values.
type EveningScores struct {
	Mood      int
	Lift      int
	Endurance int
	Chess     int
}

// Normalize converts every score, stopping at the first invalid field.
func (r *CreateEveningRequest) Normalize() (EveningScores, error) {
	var scores EveningScores
	fields := []struct {
		name  string
		value any
		dst   *int
	}{
		{"mood", r.Mood, &scores.Mood},
		{"lift", r.Lift, &scores.Lift},
		{"endurance", r.Endurance, &scores.Endurance},
		{"chess", r.Chess, &scores.Chess},
	}
	for _, f := range fields {
		score, err := NormalizeScore(f.value, f.name)
		if err != nil {
			return EveningScores{}, err
		}
		*f.dst = score
	}
	return scores, nil
}

// SubmissionCheckResponse tells whether a form was already submitted today.
// @Description Today's submission status for a form.
type SubmissionCheckResponse struct {
	AlreadySubmitted bool   `json:"alreadySubmitted" example:"true"`
	Date             string `json:"date" example:"2024-01-15"`
	UserID           string `json:"user_id" example:"u1"`
}
