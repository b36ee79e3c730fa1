package domain

import "time"

// SummarySource tells where a summary text came from.
type SummarySource string

const (
	SummarySourceAI       SummarySource = "ai"
	SummarySourceFallback SummarySource = "fallback"
)

// DailySummary is the stored weekly summary for one user and one day.
// At most one row exists per (user_id, created_at).
type DailySummary struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_ai_summaries_user_day" json:"user_id"`
	AISummary string    `gorm:"column:ai_summary;type:text;not null" json:"ai_summary"`
	CreatedAt time.Time `gorm:"type:date;not null;uniqueIndex:idx_ai_summaries_user_day" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailySummary) TableName() string {
	return "ai_summaries"
}

// SummaryResult is the output of summary generation.
type SummaryResult struct {
	Text     string
	Source   SummarySource
	Averages Averages
	Coverage Coverage
	// Langfuse trace ID, empty when tracing is disabled
	TraceID string
}

// AnalyzeRequest is the request body for the analyze endpoint. When Data is
// omitted the server loads the last seven days itself.
// @Description Weekly summary request.
type AnalyzeRequest struct {
	UserID string      `json:"user_id" validate:"required,max=255" example:"u1"`
	Data   *WeeklyData `json:"data,omitempty"`
}

// AnalyzeResponse is the response for the analyze endpoint.
// @Description Generated weekly summary and its persistence status.
type AnalyzeResponse struct {
	Success   bool          `json:"success" example:"true"`
	Analysis  string        `json:"analysis"`
	Source    SummarySource `json:"source" example:"ai" enums:"ai,fallback"`
	Averages  Averages      `json:"averages"`
	Coverage  Coverage      `json:"coverage"`
	Saved     bool          `json:"saved" example:"true"`
	SavedData *DailySummary `json:"savedData,omitempty"`
	Message   string        `json:"message" example:"Summary generated and saved"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty"`
}

// SummaryFilter contains pagination parameters for the summary history.
type SummaryFilter struct {
	Limit  int
	Cursor string
}

// SummaryListResponse is the response body for the summary history.
// @Description Paginated list of stored summaries, newest first.
type SummaryListResponse struct {
	Data       []DailySummary     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"false"`
}

// FeedbackRequest is the request body for summary feedback.
// @Description User rating of a generated summary.
type FeedbackRequest struct {
	UserID  string `json:"user_id" validate:"required,max=255" example:"u1"`
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Score   int    `json:"score" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"Helpful!"`
}
