package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/pkg/pagination"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres error codes that mean the ON CONFLICT target cannot be used.
const (
	pgInvalidColumnReference = "42P10"
	pgUndefinedObject        = "42704"
)

type SummaryRepository interface {
	// Upsert stores text as the summary of (userID, day), replacing any
	// previous text, and returns the stored row.
	Upsert(ctx context.Context, userID string, day time.Time, text string) (*domain.DailySummary, error)
	FindByDay(ctx context.Context, userID string, day time.Time) (*domain.DailySummary, error)
	List(ctx context.Context, userID string, filter domain.SummaryFilter) ([]domain.DailySummary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Upsert(ctx context.Context, userID string, day time.Time, text string) (*domain.DailySummary, error) {
	summary := &domain.DailySummary{
		UserID:    userID,
		AISummary: text,
		CreatedAt: day,
	}

	if err := upsertSummary(r.db.WithContext(ctx), summary).Error; err != nil {
		if !missingConflictTarget(err) {
			return nil, fmt.Errorf("upsert summary: %w", err)
		}
		// Table created without the unique index: update, then insert.
		if err := r.updateOrInsert(ctx, userID, day, text); err != nil {
			return nil, fmt.Errorf("upsert summary (update/insert): %w", err)
		}
	}

	return r.FindByDay(ctx, userID, day)
}

func upsertSummary(db *gorm.DB, summary *domain.DailySummary) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "created_at"}},
		DoUpdates: clause.AssignmentColumns([]string{"ai_summary", "updated_at"}),
	}).Create(summary)
}

func (r *summaryRepository) updateOrInsert(ctx context.Context, userID string, day time.Time, text string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return writeSummary(gormSummaryWriter{tx: tx}, userID, day, text)
	})
}

// summaryWriter is the row access behind the update-then-insert path. All
// calls run inside one transaction.
type summaryWriter interface {
	lockDay(userID string, day time.Time) error
	updateText(userID string, day time.Time, text string) (int64, error)
	insert(userID string, day time.Time, text string) error
}

// writeSummary holds the (user, day) lock for the rest of the transaction,
// so concurrent writers of the same day queue up and the later one updates
// the row the earlier one inserted.
func writeSummary(w summaryWriter, userID string, day time.Time, text string) error {
	if err := w.lockDay(userID, day); err != nil {
		return fmt.Errorf("lock summary day: %w", err)
	}
	updated, err := w.updateText(userID, day, text)
	if err != nil {
		return err
	}
	if updated > 0 {
		return nil
	}
	return w.insert(userID, day, text)
}

type gormSummaryWriter struct {
	tx *gorm.DB
}

func (w gormSummaryWriter) lockDay(userID string, day time.Time) error {
	return lockSummaryDay(w.tx, userID, day).Error
}

func (w gormSummaryWriter) updateText(userID string, day time.Time, text string) (int64, error) {
	res := updateSummaryText(w.tx, userID, day, text)
	return res.RowsAffected, res.Error
}

func (w gormSummaryWriter) insert(userID string, day time.Time, text string) error {
	return w.tx.Create(&domain.DailySummary{
		UserID:    userID,
		AISummary: text,
		CreatedAt: day,
	}).Error
}

// lockSummaryDay takes a transaction-scoped advisory lock keyed on the user
// and the day. It is released on commit or rollback.
func lockSummaryDay(tx *gorm.DB, userID string, day time.Time) *gorm.DB {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID+"|"+dayParam(day))
}

func updateSummaryText(tx *gorm.DB, userID string, day time.Time, text string) *gorm.DB {
	return tx.Model(&domain.DailySummary{}).
		Where("user_id = ? AND created_at = ?", userID, dayParam(day)).
		Updates(map[string]any{"ai_summary": text, "updated_at": time.Now()})
}

func missingConflictTarget(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgInvalidColumnReference || pgErr.Code == pgUndefinedObject
}

func (r *summaryRepository) FindByDay(ctx context.Context, userID string, day time.Time) (*domain.DailySummary, error) {
	var summary domain.DailySummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at = ?", userID, dayParam(day)).
		Order("id ASC").
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &summary, nil
}

// List returns up to limit+1 summaries, newest first, so callers can tell
// whether another page exists.
func (r *summaryRepository) List(ctx context.Context, userID string, filter domain.SummaryFilter) ([]domain.DailySummary, error) {
	query, err := listSummaries(r.db.WithContext(ctx), userID, filter)
	if err != nil {
		return nil, err
	}

	var summaries []domain.DailySummary
	if err := query.Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func listSummaries(db *gorm.DB, userID string, filter domain.SummaryFilter) (*gorm.DB, error) {
	query := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cursor", domain.ErrInvalidInput)
	}
	if cursor != nil {
		day := dayParam(cursor.Day)
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			day, day, cursor.ID,
		)
	}

	return query.Limit(pagination.NormalizeLimit(filter.Limit) + 1), nil
}
