package repository

import (
	"context"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"gorm.io/gorm"
)

// dayParam renders a calendar day for comparison against a date column.
func dayParam(day time.Time) string {
	return day.Format(domain.DateLayout)
}

type MorningRepository interface {
	Create(ctx context.Context, entry *domain.MorningEntry) error
	ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.MorningEntry, error)
}

type morningRepository struct {
	db *gorm.DB
}

func NewMorningRepository(db *gorm.DB) MorningRepository {
	return &morningRepository{db: db}
}

func (r *morningRepository) Create(ctx context.Context, entry *domain.MorningEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *morningRepository) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MorningEntry{}).
		Where("user_id = ? AND created_at = ?", userID, dayParam(day)).
		Count(&count).Error
	return count > 0, err
}

// ListRange returns the entries with from <= created_at <= to, oldest first.
func (r *morningRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.MorningEntry, error) {
	var entries []domain.MorningEntry
	err := rangeQuery(r.db.WithContext(ctx), userID, from, to).Find(&entries).Error
	return entries, err
}

type EveningRepository interface {
	Create(ctx context.Context, entry *domain.EveningEntry) error
	ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.EveningEntry, error)
}

type eveningRepository struct {
	db *gorm.DB
}

func NewEveningRepository(db *gorm.DB) EveningRepository {
	return &eveningRepository{db: db}
}

func (r *eveningRepository) Create(ctx context.Context, entry *domain.EveningEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *eveningRepository) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.EveningEntry{}).
		Where("user_id = ? AND created_at = ?", userID, dayParam(day)).
		Count(&count).Error
	return count > 0, err
}

func (r *eveningRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.EveningEntry, error) {
	var entries []domain.EveningEntry
	err := rangeQuery(r.db.WithContext(ctx), userID, from, to).Find(&entries).Error
	return entries, err
}

func rangeQuery(db *gorm.DB, userID string, from, to time.Time) *gorm.DB {
	return db.
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", dayParam(from), dayParam(to)).
		Order("created_at ASC").
		Order("id ASC")
}
