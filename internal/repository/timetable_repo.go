package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"acadpulse/backend/internal/model"
)

// TimetableRepository 课表数据访问接口
type TimetableRepository interface {
	// ReplaceByTerm 在事务中全量替换学期课表
	ReplaceByTerm(ctx context.Context, termID string, entries []model.TimetableEntry) error
	ListByTerm(ctx context.Context, termID string) ([]model.TimetableEntry, error)
	CountByTerm(ctx context.Context, termID string) (int64, error)
	LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error)
}

type timetableRepo struct {
	db *gorm.DB
}

// NewTimetableRepo 创建 TimetableRepository 实例
func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) ReplaceByTerm(ctx context.Context, termID string, entries []model.TimetableEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term_id = ?", termID).
			Delete(&model.TimetableEntry{}).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *timetableRepo) ListByTerm(ctx context.Context, termID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.db.WithContext(ctx).
		Where("term_id = ?", termID).
		Order("day_order ASC, slot_start ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timetableRepo) CountByTerm(ctx context.Context, termID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TimetableEntry{}).
		Where("term_id = ?", termID).
		Count(&count).Error
	return count, err
}

func (r *timetableRepo) LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error) {
	return lastUpdated(r.db.WithContext(ctx), &model.TimetableEntry{}, termID)
}
