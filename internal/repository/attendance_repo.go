package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"acadpulse/backend/internal/model"
)

// AttendanceRepository 出勤数据访问接口
type AttendanceRepository interface {
	// ReplaceByTerm 在事务中全量替换学期出勤快照
	ReplaceByTerm(ctx context.Context, termID string, records []model.AttendanceRecord) error
	ListByTerm(ctx context.Context, termID string) ([]model.AttendanceRecord, error)
	CountByTerm(ctx context.Context, termID string) (int64, error)
	LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) ReplaceByTerm(ctx context.Context, termID string, records []model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term_id = ?", termID).
			Delete(&model.AttendanceRecord{}).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *attendanceRepo) ListByTerm(ctx context.Context, termID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("term_id = ?", termID).
		Order("course_title ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) CountByTerm(ctx context.Context, termID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("term_id = ?", termID).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepo) LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error) {
	return lastUpdated(r.db.WithContext(ctx), &model.AttendanceRecord{}, termID)
}
