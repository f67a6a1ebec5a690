package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"acadpulse/backend/internal/model"
)

// MarkRepository 成绩数据访问接口
type MarkRepository interface {
	// ReplaceByTerm 在事务中全量替换学期成绩快照
	ReplaceByTerm(ctx context.Context, termID string, marks []model.Mark) error
	ListByTerm(ctx context.Context, termID string) ([]model.Mark, error)
	CountByTerm(ctx context.Context, termID string) (int64, error)
	LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error)
}

type markRepo struct {
	db *gorm.DB
}

// NewMarkRepo 创建 MarkRepository 实例
func NewMarkRepo(db *gorm.DB) MarkRepository {
	return &markRepo{db: db}
}

func (r *markRepo) ReplaceByTerm(ctx context.Context, termID string, marks []model.Mark) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term_id = ?", termID).
			Delete(&model.Mark{}).Error; err != nil {
			return err
		}
		if len(marks) > 0 {
			if err := tx.Create(&marks).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *markRepo) ListByTerm(ctx context.Context, termID string) ([]model.Mark, error) {
	var marks []model.Mark
	err := r.db.WithContext(ctx).
		Where("term_id = ?", termID).
		Order("course_title ASC, test_name ASC").
		Find(&marks).Error
	return marks, err
}

func (r *markRepo) CountByTerm(ctx context.Context, termID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Mark{}).
		Where("term_id = ?", termID).
		Count(&count).Error
	return count, err
}

func (r *markRepo) LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error) {
	return lastUpdated(r.db.WithContext(ctx), &model.Mark{}, termID)
}
