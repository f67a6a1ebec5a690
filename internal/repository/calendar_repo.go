package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"acadpulse/backend/internal/model"
)

// CalendarRepository 校历数据访问接口
type CalendarRepository interface {
	// ReplaceByTerm 在事务中全量替换学期校历：先删除旧数据，再批量插入新数据
	ReplaceByTerm(ctx context.Context, termID string, days []model.CalendarDay) error
	ListByTerm(ctx context.Context, termID string) ([]model.CalendarDay, error)
	ListByTermAndMonth(ctx context.Context, termID, monthLabel string) ([]model.CalendarDay, error)
	CountByTerm(ctx context.Context, termID string) (int64, error)
	LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error)
}

type calendarRepo struct {
	db *gorm.DB
}

// NewCalendarRepo 创建 CalendarRepository 实例
func NewCalendarRepo(db *gorm.DB) CalendarRepository {
	return &calendarRepo{db: db}
}

func (r *calendarRepo) ReplaceByTerm(ctx context.Context, termID string, days []model.CalendarDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term_id = ?", termID).
			Delete(&model.CalendarDay{}).Error; err != nil {
			return err
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *calendarRepo) ListByTerm(ctx context.Context, termID string) ([]model.CalendarDay, error) {
	var days []model.CalendarDay
	err := r.db.WithContext(ctx).
		Where("term_id = ?", termID).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *calendarRepo) ListByTermAndMonth(ctx context.Context, termID, monthLabel string) ([]model.CalendarDay, error) {
	var days []model.CalendarDay
	err := r.db.WithContext(ctx).
		Where("term_id = ? AND month_label = ?", termID, monthLabel).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *calendarRepo) CountByTerm(ctx context.Context, termID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CalendarDay{}).
		Where("term_id = ?", termID).
		Count(&count).Error
	return count, err
}

func (r *calendarRepo) LastUpdatedByTerm(ctx context.Context, termID string) (*time.Time, error) {
	return lastUpdated(r.db.WithContext(ctx), &model.CalendarDay{}, termID)
}

// lastUpdated 查询某学期某表最近一次更新时间；无数据时返回 nil。
// 空表上 MAX(updated_at) 为 SQL NULL，必须经 sql.NullTime 接收，
// 直接扫进 time.Time 会报 unsupported Scan 错误。
func lastUpdated(db *gorm.DB, m interface{}, termID string) (*time.Time, error) {
	var ts sql.NullTime
	err := db.Model(m).
		Where("term_id = ?", termID).
		Select("MAX(updated_at)").
		Scan(&ts).Error
	if err != nil {
		return nil, err
	}
	if !ts.Valid {
		return nil, nil
	}
	return &ts.Time, nil
}
