package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/prediction"
	"acadpulse/backend/internal/repository"
)

// ── 校历模块业务错误 ──

var (
	ErrCalendarEmpty     = errors.New("校历文本解析后为空")
	ErrCalendarDateParse = errors.New("日期格式错误，应为 YYYY-MM-DD")
)

// CalendarService 校历业务接口
type CalendarService interface {
	// Import 解析制表符分隔的校历文本并全量替换学期校历快照。
	// 畸形行不报错，丢弃并计数返回。
	Import(ctx context.Context, req *dto.ImportCalendarRequest) (*dto.ImportCalendarResponse, error)
	List(ctx context.Context, termID, monthLabel string) ([]dto.CalendarDayResponse, error)
	// DayOrderFor 查询单个日期的 Day Order 与节假日判定
	DayOrderFor(ctx context.Context, termID, date string) (*dto.DayOrderResponse, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) Import(ctx context.Context, req *dto.ImportCalendarRequest) (*dto.ImportCalendarResponse, error) {
	term, err := resolveTerm(ctx, s.repo, req.TermID)
	if err != nil {
		return nil, err
	}

	rows, dropped := prediction.ParseCalendarRows(req.Raw)
	if len(rows) == 0 {
		return nil, ErrCalendarEmpty
	}

	days := make([]model.CalendarDay, 0, len(rows))
	for _, r := range rows {
		days = append(days, model.CalendarDay{
			TermID:     term.TermID,
			MonthLabel: r.Month,
			DayOfMonth: r.Day,
			Date:       r.Date,
			DayOrder:   r.DayOrder,
			DayName:    r.DayName,
			IsHoliday:  r.IsHoliday,
		})
	}

	if err := s.repo.Calendar.ReplaceByTerm(ctx, term.TermID, days); err != nil {
		s.logger.Error("替换校历快照失败", zap.Error(err), zap.String("term_id", term.TermID))
		return nil, err
	}

	s.logger.Info("校历导入完成",
		zap.String("term_id", term.TermID),
		zap.Int("imported", len(days)),
		zap.Int("dropped", dropped))

	return &dto.ImportCalendarResponse{
		ImportedCount: len(days),
		DroppedRows:   dropped,
	}, nil
}

func (s *calendarService) List(ctx context.Context, termID, monthLabel string) ([]dto.CalendarDayResponse, error) {
	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, err
	}

	var days []model.CalendarDay
	if monthLabel != "" {
		days, err = s.repo.Calendar.ListByTermAndMonth(ctx, term.TermID, monthLabel)
	} else {
		days, err = s.repo.Calendar.ListByTerm(ctx, term.TermID)
	}
	if err != nil {
		s.logger.Error("查询校历失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.CalendarDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, dto.CalendarDayResponse{
			Month:     d.MonthLabel,
			Day:       d.DayOfMonth,
			Date:      d.Date,
			DayOrder:  d.DayOrder,
			DayName:   d.DayName,
			IsHoliday: d.IsHoliday,
		})
	}
	return out, nil
}

func (s *calendarService) DayOrderFor(ctx context.Context, termID, date string) (*dto.DayOrderResponse, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrCalendarDateParse
	}

	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, err
	}

	idx, err := s.loadIndex(ctx, term.TermID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DayOrderResponse{
		Date:             prediction.DateKey(t),
		HolidayOrWeekend: idx.IsHolidayOrWeekend(t),
	}
	if dayOrder, ok := idx.DayOrderFor(t); ok {
		resp.DayOrder = dayOrder
	}
	return resp, nil
}

// loadIndex 从数据库快照重建校历索引
func (s *calendarService) loadIndex(ctx context.Context, termID string) (*prediction.CalendarIndex, error) {
	days, err := s.repo.Calendar.ListByTerm(ctx, termID)
	if err != nil {
		s.logger.Error("查询校历失败", zap.Error(err))
		return nil, err
	}
	entries := make([]prediction.CalendarDayEntry, 0, len(days))
	for _, d := range days {
		entries = append(entries, prediction.CalendarDayEntry{
			Month:     d.MonthLabel,
			Day:       d.DayOfMonth,
			Date:      d.Date,
			DayOrder:  d.DayOrder,
			DayName:   d.DayName,
			IsHoliday: d.IsHoliday,
		})
	}
	return prediction.BuildCalendarIndexFromEntries(entries), nil
}
