package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/repository"
)

// ── 课表模块业务错误 ──

var ErrTimetableEmpty = errors.New("课表数据为空")

// TimetableService 课表业务接口
type TimetableService interface {
	// Import 将 "Day {n}" → 时间段 → 课次 的嵌套结构展平入库，
	// 全量替换学期课表快照
	Import(ctx context.Context, req *dto.ImportTimetableRequest) (*dto.ImportTimetableResponse, error)
	// Get 按 Day Order 分组返回课表，时间段按开始时间排序
	Get(ctx context.Context, termID string) (*dto.TimetableResponse, error)
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

func (s *timetableService) Import(ctx context.Context, req *dto.ImportTimetableRequest) (*dto.ImportTimetableResponse, error) {
	term, err := resolveTerm(ctx, s.repo, req.TermID)
	if err != nil {
		return nil, err
	}

	var entries []model.TimetableEntry
	dayOrders := 0
	for dayOrder, slots := range req.Timetable {
		dayOrders++
		for label, slot := range slots {
			start := slotStartPrefix(label)
			for _, c := range slot.Courses {
				entries = append(entries, model.TimetableEntry{
					TermID:      term.TermID,
					DayOrder:    dayOrder,
					SlotLabel:   label,
					SlotStart:   start,
					CourseTitle: c.Title,
					CourseCode:  c.Code,
					Room:        c.Room,
				})
			}
		}
	}
	if len(entries) == 0 {
		return nil, ErrTimetableEmpty
	}

	if err := s.repo.Timetable.ReplaceByTerm(ctx, term.TermID, entries); err != nil {
		s.logger.Error("替换课表快照失败", zap.Error(err), zap.String("term_id", term.TermID))
		return nil, err
	}

	s.logger.Info("课表导入完成",
		zap.String("term_id", term.TermID),
		zap.Int("imported", len(entries)),
		zap.Int("day_orders", dayOrders))

	return &dto.ImportTimetableResponse{
		ImportedCount: len(entries),
		DayOrders:     dayOrders,
	}, nil
}

func (s *timetableService) Get(ctx context.Context, termID string) (*dto.TimetableResponse, error) {
	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, err
	}

	// 已按 day_order ASC, slot_start ASC 排好序
	entries, err := s.repo.Timetable.ListByTerm(ctx, term.TermID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}

	days := make(map[string][]dto.TimetableSlotResponse)
	for _, e := range entries {
		slots := days[e.DayOrder]
		course := dto.CoursePayload{Title: e.CourseTitle, Code: e.CourseCode, Room: e.Room}
		// 同一时间段的课次并入同一个 slot；条目已排序，只需看末尾
		if n := len(slots); n > 0 && slots[n-1].Label == e.SlotLabel {
			slots[n-1].Courses = append(slots[n-1].Courses, course)
		} else {
			slots = append(slots, dto.TimetableSlotResponse{
				Label:   e.SlotLabel,
				Courses: []dto.CoursePayload{course},
			})
		}
		days[e.DayOrder] = slots
	}

	return &dto.TimetableResponse{Days: days}, nil
}

// slotStartPrefix 取时间段标签 "-" 之前的 HH:MM 前缀并补零，
// 使 "8:00 - 8:50" 排在 "10:00 - 10:50" 之前
func slotStartPrefix(label string) string {
	start := label
	if i := strings.Index(label, "-"); i >= 0 {
		start = label[:i]
	}
	start = strings.TrimSpace(start)
	if i := strings.Index(start, ":"); i == 1 {
		start = "0" + start
	}
	return start
}
