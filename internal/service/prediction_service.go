package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"acadpulse/backend/config"
	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/prediction"
	"acadpulse/backend/internal/repository"
)

// ── 预测模块业务错误 ──

var (
	ErrCourseNotFound      = errors.New("出勤记录中找不到该课程")
	ErrPredictionDateRange = errors.New("结束日期不能早于开始日期")
	ErrPredictionDateParse = errors.New("日期格式错误，应为 YYYY-MM-DD")
	ErrPredictionDatePair  = errors.New("from 与 to 必须同时提供")
)

// PredictionService 出勤预测业务接口。
// 每次请求整体重算：读取学期三类快照、重建索引与匹配器、
// 跑完整推算管线。无请求间可变状态，后到的请求自然覆盖先前结果。
type PredictionService interface {
	Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error)
}

type predictionService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPredictionService 创建 PredictionService 实例
func NewPredictionService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) PredictionService {
	return &predictionService{cfg: cfg, repo: repo, logger: logger}
}

func (s *predictionService) Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	term, err := resolveTerm(ctx, s.repo, req.TermID)
	if err != nil {
		return nil, err
	}

	// 一次性加载学期快照并预建连接结构
	records, idx, matcher, err := s.loadEngineData(ctx, term.TermID)
	if err != nil {
		return nil, err
	}

	record := findCourse(records, req.CourseTitle, req.CourseCode)
	if record == nil {
		return nil, ErrCourseNotFound
	}
	course := prediction.CourseRef{Title: record.CourseTitle, Code: record.CourseCode}

	engine := s.newEngine()
	baseline := engine.Baseline(record.HoursConducted, record.HoursAbsent)
	outcome := engine.ComputePrediction(prediction.PredictionInput{
		Course:             course,
		HoursConducted:     record.HoursConducted,
		HoursAbsent:        record.HoursAbsent,
		From:               from,
		To:                 to,
		AdditionalAbsences: req.AdditionalAbsences,
		Calendar:           idx,
		Matcher:            matcher,
	})

	// 连接诊断：出勤记录中在课表里完全找不到的课程数
	refs := make([]prediction.CourseRef, 0, len(records))
	for i := range records {
		refs = append(refs, prediction.CourseRef{
			Title: records[i].CourseTitle,
			Code:  records[i].CourseCode,
		})
	}
	unmatched := matcher.CountUnmatched(refs)
	if unmatched > 0 {
		s.logger.Warn("部分课程未匹配到课表",
			zap.String("term_id", term.TermID),
			zap.Int("unmatched", unmatched))
	}

	return &dto.PredictionResponse{
		CourseTitle:      record.CourseTitle,
		CourseCode:       record.CourseCode,
		HoursConducted:   record.HoursConducted,
		HoursAbsent:      record.HoursAbsent,
		Baseline:         dto.ToProjectionView(baseline),
		Projection:       dto.ToProjectionView(outcome.Result),
		MissedFromRange:  outcome.MissedFromRange,
		TotalMissed:      outcome.TotalMissed,
		Days:             dto.ToDayImpactViews(outcome.Days),
		UnmatchedCourses: unmatched,
	}, nil
}

// ── 私有辅助方法 ──

func (s *predictionService) newEngine() prediction.Engine {
	projector := prediction.NewProjector(s.cfg.Prediction.Threshold, s.cfg.Prediction.SearchCap)
	return prediction.NewEngine(projector, s.cfg.Prediction.FutureClasses)
}

// loadEngineData 加载学期的出勤 / 校历 / 课表快照，
// 并重建校历索引与课表匹配器。导出模块复用同一加载路径。
func (s *predictionService) loadEngineData(ctx context.Context, termID string) (
	[]model.AttendanceRecord, *prediction.CalendarIndex, *prediction.ScheduleMatcher, error,
) {
	records, err := s.repo.Attendance.ListByTerm(ctx, termID)
	if err != nil {
		s.logger.Error("查询出勤失败", zap.Error(err))
		return nil, nil, nil, err
	}

	days, err := s.repo.Calendar.ListByTerm(ctx, termID)
	if err != nil {
		s.logger.Error("查询校历失败", zap.Error(err))
		return nil, nil, nil, err
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
	idx := prediction.BuildCalendarIndexFromEntries(entries)

	rows, err := s.repo.Timetable.ListByTerm(ctx, termID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, nil, nil, err
	}
	matcher := prediction.NewScheduleMatcher(toPredictionTimetable(rows))

	return records, idx, matcher, nil
}

// toPredictionTimetable 数据库行 → 引擎课表结构
func toPredictionTimetable(rows []model.TimetableEntry) prediction.Timetable {
	tt := make(prediction.Timetable)
	for _, r := range rows {
		slots, ok := tt[r.DayOrder]
		if !ok {
			slots = make(map[string]prediction.TimetableSlot)
			tt[r.DayOrder] = slots
		}
		slot := slots[r.SlotLabel]
		slot.Courses = append(slot.Courses, prediction.CourseOccurrence{
			Title: r.CourseTitle,
			Code:  r.CourseCode,
			Room:  r.Room,
		})
		slots[r.SlotLabel] = slot
	}
	return tt
}

// findCourse 按标题或代码（任一命中）查找出勤记录
func findCourse(records []model.AttendanceRecord, title, code string) *model.AttendanceRecord {
	for i := range records {
		if title != "" && records[i].CourseTitle == title {
			return &records[i]
		}
		if code != "" && records[i].CourseCode == code {
			return &records[i]
		}
	}
	return nil
}

// parseDateRange 解析可选的请假日期范围。两端要么都给、要么都省略。
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var zero time.Time
	if fromStr == "" && toStr == "" {
		return zero, zero, nil
	}
	if fromStr == "" || toStr == "" {
		return zero, zero, ErrPredictionDatePair
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return zero, zero, ErrPredictionDateParse
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return zero, zero, ErrPredictionDateParse
	}
	if to.Before(from) {
		return zero, zero, ErrPredictionDateRange
	}
	return from, to, nil
}
