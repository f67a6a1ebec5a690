package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/repository"
)

// ── 出勤模块业务错误 ──

var ErrAttendanceEmpty = errors.New("出勤数据为空")

// AttendanceService 出勤业务接口
type AttendanceService interface {
	// Import 全量替换学期出勤快照。
	// 违反 0 ≤ absent ≤ conducted 的记录跳过并计数，
	// 上游的 attendance_percentage 忽略，查询时重新计算。
	Import(ctx context.Context, req *dto.ImportAttendanceRequest) (*dto.ImportAttendanceResponse, error)
	List(ctx context.Context, termID string) ([]dto.AttendanceRecordResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) Import(ctx context.Context, req *dto.ImportAttendanceRequest) (*dto.ImportAttendanceResponse, error) {
	term, err := resolveTerm(ctx, s.repo, req.TermID)
	if err != nil {
		return nil, err
	}

	records := make([]model.AttendanceRecord, 0, len(req.Records))
	skipped := 0
	for _, r := range req.Records {
		if r.HoursConducted < 0 || r.HoursAbsent < 0 || r.HoursAbsent > r.HoursConducted {
			skipped++
			continue
		}
		records = append(records, model.AttendanceRecord{
			TermID:         term.TermID,
			CourseCode:     r.CourseCode,
			CourseTitle:    r.CourseTitle,
			Faculty:        r.Faculty,
			HoursConducted: r.HoursConducted,
			HoursAbsent:    r.HoursAbsent,
		})
	}
	if len(records) == 0 {
		return nil, ErrAttendanceEmpty
	}

	if err := s.repo.Attendance.ReplaceByTerm(ctx, term.TermID, records); err != nil {
		s.logger.Error("替换出勤快照失败", zap.Error(err), zap.String("term_id", term.TermID))
		return nil, err
	}

	s.logger.Info("出勤导入完成",
		zap.String("term_id", term.TermID),
		zap.Int("imported", len(records)),
		zap.Int("skipped", skipped))

	return &dto.ImportAttendanceResponse{
		ImportedCount: len(records),
		SkippedCount:  skipped,
	}, nil
}

func (s *attendanceService) List(ctx context.Context, termID string) ([]dto.AttendanceRecordResponse, error) {
	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance.ListByTerm(ctx, term.TermID)
	if err != nil {
		s.logger.Error("查询出勤失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.AttendanceRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, toAttendanceResponse(&records[i]))
	}
	return out, nil
}

func toAttendanceResponse(r *model.AttendanceRecord) dto.AttendanceRecordResponse {
	pct := "0.00"
	if r.HoursConducted > 0 {
		pct = fmt.Sprintf("%.2f", float64(r.HoursAttended())/float64(r.HoursConducted)*100)
	}
	return dto.AttendanceRecordResponse{
		ID:                   r.AttendanceRecordID,
		CourseCode:           r.CourseCode,
		CourseTitle:          r.CourseTitle,
		Faculty:              r.Faculty,
		HoursConducted:       r.HoursConducted,
		HoursAbsent:          r.HoursAbsent,
		HoursAttended:        r.HoursAttended(),
		AttendancePercentage: pct,
	}
}
