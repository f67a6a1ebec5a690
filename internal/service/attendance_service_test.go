package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
)

func TestAttendanceService_Import_SkipsInvalidRows(t *testing.T) {
	repo := newMockRepository()
	termID := seedEmptyTerm(t, repo)
	svc := NewAttendanceService(repo, zap.NewNop())

	resp, err := svc.Import(context.Background(), &dto.ImportAttendanceRequest{
		Records: []dto.AttendanceRecordPayload{
			{CourseCode: "21CSC201J", CourseTitle: "Data Structures", HoursConducted: 40, HoursAbsent: 4},
			{CourseCode: "21CSC202J", CourseTitle: "Operating Systems", HoursConducted: 30, HoursAbsent: 0},
			// absent > conducted，跳过
			{CourseCode: "21CSC203J", CourseTitle: "Broken Course", HoursConducted: 10, HoursAbsent: 12},
		},
	})
	if err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}
	if resp.ImportedCount != 2 || resp.SkippedCount != 1 {
		t.Errorf("期望导入 2 跳过 1，实际: %+v", resp)
	}

	records, err := svc.List(context.Background(), termID)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("期望 2 条记录，实际 %d", len(records))
	}
	if records[0].HoursAttended != 36 || records[0].AttendancePercentage != "90.00" {
		t.Errorf("出勤率计算不符: %+v", records[0])
	}
}

func TestAttendanceService_Import_AllInvalid(t *testing.T) {
	repo := newMockRepository()
	seedEmptyTerm(t, repo)
	svc := NewAttendanceService(repo, zap.NewNop())

	_, err := svc.Import(context.Background(), &dto.ImportAttendanceRequest{
		Records: []dto.AttendanceRecordPayload{
			{CourseCode: "X", CourseTitle: "X", HoursConducted: 1, HoursAbsent: 5},
		},
	})
	if !errors.Is(err, ErrAttendanceEmpty) {
		t.Errorf("期望 ErrAttendanceEmpty，实际: %v", err)
	}
}

func TestAttendanceService_List_ZeroConducted(t *testing.T) {
	repo := newMockRepository()
	seedEmptyTerm(t, repo)
	svc := NewAttendanceService(repo, zap.NewNop())

	if _, err := svc.Import(context.Background(), &dto.ImportAttendanceRequest{
		Records: []dto.AttendanceRecordPayload{
			{CourseCode: "21CSC204J", CourseTitle: "New Course", HoursConducted: 0, HoursAbsent: 0},
		},
	}); err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}

	records, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if records[0].AttendancePercentage != "0.00" {
		t.Errorf("零课时出勤率期望 0.00，实际 %s", records[0].AttendancePercentage)
	}
}
