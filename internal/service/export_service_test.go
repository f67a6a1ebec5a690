package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/repository"
)

func setupTestExportService(t *testing.T) (ExportService, *repository.Repository) {
	t.Helper()
	repo := newMockRepository()
	cfg := testPredictionConfig()
	predictionSvc := NewPredictionService(cfg, repo, zap.NewNop())
	svc := NewExportService(cfg, repo, predictionSvc, zap.NewNop())
	return svc, repo
}

// ── ExportAttendance 测试 ──

func TestExportService_ExportAttendance(t *testing.T) {
	svc, repo := setupTestExportService(t)
	seedTermData(t, repo)

	buf, filename, err := svc.ExportAttendance(context.Background(), "")
	if err != nil {
		t.Fatalf("ExportAttendance 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("导出的 Excel buffer 不应为空")
	}
	if filename != "attendance_S1.xlsx" {
		t.Errorf("文件名期望 attendance_S1.xlsx，实际 %q", filename)
	}
	// .xlsx 文件以 PK (0x504B) 开头
	header := buf.Bytes()[:2]
	if header[0] != 0x50 || header[1] != 0x4B {
		t.Error("输出内容不是有效的 xlsx 文件格式（应以 PK 开头）")
	}

	// 出勤率列写数值（40 节出席 36 节 → 90），便于表格内排序
	wb, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("读取导出的 Excel 失败: %v", err)
	}
	defer wb.Close()
	got, err := wb.GetCellValue("Attendance", "G3", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("读取 G3 失败: %v", err)
	}
	if got != "90" {
		t.Errorf("G3 出勤率期望数值 90，实际 %q", got)
	}
}

func TestExportService_ExportAttendance_NoData(t *testing.T) {
	svc, repo := setupTestExportService(t)
	// 只有学期，没有出勤数据
	seedEmptyTerm(t, repo)

	_, _, err := svc.ExportAttendance(context.Background(), "")
	if !errors.Is(err, ErrExportNoAttendance) {
		t.Errorf("期望 ErrExportNoAttendance，实际: %v", err)
	}
}

// ── ExportLeavePlan 测试 ──

func TestExportService_ExportLeavePlan(t *testing.T) {
	svc, repo := setupTestExportService(t)
	seedTermData(t, repo)

	buf, filename, err := svc.ExportLeavePlan(context.Background(), &dto.PredictionRequest{
		CourseTitle: "Data Structures",
		From:        "2025-03-01",
		To:          "2025-03-10",
	})
	if err != nil {
		t.Fatalf("ExportLeavePlan 应成功: %v", err)
	}
	if filename != "leave_plan_21CSC201J.ics" {
		t.Errorf("文件名期望 leave_plan_21CSC201J.ics，实际 %q", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "END:VCALENDAR") {
		t.Error("输出应为合法的 iCalendar 文档")
	}
	// 范围内 3 个受影响日期 → 3 个 VEVENT
	if got := strings.Count(content, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("VEVENT 数期望 3，实际 %d", got)
	}
	if !strings.Contains(content, "Data Structures") {
		t.Error("事件摘要应包含课程名")
	}
}

func TestExportService_ExportLeavePlan_NoAffectedDays(t *testing.T) {
	svc, repo := setupTestExportService(t)
	seedTermData(t, repo)

	// 范围只覆盖周末：没有任何受影响日期
	_, _, err := svc.ExportLeavePlan(context.Background(), &dto.PredictionRequest{
		CourseTitle: "Data Structures",
		From:        "2025-03-01",
		To:          "2025-03-02",
	})
	if !errors.Is(err, ErrExportNoLeaveDays) {
		t.Errorf("期望 ErrExportNoLeaveDays，实际: %v", err)
	}
}
