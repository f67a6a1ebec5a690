package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/repository"
)

const testCalendarRaw = "Month\tDay\tDate\tDay Order\tDay\n" +
	"Mar '25\t1\t2025-03-01\t-\tSat\n" +
	"Mar '25\t2\t2025-03-02\t-\tSun\n" +
	"Mar '25\t3\t2025-03-03\t5\tMon\n" +
	"Mar '25\t4\t2025-03-04\t1\tTue\n" +
	"malformed-row\n" +
	"Mar '25\t5\t2025-03-05\t2\tWed\n"

func setupTestCalendarService(t *testing.T) (CalendarService, *repository.Repository, string) {
	t.Helper()
	repo := newMockRepository()
	term := &model.Term{
		Name:      "S1",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	if err := repo.Term.Create(context.Background(), term); err != nil {
		t.Fatalf("创建学期失败: %v", err)
	}
	return NewCalendarService(repo, zap.NewNop()), repo, term.TermID
}

// ── Import 测试 ──

func TestCalendarService_Import(t *testing.T) {
	svc, repo, termID := setupTestCalendarService(t)

	resp, err := svc.Import(context.Background(), &dto.ImportCalendarRequest{Raw: testCalendarRaw})
	if err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}
	if resp.ImportedCount != 5 {
		t.Errorf("导入行数期望 5，实际 %d", resp.ImportedCount)
	}
	if resp.DroppedRows != 1 {
		t.Errorf("畸形行应被丢弃并计数，期望 1，实际 %d", resp.DroppedRows)
	}

	days, _ := repo.Calendar.ListByTerm(context.Background(), termID)
	if len(days) != 5 {
		t.Fatalf("入库行数期望 5，实际 %d", len(days))
	}
	if !days[0].IsHoliday {
		t.Error("Day Order 为 '-' 的行应标记为节假日")
	}
	if days[2].DayOrder != "5" {
		t.Errorf("2025-03-03 的 Day Order 期望 5，实际 %q", days[2].DayOrder)
	}
}

func TestCalendarService_Import_Empty(t *testing.T) {
	svc, _, _ := setupTestCalendarService(t)

	_, err := svc.Import(context.Background(), &dto.ImportCalendarRequest{Raw: "Month\tDay\tDate\tDO\tDay"})
	if !errors.Is(err, ErrCalendarEmpty) {
		t.Errorf("期望 ErrCalendarEmpty，实际: %v", err)
	}
}

func TestCalendarService_Import_NoActiveTerm(t *testing.T) {
	repo := newMockRepository()
	svc := NewCalendarService(repo, zap.NewNop())

	_, err := svc.Import(context.Background(), &dto.ImportCalendarRequest{Raw: testCalendarRaw})
	if !errors.Is(err, ErrNoActiveTerm) {
		t.Errorf("期望 ErrNoActiveTerm，实际: %v", err)
	}
}

// ── DayOrderFor 测试 ──

func TestCalendarService_DayOrderFor(t *testing.T) {
	svc, _, _ := setupTestCalendarService(t)
	if _, err := svc.Import(context.Background(), &dto.ImportCalendarRequest{Raw: testCalendarRaw}); err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}

	// 教学日
	resp, err := svc.DayOrderFor(context.Background(), "", "2025-03-03")
	if err != nil {
		t.Fatalf("DayOrderFor 应成功: %v", err)
	}
	if resp.DayOrder != "5" || resp.HolidayOrWeekend {
		t.Errorf("2025-03-03 期望 Day Order 5 且非节假日，实际 %+v", resp)
	}

	// 节假日行
	resp, err = svc.DayOrderFor(context.Background(), "", "2025-03-01")
	if err != nil {
		t.Fatalf("DayOrderFor 应成功: %v", err)
	}
	if resp.DayOrder != "" || !resp.HolidayOrWeekend {
		t.Errorf("2025-03-01 期望无 Day Order 且为节假日，实际 %+v", resp)
	}

	// 校历之外的周六：按星期兜底判定
	resp, err = svc.DayOrderFor(context.Background(), "", "2025-03-08")
	if err != nil {
		t.Fatalf("DayOrderFor 应成功: %v", err)
	}
	if !resp.HolidayOrWeekend {
		t.Error("校历外的周六应按星期兜底判定为周末")
	}

	// 非法日期
	if _, err := svc.DayOrderFor(context.Background(), "", "03/08/2025"); !errors.Is(err, ErrCalendarDateParse) {
		t.Errorf("期望 ErrCalendarDateParse，实际: %v", err)
	}
}
