package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/repository"
)

func setupTestTermService() (TermService, *repository.Repository) {
	repo := newMockRepository()
	return NewTermService(repo, zap.NewNop()), repo
}

// ── Create / Update 测试 ──

func TestTermService_Create(t *testing.T) {
	svc, _ := setupTestTermService()

	resp, err := svc.Create(context.Background(), &dto.CreateTermRequest{
		Name:      "2025 Even Sem",
		StartDate: "2025-01-06",
		EndDate:   "2025-05-30",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Name != "2025 Even Sem" || resp.StartDate != "2025-01-06" {
		t.Errorf("响应字段不符: %+v", resp)
	}
	if resp.IsActive {
		t.Error("新建学期不应默认激活")
	}
}

func TestTermService_Create_InvalidRange(t *testing.T) {
	svc, _ := setupTestTermService()

	_, err := svc.Create(context.Background(), &dto.CreateTermRequest{
		Name:      "Backwards",
		StartDate: "2025-05-30",
		EndDate:   "2025-01-06",
	})
	if !errors.Is(err, ErrTermDateRange) {
		t.Errorf("期望 ErrTermDateRange，实际: %v", err)
	}

	_, err = svc.Create(context.Background(), &dto.CreateTermRequest{
		Name:      "BadDate",
		StartDate: "06/01/2025",
		EndDate:   "2025-05-30",
	})
	if !errors.Is(err, ErrTermDateParse) {
		t.Errorf("期望 ErrTermDateParse，实际: %v", err)
	}
}

// ── Activate 测试 ──

func TestTermService_Activate_Exclusive(t *testing.T) {
	svc, _ := setupTestTermService()

	a, _ := svc.Create(context.Background(), &dto.CreateTermRequest{
		Name: "A", StartDate: "2024-08-01", EndDate: "2024-12-20",
	})
	b, _ := svc.Create(context.Background(), &dto.CreateTermRequest{
		Name: "B", StartDate: "2025-01-06", EndDate: "2025-05-30",
	})

	if _, err := svc.Activate(context.Background(), a.ID); err != nil {
		t.Fatalf("激活 A 应成功: %v", err)
	}
	if _, err := svc.Activate(context.Background(), b.ID); err != nil {
		t.Fatalf("激活 B 应成功: %v", err)
	}

	// 任意时刻至多一个激活学期
	current, err := svc.GetCurrent(context.Background())
	if err != nil {
		t.Fatalf("GetCurrent 应成功: %v", err)
	}
	if current.ID != b.ID {
		t.Errorf("当前学期期望 B，实际 %s", current.Name)
	}

	got, _ := svc.Get(context.Background(), a.ID)
	if got.IsActive {
		t.Error("激活 B 后 A 不应仍处于激活状态")
	}
}

func TestTermService_Activate_NotFound(t *testing.T) {
	svc, _ := setupTestTermService()

	if _, err := svc.Activate(context.Background(), "missing"); !errors.Is(err, ErrTermNotFound) {
		t.Errorf("期望 ErrTermNotFound，实际: %v", err)
	}
}

func TestTermService_GetCurrent_None(t *testing.T) {
	svc, _ := setupTestTermService()

	if _, err := svc.GetCurrent(context.Background()); !errors.Is(err, ErrNoActiveTerm) {
		t.Errorf("期望 ErrNoActiveTerm，实际: %v", err)
	}
}

// ── GetDatasetStatus 测试 ──

func TestTermService_GetDatasetStatus(t *testing.T) {
	svc, repo := setupTestTermService()
	termID := seedTermData(t, repo)

	resp, err := svc.GetDatasetStatus(context.Background(), termID)
	if err != nil {
		t.Fatalf("GetDatasetStatus 应成功: %v", err)
	}
	if len(resp.Datasets) != 4 {
		t.Fatalf("期望 4 类数据集，实际 %d", len(resp.Datasets))
	}

	byName := make(map[string]dto.DatasetStatus)
	for _, d := range resp.Datasets {
		byName[d.Name] = d
	}
	if byName["calendar"].Rows != 8 {
		t.Errorf("calendar 行数期望 8，实际 %d", byName["calendar"].Rows)
	}
	if byName["attendance"].Rows != 2 {
		t.Errorf("attendance 行数期望 2，实际 %d", byName["attendance"].Rows)
	}
	if byName["marks"].Rows != 0 {
		t.Errorf("marks 行数期望 0，实际 %d", byName["marks"].Rows)
	}
	if byName["marks"].LastUpdated != nil {
		t.Error("空数据集的 last_updated 应为 nil")
	}
	if byName["calendar"].LastUpdated == nil {
		t.Error("非空数据集的 last_updated 不应为 nil")
	}
}
