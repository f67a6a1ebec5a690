package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
)

func TestMarkService_Import_And_ListGrouped(t *testing.T) {
	repo := newMockRepository()
	seedEmptyTerm(t, repo)
	svc := NewMarkService(repo, zap.NewNop())

	resp, err := svc.Import(context.Background(), &dto.ImportMarksRequest{
		Marks: []dto.MarkPayload{
			{CourseTitle: "Data Structures", TestName: "CT-1", Obtained: 18, MaxMarks: 25},
			{CourseTitle: "Data Structures", TestName: "CT-2", Obtained: 22, MaxMarks: 25},
			{CourseTitle: "Operating Systems", TestName: "CT-1", Obtained: 15, MaxMarks: 25},
		},
	})
	if err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}
	if resp.ImportedCount != 3 {
		t.Errorf("期望导入 3 条，实际 %d", resp.ImportedCount)
	}

	grouped, err := svc.ListGrouped(context.Background(), "")
	if err != nil {
		t.Fatalf("ListGrouped 应成功: %v", err)
	}
	if len(grouped) != 2 {
		t.Fatalf("期望 2 门课程，实际 %d", len(grouped))
	}
	ds := grouped[0]
	if ds.CourseTitle != "Data Structures" || len(ds.Tests) != 2 {
		t.Errorf("课程聚合不符: %+v", ds)
	}
	if ds.Obtained != 40 || ds.MaxMarks != 50 {
		t.Errorf("合计期望 40/50，实际 %v/%v", ds.Obtained, ds.MaxMarks)
	}
}

func TestMarkService_Import_Empty(t *testing.T) {
	repo := newMockRepository()
	seedEmptyTerm(t, repo)
	svc := NewMarkService(repo, zap.NewNop())

	_, err := svc.Import(context.Background(), &dto.ImportMarksRequest{Marks: []dto.MarkPayload{}})
	if !errors.Is(err, ErrMarksEmpty) {
		t.Errorf("期望 ErrMarksEmpty，实际: %v", err)
	}
}

func TestMarkService_NoActiveTerm(t *testing.T) {
	repo := newMockRepository()
	svc := NewMarkService(repo, zap.NewNop())

	if _, err := svc.ListGrouped(context.Background(), ""); !errors.Is(err, ErrNoActiveTerm) {
		t.Errorf("期望 ErrNoActiveTerm，实际: %v", err)
	}
}
