package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/repository"
)

// ── 学期模块业务错误 ──

var (
	ErrTermNotFound  = errors.New("学期不存在")
	ErrNoActiveTerm  = errors.New("没有激活的学期")
	ErrTermDateRange = errors.New("学期结束日期不能早于开始日期")
	ErrTermDateParse = errors.New("日期格式错误，应为 YYYY-MM-DD")
)

const termDateLayout = "2006-01-02"

// TermService 学期业务接口。
// 校历 / 课表 / 出勤 / 成绩四类数据集快照都挂在学期下隔离，
// 未显式传 term_id 的数据接口一律落到当前激活学期。
type TermService interface {
	Create(ctx context.Context, req *dto.CreateTermRequest) (*dto.TermResponse, error)
	List(ctx context.Context) ([]dto.TermResponse, error)
	Get(ctx context.Context, id string) (*dto.TermResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTermRequest) (*dto.TermResponse, error)
	Delete(ctx context.Context, id string) error
	// Activate 激活指定学期并取消其他学期的激活状态
	Activate(ctx context.Context, id string) (*dto.TermResponse, error)
	GetCurrent(ctx context.Context) (*dto.TermResponse, error)
	// GetDatasetStatus 返回学期下四类数据集的行数与最近更新时间
	GetDatasetStatus(ctx context.Context, termID string) (*dto.DatasetStatusResponse, error)
}

type termService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTermService 创建 TermService 实例
func NewTermService(repo *repository.Repository, logger *zap.Logger) TermService {
	return &termService{repo: repo, logger: logger}
}

func (s *termService) Create(ctx context.Context, req *dto.CreateTermRequest) (*dto.TermResponse, error) {
	start, err := time.Parse(termDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrTermDateParse
	}
	end, err := time.Parse(termDateLayout, req.EndDate)
	if err != nil {
		return nil, ErrTermDateParse
	}
	if end.Before(start) {
		return nil, ErrTermDateRange
	}

	term := model.Term{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.repo.Term.Create(ctx, &term); err != nil {
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	resp := toTermResponse(&term)
	return &resp, nil
}

func (s *termService) List(ctx context.Context) ([]dto.TermResponse, error) {
	terms, err := s.repo.Term.List(ctx)
	if err != nil {
		s.logger.Error("查询学期列表失败", zap.Error(err))
		return nil, err
	}
	out := make([]dto.TermResponse, 0, len(terms))
	for i := range terms {
		out = append(out, toTermResponse(&terms[i]))
	}
	return out, nil
}

func (s *termService) Get(ctx context.Context, id string) (*dto.TermResponse, error) {
	term, err := s.getTerm(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) Update(ctx context.Context, id string, req *dto.UpdateTermRequest) (*dto.TermResponse, error) {
	term, err := s.getTerm(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		term.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := time.Parse(termDateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrTermDateParse
		}
		term.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(termDateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrTermDateParse
		}
		term.EndDate = end
	}
	if term.EndDate.Before(term.StartDate) {
		return nil, ErrTermDateRange
	}

	if err := s.repo.Term.Update(ctx, term); err != nil {
		s.logger.Error("更新学期失败", zap.Error(err))
		return nil, err
	}

	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) Delete(ctx context.Context, id string) error {
	if _, err := s.getTerm(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Term.Delete(ctx, id); err != nil {
		s.logger.Error("删除学期失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *termService) Activate(ctx context.Context, id string) (*dto.TermResponse, error) {
	term, err := s.getTerm(ctx, id)
	if err != nil {
		return nil, err
	}

	// 先清空再置位，保证任意时刻至多一个激活学期
	if err := s.repo.Term.ClearActive(ctx); err != nil {
		s.logger.Error("取消学期激活状态失败", zap.Error(err))
		return nil, err
	}
	term.IsActive = true
	if err := s.repo.Term.Update(ctx, term); err != nil {
		s.logger.Error("激活学期失败", zap.Error(err))
		return nil, err
	}

	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) GetCurrent(ctx context.Context) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveTerm
		}
		return nil, err
	}
	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) GetDatasetStatus(ctx context.Context, termID string) (*dto.DatasetStatusResponse, error) {
	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, err
	}

	type counter struct {
		name        string
		count       func(context.Context, string) (int64, error)
		lastUpdated func(context.Context, string) (*time.Time, error)
	}
	counters := []counter{
		{"calendar", s.repo.Calendar.CountByTerm, s.repo.Calendar.LastUpdatedByTerm},
		{"timetable", s.repo.Timetable.CountByTerm, s.repo.Timetable.LastUpdatedByTerm},
		{"attendance", s.repo.Attendance.CountByTerm, s.repo.Attendance.LastUpdatedByTerm},
		{"marks", s.repo.Mark.CountByTerm, s.repo.Mark.LastUpdatedByTerm},
	}

	datasets := make([]dto.DatasetStatus, 0, len(counters))
	for _, c := range counters {
		rows, err := c.count(ctx, term.TermID)
		if err != nil {
			s.logger.Error("统计数据集行数失败", zap.Error(err), zap.String("dataset", c.name))
			return nil, err
		}
		ts, err := c.lastUpdated(ctx, term.TermID)
		if err != nil {
			s.logger.Error("查询数据集更新时间失败", zap.Error(err), zap.String("dataset", c.name))
			return nil, err
		}
		datasets = append(datasets, dto.DatasetStatus{
			Name:        c.name,
			Rows:        rows,
			LastUpdated: ts,
		})
	}

	return &dto.DatasetStatusResponse{
		Term:     toTermResponse(term),
		Datasets: datasets,
	}, nil
}

// ── 私有辅助方法 ──

func (s *termService) getTerm(ctx context.Context, id string) (*model.Term, error) {
	term, err := s.repo.Term.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}
	return term, nil
}

// resolveTerm 按 termID 解析学期；termID 为空时取当前激活学期。
// 各数据集 Service 共用，保证"默认落到激活学期"的行为一致。
func resolveTerm(ctx context.Context, repo *repository.Repository, termID string) (*model.Term, error) {
	if termID != "" {
		term, err := repo.Term.GetByID(ctx, termID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTermNotFound
			}
			return nil, err
		}
		return term, nil
	}
	term, err := repo.Term.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveTerm
		}
		return nil, err
	}
	return term, nil
}

func toTermResponse(term *model.Term) dto.TermResponse {
	return dto.TermResponse{
		ID:        term.TermID,
		Name:      term.Name,
		StartDate: term.StartDate.Format(termDateLayout),
		EndDate:   term.EndDate.Format(termDateLayout),
		IsActive:  term.IsActive,
	}
}
