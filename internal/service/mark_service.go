package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/repository"
)

// ── 成绩模块业务错误 ──

var ErrMarksEmpty = errors.New("成绩数据为空")

// MarkService 成绩业务接口
type MarkService interface {
	// Import 全量替换学期成绩快照
	Import(ctx context.Context, req *dto.ImportMarksRequest) (*dto.ImportMarksResponse, error)
	// ListGrouped 按课程聚合返回成绩，附各课程得分合计
	ListGrouped(ctx context.Context, termID string) ([]dto.CourseMarksResponse, error)
}

type markService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMarkService 创建 MarkService 实例
func NewMarkService(repo *repository.Repository, logger *zap.Logger) MarkService {
	return &markService{repo: repo, logger: logger}
}

func (s *markService) Import(ctx context.Context, req *dto.ImportMarksRequest) (*dto.ImportMarksResponse, error) {
	term, err := resolveTerm(ctx, s.repo, req.TermID)
	if err != nil {
		return nil, err
	}

	if len(req.Marks) == 0 {
		return nil, ErrMarksEmpty
	}
	marks := make([]model.Mark, 0, len(req.Marks))
	for _, m := range req.Marks {
		marks = append(marks, model.Mark{
			TermID:      term.TermID,
			CourseTitle: m.CourseTitle,
			TestName:    m.TestName,
			Obtained:    m.Obtained,
			MaxMarks:    m.MaxMarks,
		})
	}

	if err := s.repo.Mark.ReplaceByTerm(ctx, term.TermID, marks); err != nil {
		s.logger.Error("替换成绩快照失败", zap.Error(err), zap.String("term_id", term.TermID))
		return nil, err
	}

	s.logger.Info("成绩导入完成",
		zap.String("term_id", term.TermID),
		zap.Int("imported", len(marks)))

	return &dto.ImportMarksResponse{ImportedCount: len(marks)}, nil
}

func (s *markService) ListGrouped(ctx context.Context, termID string) ([]dto.CourseMarksResponse, error) {
	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, err
	}

	// 已按 course_title ASC, test_name ASC 排好序
	marks, err := s.repo.Mark.ListByTerm(ctx, term.TermID)
	if err != nil {
		s.logger.Error("查询成绩失败", zap.Error(err))
		return nil, err
	}

	var out []dto.CourseMarksResponse
	for _, m := range marks {
		test := dto.MarkResponse{
			ID:          m.MarkID,
			CourseTitle: m.CourseTitle,
			TestName:    m.TestName,
			Obtained:    m.Obtained,
			MaxMarks:    m.MaxMarks,
		}
		// 条目已按课程排序，同课程连续出现
		if n := len(out); n > 0 && out[n-1].CourseTitle == m.CourseTitle {
			out[n-1].Tests = append(out[n-1].Tests, test)
			out[n-1].Obtained += m.Obtained
			out[n-1].MaxMarks += m.MaxMarks
		} else {
			out = append(out, dto.CourseMarksResponse{
				CourseTitle: m.CourseTitle,
				Tests:       []dto.MarkResponse{test},
				Obtained:    m.Obtained,
				MaxMarks:    m.MaxMarks,
			})
		}
	}
	return out, nil
}
