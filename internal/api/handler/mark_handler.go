package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

// MarkHandler 成绩模块 HTTP 处理器
type MarkHandler struct {
	markSvc service.MarkService
}

// NewMarkHandler 创建 MarkHandler
func NewMarkHandler(markSvc service.MarkService) *MarkHandler {
	return &MarkHandler{markSvc: markSvc}
}

// Import 导入成绩快照
// POST /api/v1/marks/import
func (h *MarkHandler) Import(c *gin.Context) {
	var req dto.ImportMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.markSvc.Import(c.Request.Context(), &req)
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.OK(c, result)
}

// List 按课程聚合的成绩列表
// GET /api/v1/marks?term_id=xxx
func (h *MarkHandler) List(c *gin.Context) {
	result, err := h.markSvc.ListGrouped(c.Request.Context(), c.Query("term_id"))
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *MarkHandler) handleMarkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMarksEmpty):
		response.BadRequest(c, 16001, "成绩数据为空")
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveTerm):
		response.NotFound(c, 12002, "没有激活的学期")
	default:
		response.InternalError(c)
	}
}
