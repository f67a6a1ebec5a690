package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

// TermHandler 学期模块 HTTP 处理器
type TermHandler struct {
	termSvc service.TermService
}

// NewTermHandler 创建 TermHandler
func NewTermHandler(termSvc service.TermService) *TermHandler {
	return &TermHandler{termSvc: termSvc}
}

// Create 创建学期
// POST /api/v1/terms
func (h *TermHandler) Create(c *gin.Context) {
	var req dto.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.termSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.Created(c, result)
}

// List 学期列表
// GET /api/v1/terms
func (h *TermHandler) List(c *gin.Context) {
	result, err := h.termSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get 学期详情
// GET /api/v1/terms/:id
func (h *TermHandler) Get(c *gin.Context) {
	result, err := h.termSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 更新学期
// PUT /api/v1/terms/:id
func (h *TermHandler) Update(c *gin.Context) {
	var req dto.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.termSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除学期（级联删除其下数据集快照）
// DELETE /api/v1/terms/:id
func (h *TermHandler) Delete(c *gin.Context) {
	if err := h.termSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, nil)
}

// Activate 激活学期
// POST /api/v1/terms/:id/activate
func (h *TermHandler) Activate(c *gin.Context) {
	result, err := h.termSvc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, result)
}

// GetCurrent 获取当前激活学期
// GET /api/v1/terms/current
func (h *TermHandler) GetCurrent(c *gin.Context) {
	result, err := h.termSvc.GetCurrent(c.Request.Context())
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, result)
}

// GetDatasetStatus 学期数据集快照状态
// GET /api/v1/terms/status?term_id=xxx
func (h *TermHandler) GetDatasetStatus(c *gin.Context) {
	result, err := h.termSvc.GetDatasetStatus(c.Request.Context(), c.Query("term_id"))
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *TermHandler) handleTermError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveTerm):
		response.NotFound(c, 12002, "没有激活的学期")
	case errors.Is(err, service.ErrTermDateRange):
		response.BadRequest(c, 12003, "学期结束日期不能早于开始日期")
	case errors.Is(err, service.ErrTermDateParse):
		response.BadRequest(c, 12004, "日期格式错误，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
