package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

// TimetableHandler 课表模块 HTTP 处理器
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// Import 导入课表
// POST /api/v1/timetable/import
func (h *TimetableHandler) Import(c *gin.Context) {
	var req dto.ImportTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.timetableSvc.Import(c.Request.Context(), &req)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	response.OK(c, result)
}

// Get 查询课表（按 Day Order 分组，时间段有序）
// GET /api/v1/timetable?term_id=xxx
func (h *TimetableHandler) Get(c *gin.Context) {
	result, err := h.timetableSvc.Get(c.Request.Context(), c.Query("term_id"))
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *TimetableHandler) handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableEmpty):
		response.BadRequest(c, 14001, "课表数据为空")
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveTerm):
		response.NotFound(c, 12002, "没有激活的学期")
	default:
		response.InternalError(c)
	}
}
