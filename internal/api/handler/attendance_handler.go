package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

// AttendanceHandler 出勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Import 导入出勤快照
// POST /api/v1/attendance/import
func (h *AttendanceHandler) Import(c *gin.Context) {
	var req dto.ImportAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.Import(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, result)
}

// List 出勤列表（含重新计算的出勤率）
// GET /api/v1/attendance?term_id=xxx
func (h *AttendanceHandler) List(c *gin.Context) {
	result, err := h.attendanceSvc.List(c.Request.Context(), c.Query("term_id"))
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceEmpty):
		response.BadRequest(c, 15001, "出勤数据为空")
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveTerm):
		response.NotFound(c, 12002, "没有激活的学期")
	default:
		response.InternalError(c)
	}
}
