package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

// CalendarHandler 校历模块 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// Import 导入校历（制表符分隔文本）
// POST /api/v1/calendar/import
func (h *CalendarHandler) Import(c *gin.Context) {
	var req dto.ImportCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.calendarSvc.Import(c.Request.Context(), &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}
	response.OK(c, result)
}

// List 校历列表（可按月份过滤）
// GET /api/v1/calendar?term_id=xxx&month=Mar%20'25
func (h *CalendarHandler) List(c *gin.Context) {
	result, err := h.calendarSvc.List(c.Request.Context(), c.Query("term_id"), c.Query("month"))
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}
	response.OK(c, result)
}

// DayOrderFor 查询单个日期的 Day Order
// GET /api/v1/calendar/day-order?date=2025-03-03&term_id=xxx
func (h *CalendarHandler) DayOrderFor(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, 10001, "date 不能为空")
		return
	}

	result, err := h.calendarSvc.DayOrderFor(c.Request.Context(), c.Query("term_id"), date)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCalendarEmpty):
		response.BadRequest(c, 13001, "校历文本解析后为空")
	case errors.Is(err, service.ErrCalendarDateParse):
		response.BadRequest(c, 13002, "日期格式错误，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveTerm):
		response.NotFound(c, 12002, "没有激活的学期")
	default:
		response.InternalError(c)
	}
}
