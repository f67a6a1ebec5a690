package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAttendance 导出出勤报表 (.xlsx)
// GET /api/v1/export/attendance?term_id=xxx
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), c.Query("term_id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, filename, xlsxContentType, buf.Bytes())
}

// ExportLeavePlan 导出请假计划 (.ics)
// POST /api/v1/export/leave-plan
func (h *ExportHandler) ExportLeavePlan(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportLeavePlan(c.Request.Context(), &req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, filename, icsContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoAttendance):
		response.NotFound(c, 18001, "该学期暂无出勤数据")
	case errors.Is(err, service.ErrExportNoLeaveDays):
		response.BadRequest(c, 18002, "范围内没有影响该课程的请假日")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	case errors.Is(err, service.ErrTermNotFound),
		errors.Is(err, service.ErrNoActiveTerm),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrPredictionDateRange),
		errors.Is(err, service.ErrPredictionDateParse),
		errors.Is(err, service.ErrPredictionDatePair):
		handlePredictionError(c, err)
	default:
		response.InternalError(c)
	}
}

// writeDownload 设置下载响应头并写入文件内容
func writeDownload(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
