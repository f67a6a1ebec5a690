package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

// PredictionHandler 出勤预测模块 HTTP 处理器
type PredictionHandler struct {
	predictionSvc service.PredictionService
}

// NewPredictionHandler 创建 PredictionHandler
func NewPredictionHandler(predictionSvc service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionSvc: predictionSvc}
}

// Predict 出勤预测
// POST /api/v1/prediction
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.predictionSvc.Predict(c.Request.Context(), &req)
	if err != nil {
		handlePredictionError(c, err)
		return
	}
	response.OK(c, result)
}

// handlePredictionError 预测管线错误映射（导出模块复用）
func handlePredictionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 17001, "出勤记录中找不到该课程")
	case errors.Is(err, service.ErrPredictionDateRange):
		response.BadRequest(c, 17002, "结束日期不能早于开始日期")
	case errors.Is(err, service.ErrPredictionDateParse):
		response.BadRequest(c, 17003, "日期格式错误，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrPredictionDatePair):
		response.BadRequest(c, 17004, "from 与 to 必须同时提供")
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 12001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveTerm):
		response.NotFound(c, 12002, "没有激活的学期")
	default:
		response.InternalError(c)
	}
}
