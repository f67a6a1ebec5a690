package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/service"
	"acadpulse/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock PredictionService ──

type mockPredictionService struct {
	result *dto.PredictionResponse
	err    error
}

func (m *mockPredictionService) Predict(_ context.Context, _ *dto.PredictionRequest) (*dto.PredictionResponse, error) {
	return m.result, m.err
}

// ── Mock TermService ──

type mockTermService struct {
	currentResult *dto.TermResponse
	currentErr    error
	statusResult  *dto.DatasetStatusResponse
	statusErr     error
}

func (m *mockTermService) Create(_ context.Context, _ *dto.CreateTermRequest) (*dto.TermResponse, error) {
	return nil, nil
}
func (m *mockTermService) List(_ context.Context) ([]dto.TermResponse, error) { return nil, nil }
func (m *mockTermService) Get(_ context.Context, _ string) (*dto.TermResponse, error) {
	return nil, nil
}
func (m *mockTermService) Update(_ context.Context, _ string, _ *dto.UpdateTermRequest) (*dto.TermResponse, error) {
	return nil, nil
}
func (m *mockTermService) Delete(_ context.Context, _ string) error { return nil }
func (m *mockTermService) Activate(_ context.Context, _ string) (*dto.TermResponse, error) {
	return nil, nil
}
func (m *mockTermService) GetCurrent(_ context.Context) (*dto.TermResponse, error) {
	return m.currentResult, m.currentErr
}
func (m *mockTermService) GetDatasetStatus(_ context.Context, _ string) (*dto.DatasetStatusResponse, error) {
	return m.statusResult, m.statusErr
}

// ── 测试辅助 ──

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// PredictionHandler 测试
// ═══════════════════════════════════════════════════════════

func setupPredictionRouter(svc service.PredictionService) *gin.Engine {
	r := gin.New()
	h := NewPredictionHandler(svc)
	r.POST("/prediction", h.Predict)
	return r
}

func TestPredictionHandler_Predict_Success(t *testing.T) {
	svc := &mockPredictionService{
		result: &dto.PredictionResponse{
			CourseTitle: "Data Structures",
			Projection:  dto.ProjectionView{CurrentPercentage: "72.00"},
		},
	}
	r := setupPredictionRouter(svc)

	w := performRequest(r, http.MethodPost, "/prediction", dto.PredictionRequest{
		CourseTitle: "Data Structures",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("业务码期望 0，实际 %d", resp.Code)
	}
}

func TestPredictionHandler_Predict_InvalidBody(t *testing.T) {
	r := setupPredictionRouter(&mockPredictionService{})

	// course_title 与 course_code 都缺失
	w := performRequest(r, http.MethodPost, "/prediction", map[string]interface{}{
		"additional_absences": 2,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 10001 {
		t.Errorf("业务码期望 10001，实际 %d", resp.Code)
	}
}

func TestPredictionHandler_Predict_CourseNotFound(t *testing.T) {
	r := setupPredictionRouter(&mockPredictionService{err: service.ErrCourseNotFound})

	w := performRequest(r, http.MethodPost, "/prediction", dto.PredictionRequest{
		CourseTitle: "Ghost Course",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 17001 {
		t.Errorf("业务码期望 17001，实际 %d", resp.Code)
	}
}

func TestPredictionHandler_Predict_DateRange(t *testing.T) {
	r := setupPredictionRouter(&mockPredictionService{err: service.ErrPredictionDateRange})

	w := performRequest(r, http.MethodPost, "/prediction", dto.PredictionRequest{
		CourseTitle: "Data Structures",
		From:        "2025-03-10",
		To:          "2025-03-01",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 17002 {
		t.Errorf("业务码期望 17002，实际 %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TermHandler 测试
// ═══════════════════════════════════════════════════════════

func TestTermHandler_GetCurrent_None(t *testing.T) {
	r := gin.New()
	h := NewTermHandler(&mockTermService{currentErr: service.ErrNoActiveTerm})
	r.GET("/terms/current", h.GetCurrent)

	w := performRequest(r, http.MethodGet, "/terms/current", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 12002 {
		t.Errorf("业务码期望 12002，实际 %d", resp.Code)
	}
}

func TestTermHandler_GetDatasetStatus(t *testing.T) {
	r := gin.New()
	h := NewTermHandler(&mockTermService{
		statusResult: &dto.DatasetStatusResponse{
			Term: dto.TermResponse{ID: "term-1", Name: "S1"},
			Datasets: []dto.DatasetStatus{
				{Name: "calendar", Rows: 90},
			},
		},
	})
	r.GET("/terms/status", h.GetDatasetStatus)

	w := performRequest(r, http.MethodGet, "/terms/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("业务码期望 0，实际 %d", resp.Code)
	}
}
