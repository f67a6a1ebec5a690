package dto

// ── 学期模块 DTO ──

// CreateTermRequest 创建学期请求
type CreateTermRequest struct {
	Name      string `json:"name"       binding:"required,max=50"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date"   binding:"required"` // YYYY-MM-DD
}

// UpdateTermRequest 更新学期请求
type UpdateTermRequest struct {
	Name      *string `json:"name"       binding:"omitempty,max=50"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// TermResponse 学期响应
type TermResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}
