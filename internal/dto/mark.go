package dto

// ── 成绩模块 DTO ──

// MarkPayload 上游成绩记录
type MarkPayload struct {
	CourseTitle string  `json:"course_title" binding:"required"`
	TestName    string  `json:"test_name"    binding:"required"`
	Obtained    float64 `json:"obtained"     binding:"min=0"`
	MaxMarks    float64 `json:"max_marks"    binding:"min=0"`
}

// ImportMarksRequest 成绩导入请求
type ImportMarksRequest struct {
	TermID string        `json:"term_id" binding:"omitempty,uuid"`
	Marks  []MarkPayload `json:"marks"   binding:"required,dive"`
}

// ImportMarksResponse 成绩导入响应
type ImportMarksResponse struct {
	ImportedCount int `json:"imported_count"`
}

// MarkResponse 成绩响应
type MarkResponse struct {
	ID          string  `json:"id"`
	CourseTitle string  `json:"course_title"`
	TestName    string  `json:"test_name"`
	Obtained    float64 `json:"obtained"`
	MaxMarks    float64 `json:"max_marks"`
}

// CourseMarksResponse 按课程聚合的成绩响应
type CourseMarksResponse struct {
	CourseTitle string         `json:"course_title"`
	Tests       []MarkResponse `json:"tests"`
	Obtained    float64        `json:"obtained"`
	MaxMarks    float64        `json:"max_marks"`
}
