package dto

// ── 课表模块 DTO ──

// CoursePayload 课表中的一次课
type CoursePayload struct {
	Title string `json:"title" binding:"required"`
	Code  string `json:"code"`
	Room  string `json:"room"`
}

// TimetableSlotPayload 一个时间段的课次列表
type TimetableSlotPayload struct {
	Courses []CoursePayload `json:"courses"`
}

// ImportTimetableRequest 课表导入请求。
// timetable 为上游结构："Day {n}" → 时间段标签 → {courses: [...]}，
// 时间段标签以 "-" 前的 HH:MM 前缀按时间排序
type ImportTimetableRequest struct {
	TermID    string                                     `json:"term_id"   binding:"omitempty,uuid"`
	Timetable map[string]map[string]TimetableSlotPayload `json:"timetable" binding:"required"`
}

// ImportTimetableResponse 课表导入响应
type ImportTimetableResponse struct {
	ImportedCount int `json:"imported_count"` // 展平后的课次行数
	DayOrders     int `json:"day_orders"`
}

// TimetableSlotResponse 查询响应中的一个时间段（已按时间排序）
type TimetableSlotResponse struct {
	Label   string          `json:"label"`
	Courses []CoursePayload `json:"courses"`
}

// TimetableResponse 课表查询响应："Day {n}" → 有序时间段列表
type TimetableResponse struct {
	Days map[string][]TimetableSlotResponse `json:"days"`
}
