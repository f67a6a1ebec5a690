package dto

// ── 出勤模块 DTO ──

// AttendanceRecordPayload 上游出勤记录
// attendance_percentage 为上游派生字段，导入时忽略并重新计算
type AttendanceRecordPayload struct {
	CourseCode           string  `json:"course_code"     binding:"required"`
	CourseTitle          string  `json:"course_title"    binding:"required"`
	Faculty              string  `json:"faculty"`
	HoursConducted       int     `json:"hours_conducted" binding:"min=0"`
	HoursAbsent          int     `json:"hours_absent"    binding:"min=0"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// ImportAttendanceRequest 出勤导入请求
type ImportAttendanceRequest struct {
	TermID  string                    `json:"term_id" binding:"omitempty,uuid"`
	Records []AttendanceRecordPayload `json:"records" binding:"required,dive"`
}

// ImportAttendanceResponse 出勤导入响应
type ImportAttendanceResponse struct {
	ImportedCount int `json:"imported_count"`
	SkippedCount  int `json:"skipped_count"` // 违反 0 ≤ absent ≤ conducted 的记录数
}

// AttendanceRecordResponse 出勤记录响应
type AttendanceRecordResponse struct {
	ID                   string `json:"id"`
	CourseCode           string `json:"course_code"`
	CourseTitle          string `json:"course_title"`
	Faculty              string `json:"faculty,omitempty"`
	HoursConducted       int    `json:"hours_conducted"`
	HoursAbsent          int    `json:"hours_absent"`
	HoursAttended        int    `json:"hours_attended"`
	AttendancePercentage string `json:"attendance_percentage"` // 两位小数文本
}
