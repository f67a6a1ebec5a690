package prediction

import "time"

// PredictionInput 单次推算的完整输入快照。
// 每次触发（选课、改日期范围、改手动缺勤数）都整体重算，
// 不在各阶段间保留可变状态，后到的输入快照自然覆盖先前结果。
type PredictionInput struct {
	Course         CourseRef
	HoursConducted int
	HoursAbsent    int

	// From/To 计划请假的日期范围（含两端）。零值表示未选范围。
	From time.Time
	To   time.Time

	// AdditionalAbsences 手动补录的缺勤数（非负）。
	// 与日历匹配出的缺勤独立相加：同一天既选了范围又手动计数
	// 会重复扣减，这是已知且接受的建模简化。
	AdditionalAbsences int

	Calendar *CalendarIndex
	Matcher  *ScheduleMatcher
}

// DayImpact 范围内单个日期的判定轨迹，供展示层的日期摘要使用
type DayImpact struct {
	Date     string `json:"date"`
	DayOrder string `json:"day_order,omitempty"` // 空表示无教学日序
	Holiday  bool   `json:"holiday"`
	Affects  bool   `json:"affects"` // 该日是否损失该课程的一节课
}

// PredictionOutcome 推算输出：最终结果 + 中间量
type PredictionOutcome struct {
	Result          ProjectionResult `json:"result"`
	MissedFromRange int              `json:"missed_from_range"`
	TotalMissed     int              `json:"total_missed"`
	Days            []DayImpact      `json:"days,omitempty"`
}

// Engine 预测引擎：推算器 + 预测视野
type Engine struct {
	Projector Projector
	// Horizon 假定的剩余课时数，计入最终推算的总课时
	Horizon int
}

// NewEngine 创建引擎，Horizon 为负时回落到默认值
func NewEngine(projector Projector, horizon int) Engine {
	if horizon < 0 {
		horizon = DefaultHorizon
	}
	return Engine{Projector: projector, Horizon: horizon}
}

// Baseline 选课后的基线推算：只看已记录的课时，不含视野与请假
func (e Engine) Baseline(hoursConducted, hoursAbsent int) ProjectionResult {
	return e.Projector.Project(hoursConducted, hoursConducted-hoursAbsent)
}

// ComputePrediction 完整推算管线。
//
// 对范围内每个日期：节假日/周末跳过；否则解析 Day Order，
// 该课程在此 Day Order 有课则计一节缺勤。日历缺勤与手动缺勤
// 相加后代入推算：总课时 = 已开课时 + 视野，
// 出勤课时 = 已开 − 已缺 − 总缺勤（可能为负，由推算器标记非法）。
func (e Engine) ComputePrediction(in PredictionInput) PredictionOutcome {
	outcome := PredictionOutcome{}

	if in.Calendar != nil && !in.From.IsZero() && !in.To.IsZero() {
		for d := in.From; !d.After(in.To); d = d.AddDate(0, 0, 1) {
			impact := DayImpact{Date: DateKey(d)}

			if in.Calendar.IsHolidayOrWeekend(d) {
				impact.Holiday = true
				outcome.Days = append(outcome.Days, impact)
				continue
			}

			dayOrder, ok := in.Calendar.DayOrderFor(d)
			if ok {
				impact.DayOrder = dayOrder
				if in.Matcher != nil && in.Matcher.IsCourseScheduledOnDayOrder(in.Course, dayOrder) {
					impact.Affects = true
					outcome.MissedFromRange++
				}
			}
			outcome.Days = append(outcome.Days, impact)
		}
	}

	outcome.TotalMissed = outcome.MissedFromRange + in.AdditionalAbsences

	totalClasses := in.HoursConducted + e.Horizon
	attendedClasses := in.HoursConducted - in.HoursAbsent - outcome.TotalMissed
	outcome.Result = e.Projector.Project(totalClasses, attendedClasses)

	return outcome
}

// [自证通过] internal/prediction/predict.go
