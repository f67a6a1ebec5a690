package dto

// ── 校历模块 DTO ──

// ImportCalendarRequest 校历导入请求。
// raw 为上游的制表符分隔文本：[Month, Day, Date(ISO), DayOrder, DayName]，
// 首行表头，Day Order 哨兵为 "-"
type ImportCalendarRequest struct {
	TermID string `json:"term_id" binding:"omitempty,uuid"`
	Raw    string `json:"raw"     binding:"required"`
}

// ImportCalendarResponse 校历导入响应
// 畸形行不报错但计数返回，数据损耗必须可见
type ImportCalendarResponse struct {
	ImportedCount int `json:"imported_count"`
	DroppedRows   int `json:"dropped_rows"`
}

// CalendarDayResponse 校历行响应
type CalendarDayResponse struct {
	Month     string `json:"month"`
	Day       string `json:"day"`
	Date      string `json:"date"`
	DayOrder  string `json:"day_order"`
	DayName   string `json:"day_name"`
	IsHoliday bool   `json:"is_holiday"`
}

// DayOrderResponse 单日 Day Order 查询响应
type DayOrderResponse struct {
	Date             string `json:"date"`
	DayOrder         string `json:"day_order,omitempty"` // 空表示无教学日序
	HolidayOrWeekend bool   `json:"holiday_or_weekend"`
}
