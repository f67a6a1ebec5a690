package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"acadpulse/backend/internal/model"
	"acadpulse/backend/internal/repository"
)

// newMockRepository 组装全套内存 Mock Repository
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:       newMockUserRepo(),
		Term:       newMockTermRepo(),
		Calendar:   newMockCalendarRepo(),
		Timetable:  newMockTimetableRepo(),
		Attendance: newMockAttendanceRepo(),
		Mark:       newMockMarkRepo(),
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock TermRepository ──

type mockTermRepo struct {
	terms map[string]*model.Term
}

func newMockTermRepo() *mockTermRepo {
	return &mockTermRepo{terms: make(map[string]*model.Term)}
}

func (m *mockTermRepo) Create(_ context.Context, term *model.Term) error {
	if term.TermID == "" {
		term.TermID = "term-" + term.Name
	}
	m.terms[term.TermID] = term
	return nil
}

func (m *mockTermRepo) GetByID(_ context.Context, id string) (*model.Term, error) {
	if t, ok := m.terms[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) GetCurrent(_ context.Context) (*model.Term, error) {
	for _, t := range m.terms {
		if t.IsActive {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) List(_ context.Context) ([]model.Term, error) {
	var result []model.Term
	for _, t := range m.terms {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTermRepo) Update(_ context.Context, term *model.Term) error {
	m.terms[term.TermID] = term
	return nil
}

func (m *mockTermRepo) Delete(_ context.Context, id string) error {
	delete(m.terms, id)
	return nil
}

func (m *mockTermRepo) ClearActive(_ context.Context) error {
	for _, t := range m.terms {
		t.IsActive = false
	}
	return nil
}

// ── Mock CalendarRepository ──

type mockCalendarRepo struct {
	days map[string][]model.CalendarDay // termID → rows
}

func newMockCalendarRepo() *mockCalendarRepo {
	return &mockCalendarRepo{days: make(map[string][]model.CalendarDay)}
}

func (m *mockCalendarRepo) ReplaceByTerm(_ context.Context, termID string, days []model.CalendarDay) error {
	m.days[termID] = days
	return nil
}

func (m *mockCalendarRepo) ListByTerm(_ context.Context, termID string) ([]model.CalendarDay, error) {
	return m.days[termID], nil
}

func (m *mockCalendarRepo) ListByTermAndMonth(_ context.Context, termID, monthLabel string) ([]model.CalendarDay, error) {
	var result []model.CalendarDay
	for _, d := range m.days[termID] {
		if d.MonthLabel == monthLabel {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockCalendarRepo) CountByTerm(_ context.Context, termID string) (int64, error) {
	return int64(len(m.days[termID])), nil
}

func (m *mockCalendarRepo) LastUpdatedByTerm(_ context.Context, termID string) (*time.Time, error) {
	if len(m.days[termID]) == 0 {
		return nil, nil
	}
	ts := time.Now()
	return &ts, nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	entries map[string][]model.TimetableEntry
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{entries: make(map[string][]model.TimetableEntry)}
}

func (m *mockTimetableRepo) ReplaceByTerm(_ context.Context, termID string, entries []model.TimetableEntry) error {
	m.entries[termID] = entries
	return nil
}

func (m *mockTimetableRepo) ListByTerm(_ context.Context, termID string) ([]model.TimetableEntry, error) {
	return m.entries[termID], nil
}

func (m *mockTimetableRepo) CountByTerm(_ context.Context, termID string) (int64, error) {
	return int64(len(m.entries[termID])), nil
}

func (m *mockTimetableRepo) LastUpdatedByTerm(_ context.Context, termID string) (*time.Time, error) {
	if len(m.entries[termID]) == 0 {
		return nil, nil
	}
	ts := time.Now()
	return &ts, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string][]model.AttendanceRecord
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string][]model.AttendanceRecord)}
}

func (m *mockAttendanceRepo) ReplaceByTerm(_ context.Context, termID string, records []model.AttendanceRecord) error {
	m.records[termID] = records
	return nil
}

func (m *mockAttendanceRepo) ListByTerm(_ context.Context, termID string) ([]model.AttendanceRecord, error) {
	return m.records[termID], nil
}

func (m *mockAttendanceRepo) CountByTerm(_ context.Context, termID string) (int64, error) {
	return int64(len(m.records[termID])), nil
}

func (m *mockAttendanceRepo) LastUpdatedByTerm(_ context.Context, termID string) (*time.Time, error) {
	if len(m.records[termID]) == 0 {
		return nil, nil
	}
	ts := time.Now()
	return &ts, nil
}

// ── Mock MarkRepository ──

type mockMarkRepo struct {
	marks map[string][]model.Mark
}

func newMockMarkRepo() *mockMarkRepo {
	return &mockMarkRepo{marks: make(map[string][]model.Mark)}
}

func (m *mockMarkRepo) ReplaceByTerm(_ context.Context, termID string, marks []model.Mark) error {
	m.marks[termID] = marks
	return nil
}

func (m *mockMarkRepo) ListByTerm(_ context.Context, termID string) ([]model.Mark, error) {
	return m.marks[termID], nil
}

func (m *mockMarkRepo) CountByTerm(_ context.Context, termID string) (int64, error) {
	return int64(len(m.marks[termID])), nil
}

func (m *mockMarkRepo) LastUpdatedByTerm(_ context.Context, termID string) (*time.Time, error) {
	if len(m.marks[termID]) == 0 {
		return nil, nil
	}
	ts := time.Now()
	return &ts, nil
}
