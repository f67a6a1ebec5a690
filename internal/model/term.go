package model

import "time"

// Term 学期表 — 对应 terms
// 校历 / 课表 / 出勤三类数据集快照都挂在学期下隔离
type Term struct {
	TermID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"term_id"`
	Name      string    `gorm:"type:varchar(50);not null"                      json:"name"`
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	IsActive  bool      `gorm:"not null;default:false"                         json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Term) TableName() string { return "terms" }

// [自证通过] internal/model/term.go
