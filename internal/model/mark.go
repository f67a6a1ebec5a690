package model

// Mark 成绩记录表 — 对应 marks
type Mark struct {
	MarkID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"mark_id"`
	TermID      string  `gorm:"type:uuid;not null;index"                       json:"term_id"`
	CourseTitle string  `gorm:"type:varchar(255);not null"                     json:"course_title"`
	TestName    string  `gorm:"type:varchar(100);not null"                     json:"test_name"`
	Obtained    float64 `gorm:"type:numeric(6,2);not null;default:0"           json:"obtained"`
	MaxMarks    float64 `gorm:"type:numeric(6,2);not null;default:0"           json:"max_marks"`
	BaseModel
}

// TableName 指定表名
func (Mark) TableName() string { return "marks" }
