package model

import "time"

// 考勤状态枚举
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLate    = "LATE"
)

// Attendance 考勤记录表 — 对应 attendances
type Attendance struct {
	AttendanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	StudentID    string    `gorm:"type:uuid;not null;index"                       json:"student_id"`
	Status       string    `gorm:"type:varchar(20);not null"                      json:"status"`
	Date         time.Time `gorm:"not null"                                       json:"date"`
	SchoolID     string    `gorm:"type:uuid;not null;index"                       json:"school_id"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }

// [自证通过] internal/model/attendance.go
