package models

import "time"

// SystemHealth represents the system_health table: periodic snapshots taken
// by the background worker so the dashboard can show trends without holding
// optimizer state.
type SystemHealth struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CPUUsage       float64   `gorm:"default:0" json:"cpu_usage"`
	MemoryUsage    float64   `gorm:"default:0" json:"memory_usage"`
	DiskUsage      float64   `gorm:"default:0" json:"disk_usage"`
	TotalSyscalls  int64     `gorm:"default:0" json:"total_syscalls"`
	CriticalAlerts int       `gorm:"default:0" json:"critical_alerts"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

// TableName specifies the table name for SystemHealth model
func (SystemHealth) TableName() string {
	return "system_health"
}
