package models

import "time"

// Action values for ActivityLog.Action.
const (
	ActionLogin           = "login"
	ActionLogout          = "logout"
	ActionQRLogin         = "qr_login"
	ActionQRGenerated     = "qr_generated"
	ActionQRRevoked       = "qr_revoked"
	ActionQRActivated     = "qr_activated"
	ActionRegistration    = "registration"
	ActionReportGenerated = "report_generated"
	ActionRoleChanged     = "role_changed"
	ActionAccountToggled  = "account_toggled"
)

// ActivityLog represents the activity_logs table
// Used for security tracking and per-user action history
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"size:255" json:"user_agent,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
