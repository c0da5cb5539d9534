package models

import "time"

// QRToken represents the qr_tokens table: a revocable login credential
// rendered to the user as a QR code. At most one row per user is active at
// any time; regeneration revokes the old row and inserts a new one in the
// same transaction. Inactive rows are retained for audit until an admin
// purges them.
type QRToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	Token      string     `gorm:"uniqueIndex;not null;size:64" json:"-"`
	Active     bool       `gorm:"default:true" json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for QRToken model
func (QRToken) TableName() string {
	return "qr_tokens"
}

// QRTokenResponse is returned to the token's owner. Token is the plain
// credential; Image carries the base64 PNG when rendering succeeded.
type QRTokenResponse struct {
	ID         uint       `json:"id"`
	Token      string     `json:"token"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	Image      string     `json:"image,omitempty"`
	ImageError string     `json:"image_error,omitempty"`
}
