package models

import "time"

// AuditLog records account and ledger operations for troubleshooting.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:255;index" json:"username"`
	Action     string    `gorm:"size:50;not null" json:"action"`
	ResourceID uint      `json:"resource_id"`
	IPAddress  string    `gorm:"size:45" json:"ip_address"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
