package auditlog

import "gorm.io/datatypes"

// Entry records a sensitive action: approvals, exports, broadcasts.
type Entry struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	UserID    string         `gorm:"size:36;index" json:"userId"`
	Action    string         `gorm:"size:60;index" json:"action"`
	IPAddress string         `gorm:"size:45" json:"ipAddress"`
	Details   datatypes.JSON `json:"details"`
	Timestamp int64          `gorm:"index" json:"timestamp"`
}
