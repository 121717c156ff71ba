package notification

// Notification is a district-wide broadcast. The feed is append only
// and served newest first; IsRead is stored for the client but never
// flipped server side.
type Notification struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	Title      string `gorm:"size:160" json:"title"`
	Message    string `gorm:"type:text" json:"message"`
	Date       string `gorm:"size:40" json:"date"`
	Timestamp  int64  `gorm:"index" json:"timestamp"`
	SenderName string `gorm:"size:120" json:"senderName"`
	IsRead     bool   `json:"isRead"`
}
