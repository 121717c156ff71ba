package tasks

// TargetAudience selects which branch a monthly task is assigned to.
type TargetAudience string

const (
	AudienceAll    TargetAudience = "All"
	AudienceMens   TargetAudience = "Mens"
	AudienceWomens TargetAudience = "Womens"
)

// MonthlyTask is a district-assigned goal for one calendar month. The
// month is matched as a literal label ("Aralık 2025"), never parsed.
type MonthlyTask struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	Title          string         `gorm:"size:160" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	TargetMonth    string         `gorm:"size:40;index" json:"targetMonth"`
	IsRequired     bool           `json:"isRequired"`
	TargetAudience TargetAudience `gorm:"size:16" json:"targetAudience"`
}

// Completion is one neighborhood's state on one task. Saving replaces
// the whole record, so note and flag always travel together.
type Completion struct {
	UserID    string `gorm:"primaryKey;size:36" json:"userId"`
	TaskID    string `gorm:"primaryKey;size:36" json:"taskId"`
	Completed bool   `json:"completed"`
	Note      string `gorm:"size:255" json:"note"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Progress is the per-user monthly completion summary.
type Progress struct {
	Month      string                `json:"month"`
	Tasks      []MonthlyTask         `json:"tasks"`
	Completion map[string]Completion `json:"completion"`
	Percent    int                   `json:"percent"`
}
