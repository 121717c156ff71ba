package womens

// ReportStatus is the approval state of a women's commission report.
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusApproved ReportStatus = "approved"
)

// Report is a weekly women's commission submission from a
// neighborhood representative.
type Report struct {
	ID               string       `gorm:"primaryKey;size:36" json:"id"`
	UserID           string       `gorm:"size:36;index" json:"userId"`
	NeighborhoodName string       `gorm:"size:120" json:"neighborhoodName"`
	Date             string       `gorm:"size:40" json:"date"`
	Timestamp        int64        `gorm:"index" json:"timestamp"`
	Status           ReportStatus `gorm:"size:16" json:"status"`
	AdminNote        string       `gorm:"size:255" json:"adminNote,omitempty"`

	// Yönetim
	WeeklyBoardMeeting bool `json:"weeklyBoardMeeting"`
	Attendance         int  `json:"attendance"`

	// Eğitim ve Birimler
	HomeChatsCount         int `json:"homeChatsCount"`
	HighSchoolGirlsContact int `json:"highSchoolGirlsContact"`
	MiddleSchoolGirlsGroups int `json:"middleSchoolGirlsGroups"`
	UniversityUnitContact  int `json:"universityUnitContact"`

	// Halkla İlişkiler
	Visitations int  `json:"visitations"`
	CharityWork bool `json:"charityWork"`

	Notes string `gorm:"type:text" json:"notes"`
}
