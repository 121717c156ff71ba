package school

// School is a high school the district works in.
type School struct {
	ID              string   `gorm:"primaryKey;size:36" json:"id"`
	SchoolName      string   `gorm:"size:160" json:"schoolName"`
	Neighborhood    string   `gorm:"size:120" json:"neighborhood"`
	PresidentName   string   `gorm:"size:120" json:"presidentName,omitempty"`
	PresidentPhone  string   `gorm:"size:20" json:"presidentPhone,omitempty"`
	TeacherContact  string   `gorm:"size:120" json:"teacherContact,omitempty"`
	StudentCapacity int      `json:"studentCapacity"`
	Lat             *float64 `json:"latitude,omitempty"`
	Lng             *float64 `json:"longitude,omitempty"`
}

// SchoolLog is one week's activity record for a school.
type SchoolLog struct {
	ID                string `gorm:"primaryKey;size:36" json:"id"`
	SchoolID          string `gorm:"size:36;index" json:"schoolId"`
	Week              int    `json:"week"`
	DateFormatted     string `gorm:"size:40" json:"dateFormatted"`
	IsPresidentActive bool   `json:"isPresidentActive"`
	ChatHeld          bool   `json:"chatHeld"`
	AttendeesCount    int    `json:"attendeesCount"`
	Notes             string `gorm:"type:text" json:"notes"`
	Timestamp         int64  `gorm:"index" json:"timestamp"`
}

// President is a student president responsible for one school.
// SchoolName is denormalized so list screens need no join.
type President struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	FullName      string `gorm:"size:120" json:"fullName"`
	SchoolID      string `gorm:"size:36;index" json:"schoolId"`
	SchoolName    string `gorm:"size:160" json:"schoolName"`
	PhoneNumber   string `gorm:"size:20" json:"phoneNumber"`
	Grade         int    `json:"grade"`
	SuccessorName string `gorm:"size:120" json:"successorName,omitempty"`
	IsActive      bool   `json:"isActive"`
	StartDate     string `gorm:"size:20" json:"startDate"`
	PhotoURL      string `gorm:"size:255" json:"photoUrl,omitempty"`
}

// PresidentWeeklyLog is one week of a president's activity, newest
// first in every list.
type PresidentWeeklyLog struct {
	ID                      string `gorm:"primaryKey;size:36" json:"id"`
	PresidentID             string `gorm:"size:36;index" json:"presidentId"`
	Week                    int    `json:"week"`
	DateFormatted           string `gorm:"size:40" json:"dateFormatted"`
	AttendedMeeting         bool   `json:"attendedMeeting"`
	PerformedSchoolActivity bool   `json:"performedSchoolActivity"`
	RecruitedNewMember      int    `json:"recruitedNewMember"`
	Notes                   string `gorm:"type:text" json:"notes"`
	Timestamp               int64  `gorm:"index" json:"timestamp"`
}
