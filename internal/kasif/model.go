package kasif

// Group is a middle school (Kaşif) circle in one neighborhood.
// LastMeetingDate is nil until the group ever meets.
type Group struct {
	ID                 string `gorm:"primaryKey;size:36" json:"id"`
	NeighborhoodID     string `gorm:"size:36;index" json:"neighborhoodId"`
	NeighborhoodName   string `gorm:"size:120" json:"neighborhoodName"`
	GroupName          string `gorm:"size:120" json:"groupName"`
	GuideName          string `gorm:"size:120" json:"guideName"`
	ActiveStudentCount int    `json:"activeStudentCount"`
	LastMeetingDate    *int64 `json:"lastMeetingDate,omitempty"`
}

// GroupLog is one week's record for a group. ActivityDetails is set
// when the group met, Excuse when it did not.
type GroupLog struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	GroupID         string `gorm:"size:36;index" json:"groupId"`
	NeighborhoodID  string `gorm:"size:36;index" json:"neighborhoodId"`
	Week            int    `json:"week"`
	DateFormatted   string `gorm:"size:40" json:"dateFormatted"`
	Timestamp       int64  `gorm:"index" json:"timestamp"`
	IsMeetingHeld   bool   `json:"isMeetingHeld"`
	AttendanceCount int    `json:"attendanceCount"`
	ActivityDetails string `gorm:"type:text" json:"activityDetails,omitempty"`
	Excuse          string `gorm:"size:255" json:"excuse,omitempty"`
}

// GroupStatus is a dashboard row with the inactivity alarm computed.
type GroupStatus struct {
	Group
	RedAlarm bool `json:"redAlarm"`
}
