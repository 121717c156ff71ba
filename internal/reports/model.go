package reports

import "gorm.io/datatypes"

// ReportStatus is the approval state of a weekly report.
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusApproved ReportStatus = "approved"
)

// Window selects how far back the district aggregation looks.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// WeeklyReport is one neighborhood's weekly activity submission. The
// Timestamp is Unix milliseconds and Date its formatted display form.
type WeeklyReport struct {
	ID               string       `gorm:"primaryKey;size:36" json:"id"`
	UserID           string       `gorm:"size:36;index" json:"userId"`
	NeighborhoodName string       `gorm:"size:120;index" json:"neighborhoodName"`
	Date             string       `gorm:"size:40" json:"date"`
	Timestamp        int64        `gorm:"index" json:"timestamp"`
	Status           ReportStatus `gorm:"size:16" json:"status"`

	// Assigned task snapshot kept with the report for history.
	CompletedTasks datatypes.JSON `json:"completedTasks"`

	// Hanımlar Komisyonu
	IsWomenMeetingHeld     bool `json:"isWomenMeetingHeld"`
	WomenMeetingAttendance int  `json:"womenMeetingAttendance"`
	WomenTeaTalkCount      int  `json:"womenTeaTalkCount"`
	YoungWomenWork         int  `json:"youngWomenWork"`

	// Yönetim (Ana Kademe)
	IsManagementMeetingHeld bool   `json:"isManagementMeetingHeld"`
	MeetingPhotoURL         string `gorm:"size:255" json:"meetingPhotoUrl,omitempty"`
	IsSupervisorAttended    bool   `json:"isSupervisorAttended"`
	ManagementTotalCount    int    `json:"managementTotalCount"`
	ManagementAttendanceCount int  `json:"managementAttendanceCount"`

	// Ortaokul
	MiddleSchoolGroupCount   int `json:"middleSchoolGroupCount"`
	MiddleSchoolStudentCount int `json:"middleSchoolStudentCount"`

	// Lise
	HighSchoolTotalCount          int `json:"highSchoolTotalCount"`
	HighSchoolPresidentCount      int `json:"highSchoolPresidentCount"`
	HighSchoolStaffCount          int `json:"highSchoolStaffCount"`
	HighSchoolMeetingAttendance   int `json:"highSchoolMeetingAttendance"`
	HighSchoolReadingGroupCount   int `json:"highSchoolReadingGroupCount"`
	HighSchoolReadingStudentCount int `json:"highSchoolReadingStudentCount"`
	HighSchoolChatAttendance      int `json:"highSchoolChatAttendance"`

	// Sohbetler
	GeneralChatAttendance int `json:"generalChatAttendance"`
	WomenChatAttendance   int `json:"womenChatAttendance"`

	OtherActivities string `gorm:"type:text" json:"otherActivities"`
}

// DistrictSummary is the aggregated district dashboard payload.
type DistrictSummary struct {
	Window            Window         `json:"window"`
	NeighborhoodCount int            `json:"neighborhoodCount"`
	Snapshots         []WeeklyReport `json:"snapshots"`
	Activity          ActivityTotals `json:"activity"`
	Stock             StockTotals    `json:"stock"`
}

// ActivityTotals sums flow metrics over every report in the window.
type ActivityTotals struct {
	ManagementAttendance    int `json:"managementAttendance"`
	WomenMeetingAttendance  int `json:"womenMeetingAttendance"`
	MiddleSchoolChats       int `json:"middleSchoolChats"`
	HighSchoolChatAttendance int `json:"highSchoolChatAttendance"`
	GeneralChatAttendance   int `json:"generalChatAttendance"`
}

// StockTotals sums standing counts over the latest report per
// neighborhood only, so one neighborhood never counts twice.
type StockTotals struct {
	ManagementTotal         int `json:"managementTotal"`
	MiddleSchoolStudents    int `json:"middleSchoolStudents"`
	HighSchoolTotal         int `json:"highSchoolTotal"`
	HighSchoolReadingGroups int `json:"highSchoolReadingGroups"`
}

// MapMarker is a scored neighborhood pin for the district map.
type MapMarker struct {
	UserID           string  `json:"userId"`
	NeighborhoodName string  `json:"neighborhoodName"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Score            int     `json:"score"`
	Tier             Tier    `json:"tier"`
	HasReport        bool    `json:"hasReport"`
}
