package reports

import (
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed inserts three demo reports if the table is empty: two approved
// neighborhoods and one pending, spread over the last two days so the
// weekly window picks all of them up.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&WeeklyReport{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Weekly reports already seeded, skipping")
		return
	}

	now := time.Now().UnixMilli()
	emptyTasks := datatypes.JSON([]byte("{}"))

	seedReports := []WeeklyReport{
		{
			ID: "r1", UserID: "u1", NeighborhoodName: "50. Yıl Mahallesi",
			Date: "12 Ocak 2025", Timestamp: now - 86400000, Status: StatusApproved,
			CompletedTasks:     emptyTasks,
			IsWomenMeetingHeld: true, WomenMeetingAttendance: 15, WomenTeaTalkCount: 2, YoungWomenWork: 5,
			IsManagementMeetingHeld: true, IsSupervisorAttended: true,
			ManagementTotalCount: 12, ManagementAttendanceCount: 10,
			MiddleSchoolGroupCount: 3, MiddleSchoolStudentCount: 25,
			HighSchoolTotalCount: 2, HighSchoolPresidentCount: 2, HighSchoolStaffCount: 5,
			HighSchoolMeetingAttendance: 8, HighSchoolReadingGroupCount: 1,
			HighSchoolReadingStudentCount: 5, HighSchoolChatAttendance: 10,
			GeneralChatAttendance: 30, WomenChatAttendance: 15,
		},
		{
			ID: "r2", UserID: "u6", NeighborhoodName: "Cebeci Mahallesi",
			Date: "12 Ocak 2025", Timestamp: now - 90000000, Status: StatusPending,
			CompletedTasks:          emptyTasks,
			IsManagementMeetingHeld: true,
			ManagementTotalCount:    8, ManagementAttendanceCount: 5,
			MiddleSchoolGroupCount: 1, MiddleSchoolStudentCount: 8,
			HighSchoolTotalCount:  1,
			GeneralChatAttendance: 12,
		},
		{
			ID: "r3", UserID: "u2", NeighborhoodName: "Uğur Mumcu Mahallesi",
			Date: "11 Ocak 2025", Timestamp: now - 170000000, Status: StatusApproved,
			CompletedTasks:     emptyTasks,
			IsWomenMeetingHeld: true, WomenMeetingAttendance: 8, WomenTeaTalkCount: 1, YoungWomenWork: 2,
			IsManagementMeetingHeld: true, IsSupervisorAttended: true,
			ManagementTotalCount: 10, ManagementAttendanceCount: 7,
			MiddleSchoolGroupCount: 2, MiddleSchoolStudentCount: 12,
			HighSchoolTotalCount: 1, HighSchoolPresidentCount: 1, HighSchoolStaffCount: 3,
			HighSchoolMeetingAttendance: 5, HighSchoolReadingGroupCount: 1,
			HighSchoolReadingStudentCount: 4, HighSchoolChatAttendance: 6,
			GeneralChatAttendance: 20, WomenChatAttendance: 8,
		},
	}

	if err := db.Create(&seedReports).Error; err != nil {
		log.Printf("❌ Failed to seed weekly reports: %v", err)
		return
	}
	log.Printf("✅ Seeded %d weekly reports", len(seedReports))
}
