package womens

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Seed inserts one approved and one pending demo report for the
// 50. Yıl women's representative.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&Report{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Womens reports already seeded, skipping")
		return
	}

	now := time.Now().UnixMilli()
	seedReports := []Report{
		{
			ID: "wr1", UserID: "w1", NeighborhoodName: "50. Yıl Hanımlar",
			Date: "14 Ocak 2025", Timestamp: now - 86400000, Status: StatusApproved,
			AdminNote:          "Tebrikler",
			WeeklyBoardMeeting: true, Attendance: 12,
			HomeChatsCount: 2, HighSchoolGirlsContact: 5, MiddleSchoolGirlsGroups: 1, UniversityUnitContact: 3,
			Visitations: 1, CharityWork: true,
			Notes: "Güzel bir hafta geçti.",
		},
		{
			ID: "wr2", UserID: "w1", NeighborhoodName: "50. Yıl Hanımlar",
			Date: "21 Ocak 2025", Timestamp: now, Status: StatusPending,
			WeeklyBoardMeeting: true, Attendance: 14,
			HomeChatsCount: 3, HighSchoolGirlsContact: 7, MiddleSchoolGirlsGroups: 2, UniversityUnitContact: 1,
			Visitations: 2,
		},
	}

	if err := db.Create(&seedReports).Error; err != nil {
		log.Printf("❌ Failed to seed womens reports: %v", err)
		return
	}
	log.Printf("✅ Seeded %d womens reports", len(seedReports))
}
