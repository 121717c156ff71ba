package kasif

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Seed inserts four demo groups. Esentepe last met twenty days ago so
// the dashboard has one red alarm to show.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&Group{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Kaşif groups already seeded, skipping")
		return
	}

	now := time.Now().UnixMilli()
	daysAgo := func(d int64) *int64 {
		ts := now - d*24*int64(time.Hour/time.Millisecond)
		return &ts
	}

	seedGroups := []Group{
		{ID: "k1", NeighborhoodID: "u1", NeighborhoodName: "50. Yıl Mahallesi", GroupName: "Fetih Grubu", GuideName: "Ali Veli", ActiveStudentCount: 12, LastMeetingDate: daysAgo(3)},
		{ID: "k2", NeighborhoodID: "u1", NeighborhoodName: "50. Yıl Mahallesi", GroupName: "Yıldızlar", GuideName: "Hasan Hüseyin", ActiveStudentCount: 8, LastMeetingDate: daysAgo(5)},
		{ID: "k3", NeighborhoodID: "u6", NeighborhoodName: "Cebeci Mahallesi", GroupName: "Cebeci Gençlik", GuideName: "Osman Nur", ActiveStudentCount: 10, LastMeetingDate: daysAgo(2)},
		{ID: "k4", NeighborhoodID: "u7", NeighborhoodName: "Esentepe Mahallesi", GroupName: "Genç Kaşifler", GuideName: "Murat Can", ActiveStudentCount: 15, LastMeetingDate: daysAgo(20)},
	}

	if err := db.Create(&seedGroups).Error; err != nil {
		log.Printf("❌ Failed to seed kaşif groups: %v", err)
		return
	}
	log.Printf("✅ Seeded %d kaşif groups", len(seedGroups))
}
