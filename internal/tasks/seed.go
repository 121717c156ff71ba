package tasks

import (
	"log"

	"gorm.io/gorm"
)

// Seed inserts the two demo tasks for Aralık 2025.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&MonthlyTask{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Monthly tasks already seeded, skipping")
		return
	}

	seedTasks := []MonthlyTask{
		{
			ID:             "t1",
			Title:          "Mekke'nin Fethi Programı",
			Description:    "Her mahalle en az 1 otobüs kaldıracak.",
			TargetMonth:    "Aralık 2025",
			IsRequired:     true,
			TargetAudience: AudienceAll,
		},
		{
			ID:             "t2",
			Title:          "Kış Okulları Kayıt",
			Description:    "Ortaokul kış okulları için okullara afiş asılacak.",
			TargetMonth:    "Aralık 2025",
			IsRequired:     false,
			TargetAudience: AudienceAll,
		},
	}

	if err := db.Create(&seedTasks).Error; err != nil {
		log.Printf("❌ Failed to seed monthly tasks: %v", err)
		return
	}
	log.Printf("✅ Seeded %d monthly tasks", len(seedTasks))
}
