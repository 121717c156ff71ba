package school

import (
	"log"

	"gorm.io/gorm"
)

func f64(v float64) *float64 { return &v }

// Seed inserts the district's seven schools and three active student
// presidents.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&School{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Schools already seeded, skipping")
		return
	}

	seedSchools := []School{
		{ID: "s1", SchoolName: "Sultangazi MTAL", Neighborhood: "50. Yıl", StudentCapacity: 1200, PresidentName: "Ahmet Yılmaz", PresidentPhone: "05551112233", Lat: f64(41.1125), Lng: f64(28.8660)},
		{ID: "s2", SchoolName: "Cumhuriyet Anadolu", Neighborhood: "Cumhuriyet", StudentCapacity: 900, Lat: f64(41.1035), Lng: f64(28.8760)},
		{ID: "s3", SchoolName: "Atatürk Lisesi", Neighborhood: "Cebeci", StudentCapacity: 1500, PresidentName: "Mehmet Demir", PresidentPhone: "05554445566", Lat: f64(41.1155), Lng: f64(28.8810)},
		{ID: "s4", SchoolName: "Mimar Sinan İHL", Neighborhood: "Uğur Mumcu", StudentCapacity: 600, Lat: f64(41.1100), Lng: f64(28.8700)},
		{ID: "s5", SchoolName: "Nene Hatun Kız İHL", Neighborhood: "İsmetpaşa", StudentCapacity: 800, PresidentName: "Ayşe Kaya", PresidentPhone: "05559998877", Lat: f64(41.1010), Lng: f64(28.8610)},
		{ID: "s6", SchoolName: "Habipler Anadolu", Neighborhood: "Habipler", StudentCapacity: 750, Lat: f64(41.1260), Lng: f64(28.8410)},
		{ID: "s7", SchoolName: "Veysel Sacıhan İHL", Neighborhood: "Yayla", StudentCapacity: 500, Lat: f64(41.1310), Lng: f64(28.8510)},
	}

	if err := db.Create(&seedSchools).Error; err != nil {
		log.Printf("❌ Failed to seed schools: %v", err)
		return
	}

	seedPresidents := []President{
		{ID: "p1", FullName: "Ahmet Yılmaz", SchoolID: "s1", SchoolName: "Sultangazi MTAL", PhoneNumber: "05551234567", Grade: 11, IsActive: true, StartDate: "2024-09-01"},
		{ID: "p2", FullName: "Mehmet Demir", SchoolID: "s3", SchoolName: "Atatürk Lisesi", PhoneNumber: "05559876543", Grade: 12, IsActive: true, StartDate: "2023-09-01", SuccessorName: "Ali Veli"},
		{ID: "p3", FullName: "Ayşe Kaya", SchoolID: "s5", SchoolName: "Nene Hatun Kız İHL", PhoneNumber: "05551112222", Grade: 10, IsActive: true, StartDate: "2025-01-01"},
	}

	if err := db.Create(&seedPresidents).Error; err != nil {
		log.Printf("❌ Failed to seed presidents: %v", err)
		return
	}

	log.Printf("✅ Seeded %d schools and %d presidents", len(seedSchools), len(seedPresidents))
}
