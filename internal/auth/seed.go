package auth

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/config"
)

func f64(v float64) *float64 { return &v }

// seedUsers is the district roster. Neighborhood accounts carry map
// coordinates around the Sultangazi center (41.1068, 28.8700).
var seedUsers = []AppUser{
	{UID: "u1", Name: "50. Yıl Mahallesi", Email: "50yil@agd.com", Role: RoleUser, Lat: f64(41.1120), Lng: f64(28.8650)},
	{UID: "u2", Name: "Uğur Mumcu Mahallesi", Email: "ugurmumcu@agd.com", Role: RoleUser, Lat: f64(41.1085), Lng: f64(28.8730)},
	{UID: "u3", Name: "Sultançiftliği Mahallesi", Email: "sultanciftligi@agd.com", Role: RoleUser, Lat: f64(41.1060), Lng: f64(28.8680)},
	{UID: "u4", Name: "İsmetpaşa Mahallesi", Email: "ismetpasa@agd.com", Role: RoleUser, Lat: f64(41.1010), Lng: f64(28.8610)},
	{UID: "u5", Name: "Malkoçoğlu Mahallesi", Email: "malkocoglu@agd.com", Role: RoleUser, Lat: f64(41.1180), Lng: f64(28.8550)},
	{UID: "u6", Name: "Cebeci Mahallesi", Email: "cebeci@agd.com", Role: RoleUser, Lat: f64(41.1150), Lng: f64(28.8800)},
	{UID: "u7", Name: "Esentepe Mahallesi", Email: "esentepe@agd.com", Role: RoleUser, Lat: f64(41.1030), Lng: f64(28.8750)},
	{UID: "u8", Name: "75. Yıl Mahallesi", Email: "75yil@agd.com", Role: RoleUser, Lat: f64(41.1100), Lng: f64(28.8950)},
	{UID: "u9", Name: "Habipler Mahallesi", Email: "habipler@agd.com", Role: RoleUser, Lat: f64(41.1250), Lng: f64(28.8400)},
	{UID: "u10", Name: "Yayla Mahallesi", Email: "yayla@agd.com", Role: RoleUser, Lat: f64(41.1300), Lng: f64(28.8500)},
	{UID: "u11", Name: "Cumhuriyet Mahallesi", Email: "cumhuriyet@agd.com", Role: RoleUser, Lat: f64(41.1050), Lng: f64(28.8600)},

	{UID: "a1", Name: "İlçe Yönetimi", Email: "admin@agd.com", Role: RoleAdmin},
	{UID: "t1", Name: "Teşkilat Başkanı", Email: "teskilat@agd.com", Role: RoleOrganizationPresident},
	{UID: "l1", Name: "İlçe Liseler Bşk.", Email: "liseler@agd.com", Role: RoleDistrictHighSchoolAdmin},
	{UID: "o1", Name: "İlçe Ortaokullar Bşk.", Email: "ortaokul@agd.com", Role: RoleDistrictMiddleSchoolAdmin},

	{UID: "p1", Name: "Ahmet Yılmaz (Bşk)", Email: "ahmet@okul.com", Role: RoleSchoolPresident},
	{UID: "w1", Name: "50. Yıl Hanımlar", Email: "50yil.hanim@agd.com", Role: RoleNeighborhoodWomensRep},
	{UID: "wd1", Name: "İlçe Hanımlar Bşk.", Email: "ilce.hanim@agd.com", Role: RoleDistrictWomensPresident},
}

// Seed inserts the district roster if the user table is empty. Every
// seeded account shares the configured bootstrap password.
func Seed(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&AppUser{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Users already seeded, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash seed password: %v", err)
		return
	}

	for i := range seedUsers {
		seedUsers[i].PasswordHash = string(hash)
	}

	if err := db.Create(&seedUsers).Error; err != nil {
		log.Printf("❌ Failed to seed users: %v", err)
		return
	}
	log.Printf("✅ Seeded %d users", len(seedUsers))
}
