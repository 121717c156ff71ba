package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sultangaziagd/agdsgazi/config"
	"github.com/sultangaziagd/agdsgazi/database"
	"github.com/sultangaziagd/agdsgazi/internal/auditlog"
	"github.com/sultangaziagd/agdsgazi/internal/auth"
	"github.com/sultangaziagd/agdsgazi/internal/kasif"
	"github.com/sultangaziagd/agdsgazi/internal/notification"
	"github.com/sultangaziagd/agdsgazi/internal/profile"
	"github.com/sultangaziagd/agdsgazi/internal/reports"
	"github.com/sultangaziagd/agdsgazi/internal/school"
	"github.com/sultangaziagd/agdsgazi/internal/tasks"
	"github.com/sultangaziagd/agdsgazi/internal/womens"
	"github.com/sultangaziagd/agdsgazi/routes"
	"github.com/sultangaziagd/agdsgazi/utils"
)

// @title AGD Sultangazi İlçe Portalı API
// @version 1.0
// @description Haftalık mahalle faaliyet raporları, ilçe özetleri ve birim takipleri.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	if err := utils.InitRedis(); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	utils.InitializeKafka()

	log.Println("🔄 Initializing Firebase...")
	if err := utils.InitFirebase(); err != nil {
		log.Printf("⚠️ Firebase initialization failed: %v", err)
		log.Println("ℹ️ Continuing without Firebase (push notifications disabled)")
	} else if utils.IsFCMEnabled() {
		log.Println("✅ Firebase and FCM initialized")
	} else {
		log.Println("⚠️ Firebase initialized but FCM client unavailable")
	}

	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.AppUser{},
		&reports.WeeklyReport{},
		&womens.Report{},
		&notification.Notification{},
		&tasks.MonthlyTask{},
		&tasks.Completion{},
		&school.School{},
		&school.SchoolLog{},
		&school.President{},
		&school.PresidentWeeklyLog{},
		&kasif.Group{},
		&kasif.GroupLog{},
		&profile.NeighborhoodProfile{},
		&auditlog.Entry{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Seed the demo district.
	auth.Seed(db, cfg)
	reports.Seed(db)
	womens.Seed(db)
	tasks.Seed(db)
	school.Seed(db)
	kasif.Seed(db)

	// Drain the broadcast topic when a broker is configured. The
	// consumer mails the full roster, so it needs the account service.
	roster := auth.NewService(auth.NewRepository(db), cfg)
	go notification.StartKafkaConsumer(context.Background(), roster)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("🚀 Listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
