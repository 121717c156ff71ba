package routes

import (
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
	"github.com/sultangaziagd/agdsgazi/middleware"

	_ "github.com/sultangaziagd/agdsgazi/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)

		authGroup.GET("/views", middleware.AuthMiddleware(cfg, authSvc), authHandler.Views)
		authGroup.POST("/logout", middleware.AuthMiddleware(cfg, authSvc), authHandler.Logout)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	// ========== Weekly Reports ==========
	reportRepo := reports.NewRepository(database.DB)
	reportSvc := reports.NewService(reportRepo, authSvc)
	reportHandler := reports.NewHandler(reportSvc, reports.NewExporter(), auditSvc)

	reportGroup := protected.Group("/reports")
	{
		reportGroup.POST("", middleware.RBACMiddleware(auth.RoleUser), reportHandler.Submit)
		reportGroup.GET("", reportHandler.List)
		reportGroup.GET("/:id", reportHandler.Get)
		reportGroup.GET("/:id/pdf", reportHandler.ExportPDF)
		reportGroup.PATCH("/:id/approve",
			middleware.RBACMiddleware(auth.RoleAdmin, auth.RoleOrganizationPresident),
			reportHandler.Approve)
	}

	districtGroup := protected.Group("/district")
	districtViewers := middleware.RBACMiddleware(
		auth.RoleAdmin, auth.RoleOrganizationPresident, auth.RoleDistrictMiddleSchoolAdmin)
	{
		districtGroup.GET("/summary", districtViewers, reportHandler.Summary)
		districtGroup.GET("/map",
			middleware.RBACMiddleware(auth.RoleAdmin, auth.RoleOrganizationPresident),
			reportHandler.Map)
		districtGroup.GET("/export", districtViewers, reportHandler.ExportSummary)
	}

	// ========== Notifications ==========
	notifyRepo := notification.NewRepository(database.DB)
	notifySvc := notification.NewService(notifyRepo, authSvc)
	notifyHandler := notification.NewHandler(notifySvc)

	notifyGroup := protected.Group("/notifications")
	{
		notifyGroup.GET("", notifyHandler.List)
		notifyGroup.POST("",
			middleware.RBACMiddleware(auth.RoleAdmin, auth.RoleOrganizationPresident, auth.RoleDistrictWomensPresident),
			notifyHandler.Broadcast)
	}

	// ========== Womens Commission ==========
	womensRepo := womens.NewRepository(database.DB)
	womensSvc := womens.NewService(womensRepo, notifySvc)
	womensHandler := womens.NewHandler(womensSvc, auditSvc)

	womensGroup := protected.Group("/womens-reports")
	{
		womensGroup.POST("", middleware.RBACMiddleware(auth.RoleNeighborhoodWomensRep), womensHandler.Submit)
		womensGroup.GET("", womensHandler.List)
		womensGroup.PATCH("/:id/approve",
			middleware.RBACMiddleware(auth.RoleDistrictWomensPresident, auth.RoleAdmin),
			womensHandler.Approve)
	}

	// ========== Monthly Tasks ==========
	taskRepo := tasks.NewRepository(database.DB)
	taskSvc := tasks.NewService(taskRepo)
	taskHandler := tasks.NewHandler(taskSvc)

	taskGroup := protected.Group("/tasks")
	{
		taskGroup.GET("", taskHandler.ListTasks)
		taskGroup.POST("", middleware.RBACMiddleware(auth.RoleAdmin), taskHandler.CreateTask)
		taskGroup.PUT("/:id/completion", middleware.RBACMiddleware(auth.RoleUser), taskHandler.SaveCompletion)
		taskGroup.GET("/progress", taskHandler.Progress)
	}

	// ========== Schools & Presidents ==========
	schoolRepo := school.NewRepository(database.DB)
	schoolSvc := school.NewService(schoolRepo)
	schoolHandler := school.NewHandler(schoolSvc)

	highSchoolAdmins := middleware.RBACMiddleware(auth.RoleDistrictHighSchoolAdmin, auth.RoleAdmin)
	schoolGroup := protected.Group("/schools", highSchoolAdmins)
	{
		schoolGroup.GET("", schoolHandler.ListSchools)
		schoolGroup.POST("", schoolHandler.CreateSchool)
		schoolGroup.GET("/:id", schoolHandler.GetSchool)
		schoolGroup.PUT("/:id", schoolHandler.UpdateSchool)
		schoolGroup.GET("/:id/logs", schoolHandler.ListSchoolLogs)
		schoolGroup.POST("/:id/logs", schoolHandler.AddSchoolLog)
	}

	presidentGroup := protected.Group("/presidents", highSchoolAdmins)
	{
		presidentGroup.GET("", schoolHandler.ListPresidents)
		presidentGroup.POST("", schoolHandler.CreatePresident)
		presidentGroup.GET("/:id", schoolHandler.GetPresident)
		presidentGroup.POST("/:id/logs", schoolHandler.AddPresidentLog)
	}

	// ========== Kaşif Groups ==========
	kasifRepo := kasif.NewRepository(database.DB)
	kasifSvc := kasif.NewService(kasifRepo)
	kasifHandler := kasif.NewHandler(kasifSvc)

	kasifAdmins := middleware.RBACMiddleware(
		auth.RoleDistrictMiddleSchoolAdmin, auth.RoleAdmin, auth.RoleUser)
	kasifGroup := protected.Group("/kasif-groups", kasifAdmins)
	{
		kasifGroup.GET("", kasifHandler.ListGroups)
		kasifGroup.POST("", kasifHandler.CreateGroup)
		kasifGroup.GET("/alarms", kasifHandler.ListAlarms)
		kasifGroup.GET("/:id/logs", kasifHandler.ListLogs)
		kasifGroup.POST("/:id/logs", kasifHandler.SaveLog)
	}

	// ========== Neighborhood Profiles ==========
	profileRepo := profile.NewRepository(database.DB)
	profileSvc := profile.NewService(profileRepo, authSvc)
	profileHandler := profile.NewHandler(profileSvc)

	profileGroup := protected.Group("/profile")
	{
		profileGroup.GET("", profileHandler.Get)
		profileGroup.PUT("", middleware.RBACMiddleware(auth.RoleUser), profileHandler.Save)
		profileGroup.GET("/:userId",
			middleware.RBACMiddleware(auth.RoleAdmin, auth.RoleOrganizationPresident),
			profileHandler.GetByUser)
	}

	// ========== Audit Trail ==========
	protected.GET("/audit-logs", middleware.RBACMiddleware(auth.RoleAdmin), auditHandler.ListRecent)
}
