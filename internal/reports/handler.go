package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
	"github.com/sultangaziagd/agdsgazi/internal/auditlog"
)

type Handler struct {
	service  Service
	exporter Exporter
	audit    auditlog.Service
}

func NewHandler(s Service, e Exporter, a auditlog.Service) *Handler {
	return &Handler{service: s, exporter: e, audit: a}
}

func sessionUser(c *gin.Context) (auth.AppUser, bool) {
	val, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return auth.AppUser{}, false
	}
	user, ok := val.(auth.AppUser)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return auth.AppUser{}, false
	}
	return user, true
}

// Submit godoc
// @Summary Haftalık rapor gönder
// @Tags reports
// @Accept json
// @Produce json
// @Success 201 {object} WeeklyReport
// @Router /reports [post]
func (h *Handler) Submit(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.Submit(user, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// List returns the session user's visible reports, newest first.
func (h *Handler) List(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	reports, err := h.service.ListForUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) Get(c *gin.Context) {
	report, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Approve marks a pending report approved and records who did it.
func (h *Handler) Approve(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	report, err := h.service.Approve(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyApproved):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.audit.Log(c, user.UID, "report_approved", map[string]interface{}{
		"reportId":     report.ID,
		"neighborhood": report.NeighborhoodName,
	})

	c.JSON(http.StatusOK, report)
}

// Summary godoc
// @Summary İlçe özeti
// @Tags reports
// @Produce json
// @Param window query string false "week | month | all"
// @Success 200 {object} DistrictSummary
// @Router /reports/district/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	window := ParseWindow(c.Query("window"))

	summary, err := h.service.Summary(window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Map returns scored neighborhood markers for the district map.
func (h *Handler) Map(c *gin.Context) {
	window := ParseWindow(c.Query("window"))

	markers, err := h.service.MapMarkers(window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, markers)
}

// ExportPDF renders one report as the official weekly PDF.
func (h *Handler) ExportPDF(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	report, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, filename, mimeType, err := h.exporter.ExportReport(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.audit.Log(c, user.UID, "report_exported", map[string]interface{}{
		"reportId": report.ID,
		"format":   "pdf",
	})

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mimeType, data)
}

// ExportSummary streams the district summary as xlsx or csv.
func (h *Handler) ExportSummary(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	window := ParseWindow(c.Query("window"))
	format := c.DefaultQuery("format", "xlsx")

	summary, err := h.service.Summary(window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, filename, mimeType, err := h.exporter.ExportSummary(summary, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.audit.Log(c, user.UID, "summary_exported", map[string]interface{}{
		"window": window,
		"format": format,
	})

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mimeType, data)
}
