package womens

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sultangaziagd/agdsgazi/internal/auditlog"
	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

type Handler struct {
	service Service
	audit   auditlog.Service
}

func NewHandler(s Service, a auditlog.Service) *Handler {
	return &Handler{service: s, audit: a}
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

type approveReq struct {
	AdminNote string `json:"adminNote"`
}

func (h *Handler) Approve(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	// The district note is optional, so an empty body is fine.
	var req approveReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	report, err := h.service.Approve(c.Param("id"), req.AdminNote, user.Name)
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

	h.audit.Log(c, user.UID, "womens_report_approved", map[string]interface{}{
		"reportId":     report.ID,
		"neighborhood": report.NeighborhoodName,
	})

	c.JSON(http.StatusOK, report)
}
