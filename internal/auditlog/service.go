package auditlog

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sultangaziagd/agdsgazi/middleware"
)

type Service interface {
	// Log records an action; failures are logged and swallowed so an
	// audit outage never blocks the action itself.
	Log(c *gin.Context, userID, action string, details map[string]interface{})
	ListRecent(limit int) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) Log(c *gin.Context, userID, action string, details map[string]interface{}) {
	raw, err := json.Marshal(details)
	if err != nil {
		log.Printf("⚠️ Audit details marshal failed for %s: %v", action, err)
		raw = []byte("{}")
	}

	entry := Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		IPAddress: middleware.GetIPFromContext(c),
		Details:   datatypes.JSON(raw),
		Timestamp: time.Now().UnixMilli(),
	}

	if err := s.repo.Create(&entry); err != nil {
		log.Printf("⚠️ Audit write failed for %s: %v", action, err)
	}
}

func (s *service) ListRecent(limit int) ([]Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.ListRecent(limit)
}

// Handler exposes the audit trail to district admins.
type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func (h *Handler) ListRecent(c *gin.Context) {
	entries, err := h.service.ListRecent(100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
