package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

type broadcastReq struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Broadcast sends a notification to the whole district roster.
func (h *Handler) Broadcast(c *gin.Context) {
	val, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	user := val.(auth.AppUser)

	var req broadcastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.service.Broadcast(req.Title, req.Message, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, n)
}

// List returns the feed newest first.
func (h *Handler) List(c *gin.Context) {
	notifications, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}
