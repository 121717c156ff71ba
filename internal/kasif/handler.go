package kasif

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func (h *Handler) CreateGroup(c *gin.Context) {
	var input GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.CreateGroup(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, group)
}

// ListGroups serves the district dashboard, optionally filtered to
// one neighborhood.
func (h *Handler) ListGroups(c *gin.Context) {
	neighborhoodID := c.Query("neighborhoodId")

	var (
		statuses []GroupStatus
		err      error
	)
	if neighborhoodID != "" {
		statuses, err = h.service.ListByNeighborhood(neighborhoodID)
	} else {
		statuses, err = h.service.ListGroupStatuses()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// ListAlarms returns only groups past the meeting deadline.
func (h *Handler) ListAlarms(c *gin.Context) {
	statuses, err := h.service.ListAlarmed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *Handler) SaveLog(c *gin.Context) {
	var input LogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.service.SaveLog(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *Handler) ListLogs(c *gin.Context) {
	logs, err := h.service.ListLogs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
