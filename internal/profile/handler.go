package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

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

// Get returns the session user's neighborhood profile.
func (h *Handler) Get(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	p, err := h.service.Get(user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetByUser lets district staff inspect any neighborhood's profile.
func (h *Handler) GetByUser(c *gin.Context) {
	p, err := h.service.Get(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Save replaces the session user's profile.
func (h *Handler) Save(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var input SaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Save(user.UID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
