package tasks

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

// CreateTask assigns a new monthly task to the district.
func (h *Handler) CreateTask(c *gin.Context) {
	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.CreateTask(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.service.ListTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

type completionReq struct {
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

// SaveCompletion records the session user's state on one task.
func (h *Handler) SaveCompletion(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req completionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion, err := h.service.SaveCompletion(user.UID, c.Param("id"), req.Completed, req.Note)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, completion)
}

// Progress returns the session user's completion for a month.
func (h *Handler) Progress(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter required"})
		return
	}

	progress, err := h.service.ProgressFor(user.UID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}
