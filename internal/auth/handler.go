package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// Login
// ===============================

type loginReq struct {
	Email    string `json:"email" binding:"required,email" example:"elli.bakkal@agdsgazi.org"`
	Password string `json:"password" binding:"required" example:"sultangazi2025"`
}

// Login godoc
// @Summary Giriş
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginReq true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tokens, user, err := h.service.Login(LoginInput(req))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	userPayload := gin.H{
		"uid":   user.UID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
	if user.Lat != nil {
		userPayload["lat"] = *user.Lat
	}
	if user.Lng != nil {
		userPayload["lng"] = *user.Lng
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user":         userPayload,
		"initialView":  InitialViewForRole(user.Role),
	})
}

// ===============================
// Refresh
// ===============================

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": access})
}

// ===============================
// Views
// ===============================

// Views returns the screens the session user may navigate to plus
// the screen shown after login.
func (h *Handler) Views(c *gin.Context) {
	val, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	user := val.(AppUser)

	c.JSON(http.StatusOK, gin.H{
		"initialView":  InitialViewForRole(user.Role),
		"allowedViews": AllowedViewsForRole(user.Role),
	})
}

// ===============================
// Password reset
// ===============================

type forgotReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RequestPasswordReset(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şifre sıfırlama bağlantısı gönderildi"})
}

type resetReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.ResetPassword(req.Token, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şifre güncellendi"})
}

func (h *Handler) Logout(c *gin.Context) {
	_ = h.service.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Çıkış yapıldı"})
}
