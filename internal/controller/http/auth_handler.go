package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vengatesh521/student-teacher-booking/internal/service"
)

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.identity.Register(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.identity.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.jwt.GenerateToken(profile)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

// Me handles GET /api/me: the identity-resolver endpoint the dashboards load
// first.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": currentProfile(c)})
}
