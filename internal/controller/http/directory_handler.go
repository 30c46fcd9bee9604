package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vengatesh521/student-teacher-booking/internal/service"
)

// ListTeachers handles GET /api/teachers?q=. The q filter is the same
// case-insensitive substring match the dashboard search box applies.
func (h *Handler) ListTeachers(c *gin.Context) {
	teachers, err := h.directory.ListTeachers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if q := c.Query("q"); q != "" {
		teachers = service.Filter(teachers, q)
	}

	c.JSON(http.StatusOK, gin.H{"teachers": teachers})
}
