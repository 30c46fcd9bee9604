package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAllAppointments handles GET /api/admin/appointments.
func (h *Handler) ListAllAppointments(c *gin.Context) {
	appts, err := h.appointments.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListPendingStudents handles GET /api/admin/students/pending.
func (h *Handler) ListPendingStudents(c *gin.Context) {
	students, err := h.directory.ListPendingStudents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}

// ApproveStudent handles PUT /api/admin/students/:id/approve.
func (h *Handler) ApproveStudent(c *gin.Context) {
	if err := h.identity.ApproveStudent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

type updateTeacherRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateTeacher handles PUT /api/admin/teachers/:id.
func (h *Handler) UpdateTeacher(c *gin.Context) {
	var in updateTeacherRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.identity.UpdateTeacher(c.Request.Context(), c.Param("id"), in.Username, in.Email); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteTeacher handles DELETE /api/admin/teachers/:id.
func (h *Handler) DeleteTeacher(c *gin.Context) {
	if err := h.identity.DeleteTeacher(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
