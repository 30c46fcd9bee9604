package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

type createAppointmentRequest struct {
	TeacherID string `json:"teacher_id"`
	Purpose   string `json:"purpose"`
}

// CreateAppointment handles POST /api/appointments (students only).
func (h *Handler) CreateAppointment(c *gin.Context) {
	var in createAppointmentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	student := currentProfile(c)
	appt, err := h.appointments.Create(c.Request.Context(), student.ID, in.TeacherID, in.Purpose)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// ListAppointments handles GET /api/appointments. Students see their own
// bookings, teachers the requests addressed to them, admins everything.
func (h *Handler) ListAppointments(c *gin.Context) {
	profile := currentProfile(c)

	var (
		appts []*model.Appointment
		err   error
	)
	switch {
	case profile.IsAdmin():
		appts, err = h.appointments.ListAll(c.Request.Context())
	case profile.IsTeacher():
		appts, err = h.appointments.ListByTeacher(c.Request.Context(), profile.ID)
	default:
		appts, err = h.appointments.ListByStudent(c.Request.Context(), profile.ID)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

type scheduleRequest struct {
	DateTime string `json:"date_time"`
}

// ScheduleAppointment handles PUT /api/appointments/:id/schedule (teachers
// only).
func (h *Handler) ScheduleAppointment(c *gin.Context) {
	var in scheduleRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	teacher := currentProfile(c)
	if err := h.appointments.Schedule(c.Request.Context(), c.Param("id"), teacher.ID, in.DateTime); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "scheduled"})
}

type statusRequest struct {
	Status model.AppointmentStatus `json:"status"`
}

// SetAppointmentStatus handles PUT /api/appointments/:id/status (teachers
// only).
func (h *Handler) SetAppointmentStatus(c *gin.Context) {
	var in statusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	teacher := currentProfile(c)
	if err := h.appointments.SetStatus(c.Request.Context(), c.Param("id"), teacher.ID, in.Status); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(in.Status)})
}
