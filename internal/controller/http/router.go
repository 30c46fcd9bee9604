package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

// SetupRoutes registers every route of the portal.
func SetupRoutes(r *gin.Engine, h *Handler) {
	// Public routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	// Everything below requires an authenticated principal with a profile.
	api := r.Group("/api")
	api.Use(h.AuthRequired())
	{
		api.GET("/me", h.Me)
		api.GET("/teachers", h.ListTeachers)
		api.GET("/appointments", h.ListAppointments)

		api.POST("/messages", h.SendMessage)
		api.GET("/messages/:peerID", h.GetConversation)
		api.GET("/inbox", h.GetInbox)

		student := api.Group("/")
		student.Use(h.RequireRole(model.RoleStudent))
		{
			student.POST("/appointments", h.CreateAppointment)
		}

		teacher := api.Group("/appointments/:id")
		teacher.Use(h.RequireRole(model.RoleTeacher))
		{
			teacher.PUT("/schedule", h.ScheduleAppointment)
			teacher.PUT("/status", h.SetAppointmentStatus)
		}

		admin := api.Group("/admin")
		admin.Use(h.RequireRole(model.RoleAdmin))
		{
			admin.GET("/appointments", h.ListAllAppointments)
			admin.GET("/students/pending", h.ListPendingStudents)
			admin.PUT("/students/:id/approve", h.ApproveStudent)
			admin.PUT("/teachers/:id", h.UpdateTeacher)
			admin.DELETE("/teachers/:id", h.DeleteTeacher)
		}
	}

	// Live views over WebSocket; the token travels as a query parameter.
	ws := r.Group("/ws")
	ws.Use(h.AuthRequired())
	{
		ws.GET("/appointments", h.WatchAppointments)
		ws.GET("/messages/:peerID", h.WatchMessages)
		ws.GET("/inbox", h.WatchInbox)
		ws.GET("/teachers", h.WatchTeachers)
	}
}
