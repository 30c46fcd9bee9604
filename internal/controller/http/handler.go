package http

import (
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/auth"
	"github.com/Vengatesh521/student-teacher-booking/internal/service"
)

// Handler bundles the services behind the HTTP and WebSocket surface.
type Handler struct {
	identity     *service.IdentityService
	directory    *service.DirectoryService
	appointments *service.AppointmentService
	messages     *service.MessageService
	jwt          *auth.JWTService
	logger       *zap.Logger
}

func NewHandler(
	identity *service.IdentityService,
	directory *service.DirectoryService,
	appointments *service.AppointmentService,
	messages *service.MessageService,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		identity:     identity,
		directory:    directory,
		appointments: appointments,
		messages:     messages,
		jwt:          jwtService,
		logger:       logger,
	}
}
