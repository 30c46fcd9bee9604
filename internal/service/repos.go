package service

import (
	"context"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

// Storage contracts the services run on. The pgx repositories in
// internal/repository are the production implementations; tests plug in
// in-memory fakes.

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	ListByRole(ctx context.Context, role model.Role) ([]*model.Profile, error)
	ListPendingStudents(ctx context.Context) ([]*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	Delete(ctx context.Context, id string) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	ListByStudent(ctx context.Context, studentID string) ([]*model.Appointment, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*model.Appointment, error)
	ListAll(ctx context.Context) ([]*model.Appointment, error)
	UpdateSchedule(ctx context.Context, id, dateTime string) error
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByParticipant(ctx context.Context, userID string) ([]*model.Message, error)
}
