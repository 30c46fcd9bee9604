package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

// AppointmentService owns the appointment lifecycle: creation by students,
// scheduling and status transitions by teachers, and the live per-role views.
type AppointmentService struct {
	apptRepo    AppointmentRepository
	profileRepo ProfileRepository
	broker      *realtime.Broker
	logger      *zap.Logger
}

func NewAppointmentService(
	apptRepo AppointmentRepository,
	profileRepo ProfileRepository,
	broker *realtime.Broker,
	logger *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		apptRepo:    apptRepo,
		profileRepo: profileRepo,
		broker:      broker,
		logger:      logger,
	}
}

// Create books a new appointment. The student and teacher display fields are
// snapshotted into the record at creation time and never re-joined later, so
// appointment tables keep showing what the profiles looked like when the
// booking was made.
func (s *AppointmentService) Create(ctx context.Context, studentID, teacherID, purpose string) (*model.Appointment, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, NewValidationError("purpose", "purpose is required")
	}

	student, err := s.profileRepo.GetByID(ctx, studentID)
	if err != nil || student == nil || !student.IsStudent() {
		return nil, NewValidationError("student", "missing student information")
	}

	teacher, err := s.profileRepo.GetByID(ctx, teacherID)
	if err != nil || teacher == nil || !teacher.IsTeacher() {
		return nil, NewValidationError("teacher", "missing teacher information")
	}

	appt := &model.Appointment{
		ID: uuid.NewString(),
		Student: model.ParticipantRef{
			ID:       student.ID,
			Username: student.Username,
			Email:    student.Email,
		},
		Teacher: model.TeacherRef{
			ID:       teacher.ID,
			Username: teacher.Username,
			Email:    teacher.Email,
			Subject:  teacher.Teacher.Subject,
		},
		Purpose: purpose,
		Status:  model.AppointmentStatusPending,
	}

	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.broker.Publish(realtime.TopicAppointments)

	s.logger.Info("Appointment booked",
		zap.String("appointment_id", appt.ID),
		zap.String("student_id", studentID),
		zap.String("teacher_id", teacherID),
	)

	return appt, nil
}

// Schedule sets the appointment's date-time. Only the appointment's teacher
// may call it. A non-empty value is required; rescheduling an already
// scheduled appointment is allowed (the UI just stops offering the action
// once a date is set).
func (s *AppointmentService) Schedule(ctx context.Context, appointmentID, teacherID, dateTime string) error {
	dateTime = strings.TrimSpace(dateTime)
	if dateTime == "" {
		return NewValidationError("date_time", "please select a date and time")
	}

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return ErrNotFound
	}
	if appt.Teacher.ID != teacherID {
		return ErrPermission
	}

	if err := s.apptRepo.UpdateSchedule(ctx, appointmentID, dateTime); err != nil {
		return fmt.Errorf("schedule appointment: %w", err)
	}

	s.broker.Publish(realtime.TopicAppointments)

	s.logger.Info("Appointment scheduled",
		zap.String("appointment_id", appointmentID),
		zap.String("teacher_id", teacherID),
		zap.String("date_time", dateTime),
	)

	return nil
}

// SetStatus applies approved or cancelled. There is no precondition on the
// prior status: re-applying the same status is a no-op in effect, and a
// teacher may re-approve a cancelled appointment by acting again. Last
// writer wins on concurrent calls.
func (s *AppointmentService) SetStatus(ctx context.Context, appointmentID, teacherID string, status model.AppointmentStatus) error {
	if status != model.AppointmentStatusApproved && status != model.AppointmentStatusCancelled {
		return NewValidationError("status", "status must be approved or cancelled")
	}

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return ErrNotFound
	}
	if appt.Teacher.ID != teacherID {
		return ErrPermission
	}

	if err := s.apptRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}

	s.broker.Publish(realtime.TopicAppointments)

	s.logger.Info("Appointment status updated",
		zap.String("appointment_id", appointmentID),
		zap.String("teacher_id", teacherID),
		zap.String("status", string(status)),
	)

	return nil
}

// ListByStudent returns the student's appointments.
func (s *AppointmentService) ListByStudent(ctx context.Context, studentID string) ([]*model.Appointment, error) {
	return s.apptRepo.ListByStudent(ctx, studentID)
}

// ListByTeacher returns the teacher's appointments.
func (s *AppointmentService) ListByTeacher(ctx context.Context, teacherID string) ([]*model.Appointment, error) {
	return s.apptRepo.ListByTeacher(ctx, teacherID)
}

// ListAll returns every appointment (admin view).
func (s *AppointmentService) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	return s.apptRepo.ListAll(ctx)
}

// WatchByStudent delivers the student's appointments as live snapshots.
func (s *AppointmentService) WatchByStudent(ctx context.Context, studentID string) *realtime.Subscription[[]*model.Appointment] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicAppointments,
		func(ctx context.Context) ([]*model.Appointment, error) {
			return s.ListByStudent(ctx, studentID)
		})
}

// WatchByTeacher delivers the teacher's appointments as live snapshots.
func (s *AppointmentService) WatchByTeacher(ctx context.Context, teacherID string) *realtime.Subscription[[]*model.Appointment] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicAppointments,
		func(ctx context.Context) ([]*model.Appointment, error) {
			return s.ListByTeacher(ctx, teacherID)
		})
}

// WatchAll delivers every appointment as live snapshots (admin view).
func (s *AppointmentService) WatchAll(ctx context.Context) *realtime.Subscription[[]*model.Appointment] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicAppointments,
		func(ctx context.Context) ([]*model.Appointment, error) {
			return s.ListAll(ctx)
		})
}
