package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"   // waiting for the teacher
	AppointmentStatusApproved  AppointmentStatus = "approved"  // confirmed by the teacher
	AppointmentStatusCancelled AppointmentStatus = "cancelled" // cancelled by the teacher
)

// ParticipantRef is a snapshot of a student's display fields embedded in an
// appointment at creation time. It is not kept in sync with later profile
// edits.
type ParticipantRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TeacherRef is the teacher-side snapshot, including the subject shown in
// appointment tables.
type TeacherRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
}

// Appointment is a booking request from a student to a teacher. Created by
// the student; scheduled and status-transitioned only by the teacher; never
// deleted.
type Appointment struct {
	ID        string            `json:"id"`
	Student   ParticipantRef    `json:"student"`
	Teacher   TeacherRef        `json:"teacher"`
	Purpose   string            `json:"purpose"`
	Status    AppointmentStatus `json:"status"`
	// ScheduledAt holds the datetime-local value picked by the teacher,
	// verbatim. Empty string = not scheduled yet.
	ScheduledAt string    `json:"date_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsScheduled checks if a date-time has been set
func (a *Appointment) IsScheduled() bool {
	return a.ScheduledAt != ""
}

// IsPending checks if the appointment is still waiting for the teacher
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
