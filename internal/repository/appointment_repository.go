package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `id, student_id, student_username, student_email,
		teacher_id, teacher_username, teacher_email, teacher_subject,
		purpose, status, scheduled_at, created_at`

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.Student.ID,
		&a.Student.Username,
		&a.Student.Email,
		&a.Teacher.ID,
		&a.Teacher.Username,
		&a.Teacher.Email,
		&a.Teacher.Subject,
		&a.Purpose,
		&a.Status,
		&a.ScheduledAt,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new appointment
func (r *AppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, student_id, student_username, student_email,
			teacher_id, teacher_username, teacher_email, teacher_subject,
			purpose, status, scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		appt.ID,
		appt.Student.ID,
		appt.Student.Username,
		appt.Student.Email,
		appt.Teacher.ID,
		appt.Teacher.Username,
		appt.Teacher.Email,
		appt.Teacher.Subject,
		appt.Purpose,
		appt.Status,
		appt.ScheduledAt,
	).Scan(&appt.CreatedAt)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

// GetByID fetches an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appt, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return appt, nil
}

// ListByStudent returns all appointments created by the student, newest first.
// The filter runs on the embedded snapshot id.
func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID string) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE student_id = $1 ORDER BY created_at DESC`

	return r.list(ctx, query, studentID)
}

// ListByTeacher returns all appointments addressed to the teacher, newest first.
func (r *AppointmentRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE teacher_id = $1 ORDER BY created_at DESC`

	return r.list(ctx, query, teacherID)
}

// ListAll returns every appointment (admin view), newest first.
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*model.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appts []*model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appts = append(appts, appt)
	}

	return appts, nil
}

// UpdateSchedule sets the scheduled date-time (last writer wins)
func (r *AppointmentRepository) UpdateSchedule(ctx context.Context, id, dateTime string) error {
	result, err := r.pool.Exec(ctx, `UPDATE appointments SET scheduled_at = $1 WHERE id = $2`, dateTime, id)
	if err != nil {
		return fmt.Errorf("update appointment schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found")
	}

	return nil
}

// UpdateStatus sets the appointment status (last writer wins)
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	result, err := r.pool.Exec(ctx, `UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found")
	}

	return nil
}
