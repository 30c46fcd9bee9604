package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

// In-memory repositories standing in for the pgx ones.

type memProfileRepo struct {
	profiles []*model.Profile
}

func (r *memProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	profile.CreatedAt = time.Now()
	r.profiles = append(r.profiles, profile)
	return nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id string) (*model.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProfileRepo) GetByEmail(_ context.Context, email string) (*model.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProfileRepo) ListByRole(_ context.Context, role model.Role) ([]*model.Profile, error) {
	var out []*model.Profile
	for _, p := range r.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProfileRepo) ListPendingStudents(_ context.Context) ([]*model.Profile, error) {
	var out []*model.Profile
	for _, p := range r.profiles {
		if p.IsStudent() && !p.Student.Approved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	for i, p := range r.profiles {
		if p.ID == profile.ID {
			r.profiles[i] = profile
			return nil
		}
	}
	return fmt.Errorf("profile not found")
}

func (r *memProfileRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.profiles {
		if p.ID == id {
			r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("profile not found")
}

type memAppointmentRepo struct {
	appts []*model.Appointment
}

func (r *memAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	appt.CreatedAt = time.Now()
	r.appts = append(r.appts, appt)
	return nil
}

func (r *memAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	for _, a := range r.appts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAppointmentRepo) ListByStudent(_ context.Context, studentID string) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range r.appts {
		if a.Student.ID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByTeacher(_ context.Context, teacherID string) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range r.appts {
		if a.Teacher.ID == teacherID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) ListAll(_ context.Context) ([]*model.Appointment, error) {
	return r.appts, nil
}

func (r *memAppointmentRepo) UpdateSchedule(_ context.Context, id, dateTime string) error {
	for _, a := range r.appts {
		if a.ID == id {
			a.ScheduledAt = dateTime
			return nil
		}
	}
	return fmt.Errorf("appointment not found")
}

func (r *memAppointmentRepo) UpdateStatus(_ context.Context, id string, status model.AppointmentStatus) error {
	for _, a := range r.appts {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return fmt.Errorf("appointment not found")
}

type memMessageRepo struct {
	msgs []*model.Message
	now  time.Time
}

func (r *memMessageRepo) Create(_ context.Context, msg *model.Message) error {
	// Strictly increasing timestamps so ordering is deterministic.
	if r.now.IsZero() {
		r.now = time.Now()
	}
	r.now = r.now.Add(time.Millisecond)
	msg.CreatedAt = r.now
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *memMessageRepo) ListByParticipant(_ context.Context, userID string) ([]*model.Message, error) {
	var out []*model.Message
	for _, m := range r.msgs {
		if m.Participants[0] == userID || m.Participants[1] == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Fixture helpers.

func newStudent(t *testing.T, repo *memProfileRepo, username, email string) *model.Profile {
	t.Helper()
	p := &model.Profile{
		ID:       uuid.NewString(),
		Role:     model.RoleStudent,
		Username: username,
		Name:     username,
		Email:    email,
		Student:  &model.StudentInfo{Department: "Science", Approved: true},
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create student: %v", err)
	}
	return p
}

func newTeacher(t *testing.T, repo *memProfileRepo, username, email, subject string) *model.Profile {
	t.Helper()
	p := &model.Profile{
		ID:       uuid.NewString(),
		Role:     model.RoleTeacher,
		Username: username,
		Name:     username,
		Email:    email,
		Teacher:  &model.TeacherInfo{Department: "Science", Subject: subject},
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	return p
}

// waitSnapshot receives the next snapshot from a live subscription or fails
// the test after a timeout.
func waitSnapshot[T any](t *testing.T, sub *realtime.Subscription[T]) T {
	t.Helper()
	select {
	case snapshot, ok := <-sub.Updates():
		if !ok {
			t.Fatal("subscription closed before a snapshot arrived")
		}
		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		panic("unreachable")
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
