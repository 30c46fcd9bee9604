package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, role, username, name, email, password_hash, department, subject, approved, created_at`

// scanProfile builds a Profile from a row, attaching the role variant.
func scanProfile(row pgx.Row) (*model.Profile, error) {
	var (
		p          model.Profile
		department string
		subject    string
		approved   bool
	)
	err := row.Scan(
		&p.ID,
		&p.Role,
		&p.Username,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&department,
		&subject,
		&approved,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch p.Role {
	case model.RoleTeacher:
		p.Teacher = &model.TeacherInfo{Department: department, Subject: subject}
	case model.RoleStudent:
		p.Student = &model.StudentInfo{Department: department, Approved: approved}
	}

	return &p, nil
}

// variantFields flattens the role variant back into the stored columns.
func variantFields(p *model.Profile) (department, subject string, approved bool) {
	switch {
	case p.Teacher != nil:
		return p.Teacher.Department, p.Teacher.Subject, false
	case p.Student != nil:
		return p.Student.Department, "", p.Student.Approved
	}
	return "", "", false
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (id, role, username, name, email, password_hash, department, subject, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	department, subject, approved := variantFields(profile)

	err := r.pool.QueryRow(
		ctx, query,
		profile.ID,
		profile.Role,
		profile.Username,
		profile.Name,
		profile.Email,
		profile.PasswordHash,
		department,
		subject,
		approved,
	).Scan(&profile.CreatedAt)

	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

// GetByID fetches a profile by principal id
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}

	return profile, nil
}

// GetByEmail fetches a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by email: %w", err)
	}

	return profile, nil
}

// ListByRole returns all profiles with the given role, oldest first.
func (r *ProfileRepository) ListByRole(ctx context.Context, role model.Role) ([]*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list profiles by role: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// ListPendingStudents returns students still waiting for admin approval.
func (r *ProfileRepository) ListPendingStudents(ctx context.Context) ([]*model.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE role = 'student' AND approved = false
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending students: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Update rewrites the mutable profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	query := `
		UPDATE profiles
		SET username = $1, name = $2, email = $3, department = $4, subject = $5, approved = $6
		WHERE id = $7
	`

	department, subject, approved := variantFields(profile)

	result, err := r.pool.Exec(
		ctx, query,
		profile.Username,
		profile.Name,
		profile.Email,
		department,
		subject,
		approved,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}

	return nil
}

// Delete removes a profile (admin override for teacher accounts)
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}

	return nil
}
