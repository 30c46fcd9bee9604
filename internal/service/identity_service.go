package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/auth"
	"github.com/Vengatesh521/student-teacher-booking/internal/cache"
	"github.com/Vengatesh521/student-teacher-booking/internal/model"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IdentityService maps authenticated principals to profiles and owns the
// registration and account-management flows.
type IdentityService struct {
	profileRepo ProfileRepository
	cache       *cache.ProfileCache
	broker      *realtime.Broker
	logger      *zap.Logger
}

func NewIdentityService(
	profileRepo ProfileRepository,
	profileCache *cache.ProfileCache,
	broker *realtime.Broker,
	logger *zap.Logger,
) *IdentityService {
	return &IdentityService{
		profileRepo: profileRepo,
		cache:       profileCache,
		broker:      broker,
		logger:      logger,
	}
}

// Resolve fetches the profile for a principal. A nil result without error
// means the principal is not fully registered yet; callers render a neutral
// empty state instead of failing.
func (s *IdentityService) Resolve(ctx context.Context, principalID string) (*model.Profile, error) {
	if profile := s.cache.Get(ctx, principalID); profile != nil {
		return profile, nil
	}

	profile, err := s.profileRepo.GetByID(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	s.cache.Set(ctx, profile)

	return profile, nil
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Username        string `json:"username"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	Department      string `json:"department"`
	Subject         string `json:"subject"`
}

func (in *RegisterInput) validate() error {
	if in.Username == "" || in.Name == "" || in.Email == "" ||
		in.Password == "" || in.ConfirmPassword == "" || in.Role == "" {
		return NewValidationError("", "all fields are required")
	}
	if !emailRegex.MatchString(in.Email) {
		return NewValidationError("email", "invalid email address")
	}
	if len(in.Password) < 6 {
		return NewValidationError("password", "password must be at least 6 characters")
	}
	if in.Password != in.ConfirmPassword {
		return NewValidationError("confirm_password", "passwords do not match")
	}

	role := model.Role(in.Role)
	if !role.IsValid() {
		return NewValidationError("role", "unknown role")
	}
	switch role {
	case model.RoleStudent:
		if in.Department == "" {
			return NewValidationError("department", "department is required")
		}
	case model.RoleTeacher:
		if in.Department == "" {
			return NewValidationError("department", "department is required")
		}
		if in.Subject == "" {
			return NewValidationError("subject", "subject is required")
		}
	}

	return nil
}

// Register creates an account and its profile. Students start unapproved and
// show up on the admin approval tab until an admin clears them.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*model.Profile, error) {
	// Emails are stored lowercased; normalize before the duplicate check so a
	// case variant of an existing address fails inline, not on the unique
	// constraint.
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}
	if existing != nil {
		return nil, NewValidationError("email", "an account with this email already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &model.Profile{
		ID:           uuid.NewString(),
		Role:         model.Role(in.Role),
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	switch profile.Role {
	case model.RoleTeacher:
		profile.Teacher = &model.TeacherInfo{Department: in.Department, Subject: in.Subject}
	case model.RoleStudent:
		profile.Student = &model.StudentInfo{Department: in.Department, Approved: false}
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.broker.Publish(realtime.TopicProfiles)

	s.logger.Info("New profile registered",
		zap.String("profile_id", profile.ID),
		zap.String("role", string(profile.Role)),
		zap.String("email", profile.Email),
	)

	return profile, nil
}

// Authenticate verifies credentials and returns the matching profile.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*model.Profile, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("", "all fields are required")
	}

	profile, err := s.profileRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("get profile by email: %w", err)
	}

	if profile == nil || !auth.CheckPassword(password, profile.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return profile, nil
}

// ApproveStudent flips the student's approval flag (admin action).
func (s *IdentityService) ApproveStudent(ctx context.Context, studentID string) error {
	profile, err := s.profileRepo.GetByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("get student: %w", err)
	}
	if profile == nil || !profile.IsStudent() {
		return ErrNotFound
	}

	profile.Student.Approved = true
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return fmt.Errorf("approve student: %w", err)
	}

	s.cache.Invalidate(ctx, studentID)
	s.broker.Publish(realtime.TopicProfiles)

	s.logger.Info("Student approved", zap.String("student_id", studentID))

	return nil
}

// UpdateTeacher rewrites a teacher's display name and email (admin action).
func (s *IdentityService) UpdateTeacher(ctx context.Context, teacherID, username, email string) error {
	if username == "" || email == "" {
		return NewValidationError("", "name and email are required")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("email", "invalid email address")
	}

	profile, err := s.profileRepo.GetByID(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("get teacher: %w", err)
	}
	if profile == nil || !profile.IsTeacher() {
		return ErrNotFound
	}

	profile.Username = username
	profile.Email = strings.ToLower(email)
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}

	s.cache.Invalidate(ctx, teacherID)
	s.broker.Publish(realtime.TopicProfiles)

	s.logger.Info("Teacher updated", zap.String("teacher_id", teacherID))

	return nil
}

// DeleteTeacher removes a teacher account (admin override; profiles are
// otherwise never deleted).
func (s *IdentityService) DeleteTeacher(ctx context.Context, teacherID string) error {
	profile, err := s.profileRepo.GetByID(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("get teacher: %w", err)
	}
	if profile == nil || !profile.IsTeacher() {
		return ErrNotFound
	}

	if err := s.profileRepo.Delete(ctx, teacherID); err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}

	s.cache.Invalidate(ctx, teacherID)
	s.broker.Publish(realtime.TopicProfiles)

	s.logger.Info("Teacher deleted", zap.String("teacher_id", teacherID))

	return nil
}
