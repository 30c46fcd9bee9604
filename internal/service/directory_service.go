package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

// DirectoryService lists profiles for browsing: the teacher directory
// students search through, and the pending-student queue admins work off.
type DirectoryService struct {
	profileRepo ProfileRepository
	broker      *realtime.Broker
	logger      *zap.Logger
}

func NewDirectoryService(profileRepo ProfileRepository, broker *realtime.Broker, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		profileRepo: profileRepo,
		broker:      broker,
		logger:      logger,
	}
}

// ListTeachers returns all teacher profiles.
func (s *DirectoryService) ListTeachers(ctx context.Context) ([]*model.Profile, error) {
	return s.profileRepo.ListByRole(ctx, model.RoleTeacher)
}

// WatchTeachers is the live variant of ListTeachers.
func (s *DirectoryService) WatchTeachers(ctx context.Context) *realtime.Subscription[[]*model.Profile] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicProfiles,
		func(ctx context.Context) ([]*model.Profile, error) {
			return s.ListTeachers(ctx)
		})
}

// ListPendingStudents returns students awaiting admin approval.
func (s *DirectoryService) ListPendingStudents(ctx context.Context) ([]*model.Profile, error) {
	return s.profileRepo.ListPendingStudents(ctx)
}

// WatchPendingStudents is the live variant of ListPendingStudents.
func (s *DirectoryService) WatchPendingStudents(ctx context.Context) *realtime.Subscription[[]*model.Profile] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicProfiles,
		func(ctx context.Context) ([]*model.Profile, error) {
			return s.ListPendingStudents(ctx)
		})
}

// Filter narrows a profile list to entries whose display name, full name or
// email contains the substring, case-insensitively. Pure and synchronous; it
// is recomputed on every keystroke, which is fine at directory volumes.
func Filter(profiles []*model.Profile, substring string) []*model.Profile {
	needle := strings.ToLower(strings.TrimSpace(substring))
	if needle == "" {
		return profiles
	}

	var filtered []*model.Profile
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.DisplayName()), needle) ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Email), needle) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
