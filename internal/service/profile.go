package service

import (
	"context"
	"fmt"

	"github.com/tmarkov/authhub/internal/domain"
)

// ProfileService handles profile retrieval for authenticated users.
type ProfileService struct {
	profiles domain.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles domain.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get fetches the joined user and profile record for the given subject id.
// A missing profile row is tolerated: the user fields come back with the
// optional fields nil.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}
