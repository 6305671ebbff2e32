package domain

import "context"

// UserProfile is the joined read model for profile retrieval: the user's
// identity fields plus the optional profile fields. A user whose profile
// row is missing still resolves, with the optional fields nil.
type UserProfile struct {
	Name    string
	Email   string
	Address *string
	Phone   *string
	Bio     *string
}

// ProfileRepository defines read operations on user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
}
