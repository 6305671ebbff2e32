package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tmarkov/authhub/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using PostgreSQL.
type ProfileRepository struct {
	db *sql.DB
}

// GetByUserID fetches the joined user and profile record. The LEFT JOIN
// keeps a user resolvable even if its profile row is missing.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{}
	err := r.db.QueryRowContext(ctx,
		`SELECT u.name, u.email, p.address, p.phone, p.bio
		 FROM users u
		 LEFT JOIN user_profiles p ON p.user_id = u.id
		 WHERE u.id = $1`, userID,
	).Scan(&profile.Name, &profile.Email, &profile.Address, &profile.Phone, &profile.Bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile by user id: %w", err)
	}
	return profile, nil
}
