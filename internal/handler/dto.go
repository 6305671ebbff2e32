package handler

import "github.com/tmarkov/authhub/internal/domain"

// ProfileDTO is the JSON representation of a joined user and profile
// record. Absent profile fields serialize as null.
type ProfileDTO struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Bio     *string `json:"bio"`
}

func toProfileDTO(p *domain.UserProfile) ProfileDTO {
	return ProfileDTO{
		Name:    p.Name,
		Email:   p.Email,
		Address: p.Address,
		Phone:   p.Phone,
		Bio:     p.Bio,
	}
}
