package view

import "github.com/nfrund/sellerprofile/internal/domain"

// Fallback texts shown when the profile API leaves a field empty.
const (
	FallbackFullName    = "User"
	FallbackEmail       = "No email provided"
	FallbackTitle       = "CEO"
	FallbackCompanyName = "Not provided"
)

// DefaultAvatarURL is the image shown for every seller.
const DefaultAvatarURL = "/static/avatar.svg"

// Data is a View Model (DTO) used specifically for the profile panel.
// Fallbacks are already applied, so the template renders fields as-is.
// Phone, website and location are part of the profile but are not displayed.
type Data struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	AvatarURL   string `json:"avatarUrl"`
}

// FromProfile maps a domain profile to the view model.
func FromProfile(p *domain.Profile) Data {
	if p == nil {
		p = &domain.Profile{}
	}
	return Data{
		ID:          p.ID,
		FullName:    fallback(p.FullName, FallbackFullName),
		Title:       fallback(p.Title, FallbackTitle),
		Email:       fallback(p.Email, FallbackEmail),
		CompanyName: fallback(p.CompanyName, FallbackCompanyName),
		AvatarURL:   DefaultAvatarURL,
	}
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
