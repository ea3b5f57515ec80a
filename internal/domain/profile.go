package domain

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// Profile is the seller's displayable identity and company record, as returned
// by the profile API. It is a read-only snapshot: fetched once per page visit
// and never written back.
type Profile struct {
	ID          string `json:"id,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Title       string `json:"title,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Validate checks the profile against its struct tags. Every field is
// optional and rendered with a fallback when empty, so a failure here is
// advisory: callers log it and still display the profile.
func (p *Profile) Validate() error {
	if err := validatorInstance.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// ProfileGateway retrieves the profile of the seller that owns the given
// credential token. Failures are reported as *ProfileError.
type ProfileGateway interface {
	FetchProfile(ctx context.Context, token string) (*Profile, error)
}
