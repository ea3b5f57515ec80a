package profileapi

import (
	"context"
	"time"

	"github.com/nfrund/sellerprofile/internal/domain"
)

// MsgNotConfigured is reported when no profile API URL is configured.
const MsgNotConfigured = "Profile service is not configured"

// unavailableGateway answers every fetch with KindUnavailable so the page can
// still render its error view when the API URL is missing.
type unavailableGateway struct{}

func (unavailableGateway) FetchProfile(context.Context, string) (*domain.Profile, error) {
	return nil, domain.NewProfileError(domain.KindUnavailable, MsgNotConfigured, nil)
}

// New returns the HTTP gateway for baseURL, or the unavailable gateway when
// baseURL is empty.
func New(baseURL string, timeout time.Duration) domain.ProfileGateway {
	if baseURL == "" {
		return unavailableGateway{}
	}
	return NewHTTPGateway(baseURL, timeout, nil)
}

// Healthy reports whether g is backed by a configured API.
func Healthy(g domain.ProfileGateway) bool {
	if g == nil {
		return false
	}
	_, unavailable := g.(unavailableGateway)
	return !unavailable
}
