package registry

import "github.com/nfrund/sellerprofile/internal/domain"

// Service keys shared between modules. Using constants prevents typos.
const (
	ProfileGatewayKey Key[domain.ProfileGateway] = "profile.gateway"
)
