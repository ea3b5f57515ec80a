package profileapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/sellerprofile/internal/domain"
)

const (
	profilePath = "/profile"
	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 1 << 20

	MsgNetworkTimeout = "Network timeout"
	MsgUnreachable    = "Profile service unreachable"
	MsgInvalidPayload = "Invalid profile data received"
)

// HTTPGateway fetches profiles from the remote profile API over HTTP.
type HTTPGateway struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPGateway creates a gateway for the API rooted at baseURL. A nil client
// falls back to http.DefaultClient; a non-positive timeout disables the
// per-call deadline.
func NewHTTPGateway(baseURL string, timeout time.Duration, client *http.Client) *HTTPGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  client,
	}
}

// errorBody is the shape of a failed profile API response.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FetchProfile calls GET {baseURL}/profile with the token as a bearer
// credential. Every failure is a *domain.ProfileError.
func (g *HTTPGateway) FetchProfile(ctx context.Context, token string) (*domain.Profile, error) {
	if token == "" {
		return nil, domain.ErrNoToken
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+profilePath, nil)
	if err != nil {
		return nil, domain.NewProfileError(domain.KindGeneric, "Failed to build profile request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("profile API returned an error status", "status", resp.StatusCode, "request_id", requestID)
		return nil, statusError(resp.StatusCode, body)
	}

	profile, err := decodeProfile(body)
	if err != nil {
		slog.Warn("profile API returned an unusable payload", "request_id", requestID, "error", err)
		return nil, domain.NewProfileError(domain.KindGeneric, MsgInvalidPayload, err)
	}
	if err := profile.Validate(); err != nil {
		slog.Warn("profile API returned questionable fields", "request_id", requestID, "error", err)
	}
	return profile, nil
}

// statusError classifies a non-2xx response. 401 and 403 are decided by status
// alone; for anything else a message in the body wins over the bare status.
func statusError(status int, body []byte) *domain.ProfileError {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return domain.StatusError(status)
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if msg := strings.TrimSpace(eb.Message); msg != "" {
			return domain.ClassifyMessage(msg)
		}
		if msg := strings.TrimSpace(eb.Error); msg != "" {
			return domain.ClassifyMessage(msg)
		}
	}
	return domain.StatusError(status)
}

// decodeProfile accepts either a bare profile object or one wrapped in a
// {"data": ...} envelope.
func decodeProfile(body []byte) (*domain.Profile, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	raw := json.RawMessage(body)
	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		raw = envelope.Data
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

func transportError(err error) *domain.ProfileError {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domain.NewProfileError(domain.KindGeneric, MsgNetworkTimeout, err)
	default:
		return domain.NewProfileError(domain.KindUnavailable, MsgUnreachable, err)
	}
}
