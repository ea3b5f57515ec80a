package profileapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nfrund/sellerprofile/internal/domain"
	"github.com/nfrund/sellerprofile/internal/modules/profile/view"
	"github.com/nfrund/sellerprofile/internal/profileapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, handler http.HandlerFunc) *profileapi.HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return profileapi.NewHTTPGateway(srv.URL+"/", time.Second, srv.Client())
}

func requireProfileError(t *testing.T, err error) *domain.ProfileError {
	t.Helper()
	require.Error(t, err)
	pe := domain.AsProfileError(err)
	require.NotNil(t, pe)
	return pe
}

func TestHTTPGateway_FetchProfile(t *testing.T) {
	t.Run("decodes a bare profile and sends the credential", func(t *testing.T) {
		var gotAuth, gotRequestID, gotPath string
		gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"p-1","fullName":"Jane Doe","email":"jane@x.com","companyName":"Acme"}`))
		})

		profile, err := gw.FetchProfile(context.Background(), "tok-123")
		require.NoError(t, err)

		assert.Equal(t, "Bearer tok-123", gotAuth)
		assert.Equal(t, "/profile", gotPath)
		assert.Len(t, gotRequestID, 36, "request id should be a UUID")
		assert.Equal(t, "Jane Doe", profile.FullName)
		assert.Equal(t, "jane@x.com", profile.Email)
		assert.Equal(t, "Acme", profile.CompanyName)
	})

	t.Run("unwraps a data envelope", func(t *testing.T) {
		gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"p-2","fullName":"Sam Seller","title":"Founder"}}`))
		})

		profile, err := gw.FetchProfile(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "p-2", profile.ID)
		assert.Equal(t, "Founder", profile.Title)
	})

	t.Run("missing token never reaches the API", func(t *testing.T) {
		var calls atomic.Int32
		gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})

		_, err := gw.FetchProfile(context.Background(), "")
		pe := requireProfileError(t, err)
		assert.Equal(t, domain.KindNoToken, pe.Kind)
		assert.Equal(t, "No authentication token found", pe.Message)
		assert.Zero(t, calls.Load())
	})

	statusCases := []struct {
		name    string
		status  int
		body    string
		kind    domain.ErrorKind
		message string
	}{
		{"401 is an expired session", http.StatusUnauthorized, `{"message":"Unauthorized"}`, domain.KindAuthExpired, "Authentication expired"},
		{"403 is forbidden", http.StatusForbidden, ``, domain.KindForbidden, "Failed to fetch profile: 403"},
		{"body message is classified", http.StatusBadRequest, `{"message":"Authentication expired"}`, domain.KindAuthExpired, "Authentication expired"},
		{"error field is used when message is absent", http.StatusBadGateway, `{"error":"upstream down"}`, domain.KindGeneric, "upstream down"},
		{"bare status", http.StatusInternalServerError, `oops`, domain.KindGeneric, "Failed to fetch profile: 500"},
	}
	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := gw.FetchProfile(context.Background(), "tok")
			pe := requireProfileError(t, err)
			assert.Equal(t, tc.kind, pe.Kind)
			assert.Equal(t, tc.message, pe.Message)
		})
	}

	t.Run("malformed payload", func(t *testing.T) {
		gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"fullName":`))
		})

		_, err := gw.FetchProfile(context.Background(), "tok")
		pe := requireProfileError(t, err)
		assert.Equal(t, domain.KindGeneric, pe.Kind)
		assert.Equal(t, profileapi.MsgInvalidPayload, pe.Message)
	})

	sparseCases := []struct {
		name     string
		body     string
		fullName string
		email    string
	}{
		{"profile without an id loads", `{"fullName":"Jane Doe","email":"jane@x.com"}`, "Jane Doe", "jane@x.com"},
		{"profile without a name falls back to User", `{"id":"p-1","email":"jane@x.com"}`, view.FallbackFullName, "jane@x.com"},
		{"malformed email is still shown", `{"id":"p-1","fullName":"Jane Doe","email":"jane at x"}`, "Jane Doe", "jane at x"},
		{"empty object falls back everywhere", `{}`, view.FallbackFullName, view.FallbackEmail},
	}
	for _, tc := range sparseCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})

			profile, err := gw.FetchProfile(context.Background(), "tok")
			require.NoError(t, err)
			data := view.FromProfile(profile)
			assert.Equal(t, tc.fullName, data.FullName)
			assert.Equal(t, tc.email, data.Email)
		})
	}

	t.Run("cancelled caller reads as a network timeout", func(t *testing.T) {
		gw := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"p-1"}`))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gw.FetchProfile(ctx, "tok")
		pe := requireProfileError(t, err)
		assert.Equal(t, domain.KindGeneric, pe.Kind)
		assert.Equal(t, profileapi.MsgNetworkTimeout, pe.Message)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("slow API times out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		t.Cleanup(srv.Close)
		gw := profileapi.NewHTTPGateway(srv.URL, 20*time.Millisecond, srv.Client())

		_, err := gw.FetchProfile(context.Background(), "tok")
		pe := requireProfileError(t, err)
		assert.Equal(t, "Network timeout", pe.Message)
		assert.False(t, domain.IsAuthFailure(err))
	})

	t.Run("unreachable API", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()
		gw := profileapi.NewHTTPGateway(url, time.Second, nil)

		_, err := gw.FetchProfile(context.Background(), "tok")
		pe := requireProfileError(t, err)
		assert.Equal(t, domain.KindUnavailable, pe.Kind)
	})
}

func TestNew(t *testing.T) {
	gw := profileapi.New("", time.Second)
	assert.False(t, profileapi.Healthy(gw))

	_, err := gw.FetchProfile(context.Background(), "tok")
	pe := requireProfileError(t, err)
	assert.Equal(t, domain.KindUnavailable, pe.Kind)
	assert.Equal(t, profileapi.MsgNotConfigured, pe.Message)

	assert.True(t, profileapi.Healthy(profileapi.New("http://localhost:9999", time.Second)))
	assert.False(t, profileapi.Healthy(nil))
}
