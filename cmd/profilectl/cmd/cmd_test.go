package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func profileServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p-1","fullName":"Jane Doe","email":"jane@x.com"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := profileServer(t)

	t.Run("table output applies fallbacks", func(t *testing.T) {
		out, _, err := runCLI(t, "fetch", "--token", "good", "--api", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, out, "Full Name")
		assert.Contains(t, out, "Jane Doe")
		assert.Contains(t, out, "Company Name  Not provided")
		assert.Contains(t, out, "CEO")
	})

	t.Run("json output", func(t *testing.T) {
		out, _, err := runCLI(t, "fetch", "--token", "good", "--api", srv.URL, "--json")
		require.NoError(t, err)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Jane Doe", got["fullName"])
		assert.Equal(t, "Not provided", got["companyName"])
	})

	t.Run("expired token reports an auth failure", func(t *testing.T) {
		_, errOut, err := runCLI(t, "fetch", "--token", "stale", "--api", srv.URL)
		require.Error(t, err)
		assert.Contains(t, errOut, "error [auth_expired]: Authentication expired")
		assert.Contains(t, errOut, "sign in again")
	})

	t.Run("missing token", func(t *testing.T) {
		_, errOut, err := runCLI(t, "fetch", "--token", "", "--api", srv.URL)
		require.Error(t, err)
		assert.Contains(t, errOut, "No authentication token found")
	})
}

func TestTopicsAndVersion(t *testing.T) {
	out, _, err := runCLI(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "profile.viewed")
	assert.Contains(t, out, "session.logged_out")

	_, _, err = runCLI(t, "topics", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")

	out, _, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "profilectl v0.1.0\n", out)
}
