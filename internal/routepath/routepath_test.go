package routepath

import "testing"

func TestLoginWithError(t *testing.T) {
	tests := map[string]string{
		"":                   "/auth/login",
		LoginErrorNoToken:    "/auth/login?error=no_token",
		LoginErrorAuthFailed: "/auth/login?error=auth_failed",
	}
	for code, want := range tests {
		if got := LoginWithError(code); got != want {
			t.Errorf("LoginWithError(%q) = %q, want %q", code, got, want)
		}
	}
}
