// Package routepath stores canonical HTTP paths for the web application.
package routepath

import "net/url"

const (
	Root           = "/"
	Health         = "/health"
	Static         = "/static"
	AuthLogin      = "/auth/login"
	AuthLogout     = "/auth/logout"
	AppPrefix      = "/app"
	AppProfile     = "/app/profile"
	ProfileContent = "/app/profile/content"
)

// Login error indicators carried in the error query parameter.
const (
	LoginErrorNoToken    = "no_token"
	LoginErrorAuthFailed = "auth_failed"
)

// LoginWithError returns the login path annotated with an error indicator.
func LoginWithError(code string) string {
	if code == "" {
		return AuthLogin
	}
	return AuthLogin + "?" + url.Values{"error": {code}}.Encode()
}
