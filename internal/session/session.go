package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// AuthCookieName is the cookie holding the credential token issued by the
	// auth service.
	AuthCookieName = "auth_token"
	// Name is the gorilla session that holds per-visitor navigation state.
	Name = "seller-session"

	keyReturnTo = "return_to"
	contextKey  = "session"
)

// Session is the visitor's authentication state for one request. It is loaded
// once by middleware and handed explicitly to whoever needs it.
type Session struct {
	Token string
}

// Authenticated reports whether a credential token is present. The token is
// opaque here; the profile API decides whether it is still valid.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store reads and clears the credential and the session state that goes with it.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the credential token from the request.
func (s *Store) Load(c echo.Context) Session {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return Session{}
	}
	return Session{Token: cookie.Value}
}

// SetToken stores the credential token in the auth cookie.
func (s *Store) SetToken(c echo.Context, token string) {
	setAuthCookie(c, token)
}

// Clear expires the auth cookie and wipes the session values.
func (s *Store) Clear(c echo.Context) error {
	setAuthCookie(c, "")

	sess, err := session.Get(Name, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// RememberReturnTo records the path to come back to after signing in.
func (s *Store) RememberReturnTo(c echo.Context, path string) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Values[keyReturnTo] = path
	return sess.Save(c.Request(), c.Response())
}

// ReturnTo returns the path recorded by RememberReturnTo, if any.
func (s *Store) ReturnTo(c echo.Context) string {
	sess, err := session.Get(Name, c)
	if err != nil {
		return ""
	}
	path, _ := sess.Values[keyReturnTo].(string)
	return path
}

// Attach stores sess on the echo context for downstream handlers.
func Attach(c echo.Context, sess Session) {
	c.Set(contextKey, sess)
}

// FromContext returns the session attached by Attach, or an empty session.
func FromContext(c echo.Context) Session {
	sess, _ := c.Get(contextKey).(Session)
	return sess
}

// setAuthCookie creates and sets the authentication cookie. An empty token
// expires it.
func setAuthCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = AuthCookieName
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(24 * time.Hour)
	}
	// Not readable from scripts.
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}
