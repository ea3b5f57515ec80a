package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/events"
	"github.com/nfrund/sellerprofile/internal/middleware"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/routepath"
	"github.com/nfrund/sellerprofile/internal/session"
	"github.com/nfrund/sellerprofile/internal/view"
	"github.com/nfrund/sellerprofile/internal/view/dto/auth"
	"github.com/nfrund/sellerprofile/web/src/templates/layouts"
	"github.com/nfrund/sellerprofile/web/src/templates/pages"
)

// Login notices keyed by the error indicator in the query string.
const (
	NoticeNoToken    = "Please sign in to view your profile."
	NoticeAuthFailed = "Your session has expired. Please sign in again."
	MsgLoggedOut     = "You have been logged out."
)

// AuthHandler handles the login landing page and logout.
type AuthHandler struct {
	sessions  *session.Store
	publisher pubsub.Publisher
	loginURL  string
}

// NewAuthHandler creates a new AuthHandler. loginURL is the external auth
// service form endpoint; publisher may be nil.
func NewAuthHandler(sessions *session.Store, publisher pubsub.Publisher, loginURL string) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		publisher: publisher,
		loginURL:  loginURL,
	}
}

// LoginGet renders the sign-in landing page (GET /auth/login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	var q LoginQuery
	if err := c.Bind(&q); err != nil {
		q = LoginQuery{}
	}
	if c.Echo().Validator != nil {
		if err := c.Validate(&q); err != nil {
			// Unknown indicators are shown as a plain login page.
			q.Error = ""
		}
	}

	data := auth.LoginData{
		Notice:    loginNotice(q.Error),
		ActionURL: h.loginURL,
		ReturnTo:  h.sessions.ReturnTo(c),
	}

	flashes := view.GetFlashData(c)
	page := layouts.Base("Sign in", flashes, view.Templ(pages.Login(data)))
	return c.Render(http.StatusOK, "", page)
}

func loginNotice(code string) string {
	switch code {
	case routepath.LoginErrorNoToken:
		return NoticeNoToken
	case routepath.LoginErrorAuthFailed:
		return NoticeAuthFailed
	default:
		return ""
	}
}

// Logout clears the credential and session state, then sends the visitor to
// the login page. It never fails from the visitor's point of view.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	if err := h.sessions.Clear(c); err != nil {
		logger.Error("Failed to clear session", "error", err)
	}

	if h.publisher != nil {
		err := pubsub.Publish(ctx, h.publisher, events.LogoutDone, "", events.LoggedOut{At: time.Now().UTC()})
		if err != nil {
			logger.Error("Failed to publish logout event", "error", err)
		}
	}

	view.SetFlashSuccess(c, MsgLoggedOut)
	return view.Redirect(c, routepath.AuthLogin)
}
