package profile

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/domain"
	"github.com/nfrund/sellerprofile/internal/events"
	"github.com/nfrund/sellerprofile/internal/middleware"
	"github.com/nfrund/sellerprofile/internal/modules/profile/view"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/routepath"
	"github.com/nfrund/sellerprofile/internal/session"
	gview "github.com/nfrund/sellerprofile/internal/view"
	"github.com/nfrund/sellerprofile/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

const pageTitle = "Profile"

// Handler serves the seller profile page.
type Handler struct {
	gateway   domain.ProfileGateway
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewHandler creates a new Handler. publisher may be nil.
func NewHandler(gateway domain.ProfileGateway, publisher pubsub.Publisher) *Handler {
	return &Handler{
		gateway:   gateway,
		publisher: publisher,
		now:       time.Now,
	}
}

// Page renders the page shell in the loading state. The content container
// then requests Content. Routes using it must be wrapped in
// middleware.RequireSession, so a credential is present here.
func (h *Handler) Page(c echo.Context) error {
	if !session.FromContext(c).Authenticated() {
		return gview.Redirect(c, routepath.LoginWithError(routepath.LoginErrorNoToken))
	}
	return h.renderPage(c, view.Loading{}, gview.GetFlashData(c))
}

// Content fetches the profile and renders the error or loaded view.
func (h *Handler) Content(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	profile, err := h.gateway.FetchProfile(ctx, session.FromContext(c).Token)
	if ctx.Err() != nil {
		// The visitor is gone; nobody is left to render for.
		logger.Debug("discarding profile result for a cancelled request", "error", ctx.Err())
		return nil
	}
	if err != nil {
		return h.fetchFailed(c, err)
	}

	logger.Info("profile fetched", "profile_id", profile.ID)
	h.publish(c, func() error {
		return pubsub.Publish(ctx, h.publisher, events.Viewed, profile.ID, events.ProfileViewed{
			ProfileID: profile.ID,
			At:        h.now().UTC(),
		})
	})

	state := view.Loaded{Profile: view.FromProfile(profile)}
	if gview.IsHTMX(c) {
		return c.Render(http.StatusOK, "", view.Content(state))
	}
	return h.renderPage(c, state, gview.GetFlashData(c))
}

// fetchFailed shows the failure as a destructive toast plus the error panel.
// Authentication failures instead send the visitor to the login page and
// show the toast there, carried over as a flash.
func (h *Handler) fetchFailed(c echo.Context, err error) error {
	ctx := c.Request().Context()
	pe := domain.AsProfileError(err)
	redirect := pe.AuthFailure()

	middleware.FromContext(ctx).Warn("profile fetch failed",
		"kind", pe.Kind,
		"error", err,
		"redirect", redirect,
	)
	h.publish(c, func() error {
		return pubsub.Publish(ctx, h.publisher, events.FetchFailed, "", events.ProfileFetchFailed{
			Kind:       string(pe.Kind),
			Message:    pe.Message,
			Redirected: redirect,
			At:         h.now().UTC(),
		})
	})

	toast := gview.ErrorToast(pe.Message)
	state := view.Failed{Message: pe.Message}

	if redirect {
		gview.SetFlash(c, toast)
		location := routepath.LoginWithError(routepath.LoginErrorAuthFailed)
		if !gview.IsHTMX(c) {
			return c.Redirect(http.StatusSeeOther, location)
		}
		// htmx navigates on HX-Redirect; the panel is only seen until then.
		// The flash already carries the toast, so none is swapped in here.
		gview.SetRedirectHeader(c, location)
		return c.Render(http.StatusOK, "", view.Content(state))
	}

	if gview.IsHTMX(c) {
		return c.Render(http.StatusOK, "", g.Group{view.Content(state), gview.ToastOOB(toast)})
	}
	flashes := gview.GetFlashData(c)
	flashes.Toasts = append(flashes.Toasts, toast)
	return h.renderPage(c, state, flashes)
}

func (h *Handler) renderPage(c echo.Context, state view.State, flashes gview.FlashData) error {
	page := layouts.Base(pageTitle, flashes, gview.Templ(view.Page(state)))
	return c.Render(http.StatusOK, "", page)
}

// publish runs fn when a publisher is configured. Event delivery never
// affects the response.
func (h *Handler) publish(c echo.Context, fn func() error) {
	if h.publisher == nil {
		return
	}
	if err := fn(); err != nil {
		middleware.FromContext(c.Request().Context()).Error("failed to publish profile event", "error", err)
	}
}
