package view_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the context carries the store.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Toasts, 1)
		assert.Equal(t, "Success", flashes.Toasts[0].Title)
		assert.Equal(t, []string{"It worked!"}, flashes.Descriptions(view.VariantDefault))
		assert.Empty(t, flashes.Descriptions(view.VariantDestructive))

		flashesAfterRead := view.GetFlashData(c)
		assert.Empty(t, flashesAfterRead.Toasts, "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Failed to fetch profile: 403")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Toasts, 1)
		assert.Equal(t, view.ErrorToast("Failed to fetch profile: 403"), flashes.Toasts[0])
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.Empty(t, flashes.Toasts)
	})
}

func TestToastNodes(t *testing.T) {
	var b strings.Builder
	require.NoError(t, view.ToastOOB(view.ErrorToast("Network timeout")).Render(&b))

	html := b.String()
	assert.Contains(t, html, `hx-swap-oob="beforeend:#toasts"`)
	assert.Contains(t, html, `data-variant="destructive"`)
	assert.Contains(t, html, "Network timeout")
	assert.Contains(t, html, ">Error<")

	b.Reset()
	require.NoError(t, view.ToastRegion(nil).Render(&b))
	assert.Contains(t, b.String(), `id="toasts"`)
}
