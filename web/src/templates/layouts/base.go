package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/sellerprofile/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// HTMXScriptURL is the htmx build loaded by every page.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shell. Queued toasts are
// rendered into the toast region so fragments can append to it later.
func Base(title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.HTML5(c.HTML5Props{
			Title:    CalculateTitle(title),
			Language: "en",
			Head: []g.Node{
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src(HTMXScriptURL), h.Defer()),
			},
			Body: []g.Node{
				h.Class("min-h-screen bg-gray-50"),
				view.ToastRegion(flashes.Toasts),
				h.Main(view.Node(ctx, content)),
			},
		}).Render(w)
	})
}
