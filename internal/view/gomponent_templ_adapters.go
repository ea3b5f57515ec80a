package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ wraps a gomponents node so it can be rendered wherever a
// templ.Component is expected, e.g. inside the Base layout.
func Templ(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// Node wraps a templ.Component as a gomponents node. gomponents does not pass
// a context when rendering, so the context is bound up front.
func Node(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
