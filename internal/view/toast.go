package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ToastRegionID is the element every toast is rendered into.
const ToastRegionID = "toasts"

// ToastRegion renders the fixed container holding the given toasts.
func ToastRegion(toasts []Toast) g.Node {
	return h.Div(
		h.ID(ToastRegionID),
		h.Class("fixed top-4 right-4 z-50 space-y-2"),
		h.Role("status"),
		h.Aria("live", "polite"),
		g.Map(toasts, ToastNode),
	)
}

// ToastNode renders a single toast.
func ToastNode(t Toast) g.Node {
	classes := "rounded-md border p-4 shadow-lg bg-white text-gray-900"
	if t.Variant == VariantDestructive {
		classes = "rounded-md border p-4 shadow-lg bg-red-600 text-white border-red-700"
	}
	return h.Div(
		h.Class(classes),
		h.Data("variant", string(t.Variant)),
		g.If(t.Title != "", h.Div(h.Class("font-semibold"), g.Text(t.Title))),
		h.Div(h.Class("text-sm"), g.Text(t.Description)),
	)
}

// ToastOOB renders a toast that htmx appends to the toast region of the
// current page, whatever fragment it arrived with.
func ToastOOB(t Toast) g.Node {
	return h.Div(
		hx.SwapOOB("beforeend:#"+ToastRegionID),
		ToastNode(t),
	)
}
