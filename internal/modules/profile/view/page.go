package view

import (
	"github.com/nfrund/sellerprofile/internal/routepath"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element ids the handler and tests rely on.
const (
	ContentID      = "profile-content"
	ErrorPanelID   = "error-panel"
	ProfilePanelID = "profile-panel"
	LogoutButtonID = "logout-button"
)

// Page renders the sidebar next to the content container for state.
func Page(state State) g.Node {
	return h.Div(
		h.Class("flex min-h-screen"),
		Sidebar(),
		h.Div(h.Class("flex-1 p-8"), Content(state)),
	)
}

// Content renders the swappable content container. In the Loading state the
// container fetches its replacement as soon as htmx processes it.
func Content(state State) g.Node {
	_, loading := state.(Loading)
	return h.Div(
		h.ID(ContentID),
		g.If(loading, g.Group{
			hx.Get(routepath.ProfileContent),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
			h.Aria("busy", "true"),
		}),
		Render(state),
	)
}

// Render dispatches on the view state.
func Render(state State) g.Node {
	switch s := state.(type) {
	case Loading:
		return loadingView()
	case Failed:
		return errorView(s.Message)
	case Loaded:
		return profileView(s.Profile)
	default:
		return g.Text("")
	}
}

// Sidebar holds navigation and the logout control. Logout is a plain form so
// it works with or without htmx.
func Sidebar() g.Node {
	return h.Aside(
		h.Class("w-64 border-r bg-white p-6 flex flex-col"),
		h.Nav(
			h.Class("flex-1 space-y-2"),
			h.A(h.Href(routepath.AppProfile), h.Class("block rounded px-3 py-2 font-medium bg-gray-100"), g.Text("Profile")),
		),
		h.Form(
			h.Method("post"),
			h.Action(routepath.AuthLogout),
			h.Button(
				h.ID(LogoutButtonID),
				h.Type("submit"),
				h.Class("w-full rounded px-3 py-2 text-left text-red-600 hover:bg-red-50"),
				g.Text("Logout"),
			),
		),
	)
}

func skeleton(classes string) g.Node {
	return h.Div(h.Class("skeleton "+classes), h.Aria("hidden", "true"))
}

func loadingView() g.Node {
	return h.Div(
		h.Header(
			h.Class("mb-8 space-y-2"),
			skeleton("h-8 w-48"),
			skeleton("h-4 w-72"),
		),
		h.Div(
			h.Class("rounded-xl bg-white p-8 shadow flex items-center gap-6"),
			skeleton("h-24 w-24 rounded-full"),
			h.Div(
				h.Class("space-y-3"),
				skeleton("h-6 w-40"),
				skeleton("h-4 w-56"),
				skeleton("h-4 w-56"),
			),
		),
	)
}

func pageHeader() g.Node {
	return h.Header(
		h.Class("mb-8"),
		h.H1(h.Class("text-3xl font-bold"), g.Text("Profile")),
		h.P(h.Class("text-gray-500"), g.Text("View your profile information")),
	)
}

func errorView(message string) g.Node {
	return h.Div(
		pageHeader(),
		h.Div(
			h.ID(ErrorPanelID),
			h.Role("alert"),
			h.Class("rounded-xl border border-red-200 bg-red-50 p-8 text-center"),
			h.H2(h.Class("text-lg font-semibold text-red-700"), g.Text("Error loading profile")),
			h.P(h.Class("mt-2 text-red-600"), g.Text(message)),
			h.Button(
				h.Type("button"),
				h.Class("mt-4 rounded bg-red-600 px-4 py-2 text-white"),
				g.Attr("onclick", "window.location.reload()"),
				g.Text("Try Again"),
			),
		),
	)
}

func profileView(p Data) g.Node {
	return h.Div(
		pageHeader(),
		h.Div(
			h.ID(ProfilePanelID),
			h.Class("rounded-xl bg-white p-8 shadow space-y-8"),
			h.Div(
				h.Class("flex items-center gap-6"),
				h.Img(h.Src(p.AvatarURL), h.Alt(p.FullName), h.Class("h-24 w-24 rounded-full")),
				h.Div(
					h.H2(h.Class("text-2xl font-semibold"), g.Text(p.FullName)),
					h.P(h.Class("text-gray-600"), g.Text(p.Title)),
					h.P(h.Class("text-gray-600"), g.Text(p.Email)),
				),
			),
			h.Section(
				h.H3(h.Class("text-lg font-semibold mb-2"), g.Text("Company Information")),
				h.Dl(
					h.Dt(h.Class("text-sm text-gray-500"), g.Text("Company Name")),
					h.Dd(h.Class("font-medium"), g.Text(p.CompanyName)),
				),
			),
		),
	)
}
