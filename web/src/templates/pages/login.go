package pages

import (
	"github.com/nfrund/sellerprofile/internal/view/dto/auth"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Login is the sign-in landing page. Credentials are handled by the external
// auth service the form posts to.
func Login(data auth.LoginData) cmp.Node {
	return g.Div(
		g.Class("container mx-auto max-w-md p-8"),
		g.Div(
			g.Class("bg-white shadow-2xl rounded-xl p-10"),
			g.H1(
				g.Class("text-3xl font-extrabold text-indigo-700 mb-4"),
				cmp.Text("Sign in"),
			),
			cmp.If(data.Notice != "",
				g.P(
					g.ID("login-notice"),
					g.Class("mb-6 rounded-md bg-yellow-50 p-4 text-yellow-800"),
					cmp.Text(data.Notice),
				),
			),
			cmp.Iff(data.ActionURL != "", func() cmp.Node {
				return g.Form(
					g.Method("post"),
					g.Action(data.ActionURL),
					g.Class("space-y-4"),
					g.Input(g.Type("hidden"), g.Name("return_to"), g.Value(data.ReturnTo)),
					g.Label(g.For("email"), g.Class("block text-sm font-medium"), cmp.Text("Email")),
					g.Input(g.ID("email"), g.Type("email"), g.Name("email"), g.Required(), g.Class("w-full rounded border p-2")),
					g.Label(g.For("password"), g.Class("block text-sm font-medium"), cmp.Text("Password")),
					g.Input(g.ID("password"), g.Type("password"), g.Name("password"), g.Required(), g.Class("w-full rounded border p-2")),
					g.Button(g.Type("submit"), g.Class("w-full rounded bg-indigo-600 p-2 text-white"), cmp.Text("Sign in")),
				)
			}),
			cmp.If(data.ActionURL == "",
				g.P(g.Class("text-gray-700"), cmp.Text("Sign in through your account portal, then return to this page.")),
			),
		),
	)
}
