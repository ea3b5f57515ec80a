package auth

// LoginData is a View Model (DTO) used specifically for the login page.
type LoginData struct {
	// Notice explains why the visitor landed on the login page, if known.
	Notice string
	// ActionURL is the external auth service form endpoint. Empty hides the form.
	ActionURL string
	// ReturnTo is the path to come back to after signing in.
	ReturnTo string
}
