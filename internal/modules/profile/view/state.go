package view

// State is the view state of the profile page. Exactly one of Loading, Failed
// or Loaded is rendered at a time.
type State interface {
	isState()
}

// Loading is shown while the profile fetch is outstanding.
type Loading struct{}

// Failed is shown when the fetch failed; Message is the visitor-facing text.
type Failed struct {
	Message string
}

// Loaded is shown once the profile arrived.
type Loaded struct {
	Profile Data
}

func (Loading) isState() {}
func (Failed) isState()  {}
func (Loaded) isState()  {}
