package events

import (
	"time"

	"github.com/nfrund/sellerprofile/internal/pubsub"
)

// ProfileViewed is published after a profile was fetched and rendered.
type ProfileViewed struct {
	ProfileID string    `json:"profileId"`
	At        time.Time `json:"at"`
}

// ProfileFetchFailed is published when the profile API call failed.
type ProfileFetchFailed struct {
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	Redirected bool      `json:"redirected"`
	At         time.Time `json:"at"`
}

// LoggedOut is published after the visitor's session was cleared.
type LoggedOut struct {
	At time.Time `json:"at"`
}

var (
	Viewed      = pubsub.NewEvent[ProfileViewed]("profile.viewed", "A seller profile was fetched and rendered.")
	FetchFailed = pubsub.NewEvent[ProfileFetchFailed]("profile.fetch_failed", "Fetching a seller profile failed.")
	LogoutDone  = pubsub.NewEvent[LoggedOut]("session.logged_out", "A visitor logged out.")
)
