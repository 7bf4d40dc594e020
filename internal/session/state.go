package session

import (
	"github.com/serroba/campaign-links/internal/history"
	"github.com/serroba/campaign-links/internal/tracking"
)

// State is the position of the form in the generate/shorten flow.
type State string

const (
	StateIdle      State = "idle"
	StateGenerated State = "generated"
	StateShortened State = "shortened"
)

// View is a point-in-time copy of everything a UI renders for the session.
type View struct {
	State   State                     `doc:"Current step of the flow"           enum:"idle,generated,shortened" json:"state"`
	Form    tracking.Params           `json:"form"`
	Errors  map[tracking.Field]string `doc:"Validation messages keyed by field" json:"errors,omitempty"`
	Current *history.Link             `doc:"Most recently generated link"       json:"current,omitempty"`
	Copied  bool                      `doc:"True shortly after a copy action"   json:"copied"`
	Pending int                       `doc:"Short-link calls in flight"         json:"pending"`
}
