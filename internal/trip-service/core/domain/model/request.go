package model

import "time"

// Status describes how far a guide request has progressed.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// successor is the single legal next state for each non-terminal status.
// There are no skips and no backward edges.
var successor = map[Status]Status{
	StatusPending:    StatusAssigned,
	StatusAssigned:   StatusInProgress,
	StatusInProgress: StatusCompleted,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Next returns the only status reachable from s, if any.
func (s Status) Next() (Status, bool) {
	next, ok := successor[s]
	return next, ok
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to Status) bool {
	next, ok := successor[from]
	return ok && next == to
}

var AllowedTourTypes = map[string]bool{
	"trekking":    true,
	"culture":     true,
	"adventure":   true,
	"spiritual":   true,
	"photography": true,
}

// GuideRequest is a tourist's submitted trip specification. Tourist identity
// fields are a snapshot taken at submission time, not a live reference.
type GuideRequest struct {
	ID                   string
	TouristID            string
	TouristName          string
	TouristEmail         string
	SelectedDestinations []int64
	TourType             string
	PreferredLanguage    string
	SpecialInterests     []string
	Duration             string
	GroupSize            string
	Budget               string
	FitnessLevel         string
	StartDate            time.Time
	EmergencyContact     string
	Status               Status
	AssignedGuide        string // guide id, empty while pending
	SubmittedAt          time.Time
	AssignedAt           time.Time // zero until first assignment
}
