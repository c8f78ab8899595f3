package model

import "strings"

// Guide is an entry of the admin-managed registry. UserId links the profile
// to the guide's login account; notifications are addressed to it.
type Guide struct {
	ID             string
	UserId         string
	Name           string
	Email          string
	Phone          string
	Location       string
	Languages      []string
	Specialties    []string
	Available      bool
	Rating         float64
	CompletedTrips int
	Bio            string
}

// MatchesRequest reports whether the guide is a relevance match for the
// request: the preferred language is spoken, or one of the specialties
// case-insensitively substring-matches the tour type or a special interest.
// Availability is checked separately, it is the only capacity gate.
func (g Guide) MatchesRequest(req GuideRequest) bool {
	for _, lang := range g.Languages {
		if lang == req.PreferredLanguage {
			return true
		}
	}

	for _, specialty := range g.Specialties {
		s := strings.ToLower(specialty)
		if strings.Contains(strings.ToLower(req.TourType), s) {
			return true
		}
		for _, interest := range req.SpecialInterests {
			if strings.Contains(strings.ToLower(interest), s) {
				return true
			}
		}
	}

	return false
}
