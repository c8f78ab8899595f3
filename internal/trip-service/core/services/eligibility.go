package services

import "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"

// Eligible filters the registry down to guides worth shortlisting for a
// request: the guide must be marked available and carry at least one
// relevance signal (language or specialty). The result is a candidate set,
// not a ranking.
func Eligible(req model.GuideRequest, guides []model.Guide) []model.Guide {
	eligible := make([]model.Guide, 0, len(guides))
	for _, g := range guides {
		if !g.Available {
			continue
		}
		if g.MatchesRequest(req) {
			eligible = append(eligible, g)
		}
	}
	return eligible
}
