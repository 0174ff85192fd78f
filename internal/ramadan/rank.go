package ramadan

import (
	"sort"

	"github.com/nur-collective/siyam/internal/model"
)

// RankedProfile pairs a user with their computed stats and leaderboard
// position.
type RankedProfile struct {
	Profile model.Profile
	Stats   Stats
}

// Rank scores every profile and orders them by overall progress,
// highest first. Ties keep their input order (stable sort); the result
// is a fresh slice and the inputs are never mutated. Collections are
// small (tens of users) so each call recomputes from scratch.
func Rank(profiles []model.Profile, currentDay int) []RankedProfile {
	ranked := make([]RankedProfile, 0, len(profiles))
	for _, p := range profiles {
		ranked = append(ranked, RankedProfile{
			Profile: p,
			Stats:   ComputeStats(p.Records, currentDay),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.OverallProgress > ranked[j].Stats.OverallProgress
	})
	return ranked
}
