package mapper

import (
	"math/rand"

	"branding-agent/internal/application/common"
)

// Simulated engagement ranges shown when a post has no stored counters yet.
// Real LinkedIn metrics would need the LinkedIn API; these are demo numbers.
const (
	simLikesMin    = 35
	simLikesMax    = 180
	simCommentsMin = 3
	simCommentsMax = 25
)

// WithSimulatedEngagement fills zero-valued likes/comments with random
// display placeholders and flags the result accordingly. The values are never
// written back to storage.
func WithSimulatedEngagement(result *common.PostResult) *common.PostResult {
	if result.Likes == 0 {
		result.Likes = simLikesMin + rand.Intn(simLikesMax-simLikesMin+1)
		result.SimulatedEngagement = true
	}
	if result.Comments == 0 {
		result.Comments = simCommentsMin + rand.Intn(simCommentsMax-simCommentsMin+1)
		result.SimulatedEngagement = true
	}
	return result
}
