package query

// UserStatsResult aggregates a user's persisted activity for the sidebar
// stats panel. Likes and comments are sums over stored counters only.
type UserStatsResult struct {
	Posts    int64 `json:"posts"`
	Drafts   int64 `json:"drafts"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}
