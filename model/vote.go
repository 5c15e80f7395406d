package model

// Vote scores. A score of zero is never stored; reactions that match
// neither configured emoji are not votes.
const (
	Upvote   = 1
	Downvote = -1
)

// VoteRecord is the set of scores cast on one tracked message. Keys are
// voter user IDs; each voter holds at most one score, a later vote
// overwrites the earlier one.
type VoteRecord struct {
	MessageID string
	Scores    map[string]int
}
