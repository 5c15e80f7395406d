package ledger

import "errors"

// Configuration errors: an operation needed a setting that the guild hasn't
// provided yet.
var (
	ErrEmojisNotSet  = errors.New("upvote/downvote emojis not set")
	ErrChannelNotSet = errors.New("art channel not set")
)

// ErrNoVotes is returned when a tally is requested for a message that has no
// vote record.
var ErrNoVotes = errors.New("votes not recorded for the given message id")
