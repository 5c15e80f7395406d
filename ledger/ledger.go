// Package ledger maintains per-message, per-voter signed scores for a
// guild's art showcase channel. All persistence goes through the injected
// Store; the reaction listener and the moderation commands share this one
// mutation path so re-vote semantics live in a single place.
package ledger

import "github.com/AriusX7/advart/model"

// Store is the per-guild persistence the ledger runs on.
type Store interface {
	Guild(guildID string) (model.GuildSettings, error)
	SetArtChannel(guildID, channelID string) error
	SetVoteEmojis(guildID string, up, down model.EmojiRef) error

	AllowUser(guildID, userID string) error
	DisallowUser(guildID, userID string) (bool, error)
	IsAllowed(guildID, userID string) (bool, error)

	EnsureRecord(guildID, messageID string) error
	UpsertVote(guildID, messageID, userID string, score int) error
	Record(guildID, messageID string) (model.VoteRecord, bool, error)
	Records(guildID string) ([]model.VoteRecord, error)
	ClearVotes(guildID string) error
}

// Ledger owns vote bookkeeping for all guilds.
type Ledger struct {
	store Store
}

// New creates a ledger over the given store.
func New(store Store) *Ledger {
	return &Ledger{store: store}
}

// Settings returns the guild's settings, with documented defaults for a
// guild that was never configured.
func (l *Ledger) Settings(guildID string) (model.GuildSettings, error) {
	return l.store.Guild(guildID)
}

// SetArtChannel overwrites the guild's art channel. An empty ID unsets it.
func (l *Ledger) SetArtChannel(guildID, channelID string) error {
	return l.store.SetArtChannel(guildID, channelID)
}

// SetVoteEmojis overwrites the vote emoji pair.
func (l *Ledger) SetVoteEmojis(guildID string, up, down model.EmojiRef) error {
	return l.store.SetVoteEmojis(guildID, up, down)
}

// AllowUser adds a user to the allow list.
func (l *Ledger) AllowUser(guildID, userID string) error {
	return l.store.AllowUser(guildID, userID)
}

// DisallowUser removes a user from the allow list. The bool reports whether
// the user was present; absence is a distinct outcome, not an error.
func (l *Ledger) DisallowUser(guildID, userID string) (bool, error) {
	return l.store.DisallowUser(guildID, userID)
}

// IsAllowed reports allow-list membership. An empty allow list means nobody
// passes, including administrators.
func (l *Ledger) IsAllowed(guildID, userID string) (bool, error) {
	return l.store.IsAllowed(guildID, userID)
}

// RegisterSubmission ensures a (possibly empty) vote record exists for the
// message. The emoji pair must be configured first; the caller is expected
// to attach the vote reactions to the message.
func (l *Ledger) RegisterSubmission(guildID, messageID string) error {
	settings, err := l.store.Guild(guildID)
	if err != nil {
		return err
	}
	if !settings.EmojisConfigured() {
		return ErrEmojisNotSet
	}

	return l.store.EnsureRecord(guildID, messageID)
}

// Score maps a reaction emoji name to a vote score: the configured upvote
// name counts +1, the downvote name -1, anything else 0 (not a vote).
// Comparison is by display name, matching how reactions are reported.
func Score(settings model.GuildSettings, emojiName string) int {
	if !settings.EmojisConfigured() {
		return 0
	}

	switch emojiName {
	case settings.UpvoteEmoji.Name:
		return model.Upvote
	case settings.DownvoteEmoji.Name:
		return model.Downvote
	}
	return 0
}

// RecordVote upserts a user's score for a message, creating the vote record
// if absent. A zero score is never written; callers must filter non-votes
// with Score first.
func (l *Ledger) RecordVote(guildID, messageID, userID string, score int) error {
	if score != model.Upvote && score != model.Downvote {
		return nil
	}
	return l.store.UpsertVote(guildID, messageID, userID, score)
}

// Tally counts the upvotes and downvotes recorded for a message. A message
// with no vote record yields ErrNoVotes, never a default (0, 0).
func (l *Ledger) Tally(guildID, messageID string) (up, down int, err error) {
	record, found, err := l.store.Record(guildID, messageID)
	if err != nil {
		return 0, 0, err
	}
	if !found {
		return 0, 0, ErrNoVotes
	}

	up, down = CountVotes(record)
	return up, down, nil
}

// Records returns every vote record of the guild in registration order.
func (l *Ledger) Records(guildID string) ([]model.VoteRecord, error) {
	return l.store.Records(guildID)
}

// ClearVotes irreversibly wipes every vote record of the guild. Callers must
// gate this behind an interactive confirmation.
func (l *Ledger) ClearVotes(guildID string) error {
	return l.store.ClearVotes(guildID)
}

// CountVotes counts the +1 and -1 entries of a record.
func CountVotes(record model.VoteRecord) (up, down int) {
	for _, score := range record.Scores {
		switch score {
		case model.Upvote:
			up++
		case model.Downvote:
			down++
		}
	}
	return up, down
}
