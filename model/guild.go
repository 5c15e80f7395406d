package model

// EmojiRef identifies a configured vote emoji. Custom emoji carry both a
// display name and a snowflake ID; reactions are matched by name (see
// ledger.Score), the ID is kept so the bot can attach the emoji itself.
type EmojiRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// APIName returns the name:id form the Discord API expects for reaction
// endpoints. Unicode emoji have no ID and are passed through as-is.
func (e EmojiRef) APIName() string {
	if e.ID == "" {
		return e.Name
	}
	return e.Name + ":" + e.ID
}

// GuildSettings holds the per-guild art showcase configuration. A guild
// without a row in the store gets the zero value: feature disabled, no
// emoji pair configured.
type GuildSettings struct {
	GuildID       string
	ArtChannelID  string
	UpvoteEmoji   *EmojiRef
	DownvoteEmoji *EmojiRef
}

// EmojisConfigured reports whether both vote emoji have been set.
func (g GuildSettings) EmojisConfigured() bool {
	return g.UpvoteEmoji != nil && g.DownvoteEmoji != nil
}
