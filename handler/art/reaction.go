package art

import (
	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/ledger"
)

// MessageReactionAdd records votes cast as reactions in the art channel.
// This is the sole mutation path driven by gateway events; reaction removals
// are deliberately not consumed, a vote is changed by voting again.
func MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}

	settings, err := votes.Settings(r.GuildID)
	if err != nil {
		lit.Error("error loading settings for guild %s: %s", r.GuildID, err)
		return
	}

	if settings.ArtChannelID == "" || r.ChannelID != settings.ArtChannelID {
		return
	}

	score := ledger.Score(settings, r.Emoji.Name)
	if score == 0 {
		return
	}

	if err := votes.RecordVote(r.GuildID, r.MessageID, r.UserID, score); err != nil {
		lit.Error("error recording vote on message %s by user %s: %s", r.MessageID, r.UserID, err)
		return
	}

	// Strip the user's reaction so the message keeps one icon per choice.
	if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.APIName(), r.UserID); err != nil {
		lit.Warn("error removing reaction from message %s for user %s: %s", r.MessageID, r.UserID, err)
	}
}
