package art

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/utils"
)

// artChannelCommand sets or unsets the guild's art channel. Without an
// argument the channel is unset and the feature disabled.
func artChannelCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAllowed(s, m) {
		return
	}

	if len(args) == 0 {
		if err := votes.SetArtChannel(m.GuildID, ""); err != nil {
			lit.Error("error unsetting art channel in guild %s: %s", m.GuildID, err)
			reply(s, m, "Something went wrong while updating the art channel.")
			return
		}
		reply(s, m, "Unset the art channel.")
		return
	}

	channelID, err := utils.ParseChannelMention(args[0])
	if err != nil {
		reply(s, m, "Please mention a channel, like `#art`.")
		return
	}

	channel, err := s.Channel(channelID)
	if err != nil || channel.GuildID != m.GuildID {
		reply(s, m, "Cannot find that channel in this server.")
		return
	}

	if err := votes.SetArtChannel(m.GuildID, channelID); err != nil {
		lit.Error("error setting art channel in guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while updating the art channel.")
		return
	}

	reply(s, m, fmt.Sprintf("Set <#%s> as the art channel.", channelID))
}

// emojisCommand sets the upvote and downvote emoji pair.
func emojisCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAllowed(s, m) {
		return
	}

	if len(args) < 2 {
		reply(s, m, "Please provide an upvote emoji and a downvote emoji.")
		return
	}

	up, err := utils.ParseEmoji(args[0])
	if err != nil {
		reply(s, m, "Invalid upvote emoji.")
		return
	}

	down, err := utils.ParseEmoji(args[1])
	if err != nil {
		reply(s, m, "Invalid downvote emoji.")
		return
	}

	if err := votes.SetVoteEmojis(m.GuildID, up, down); err != nil {
		lit.Error("error setting vote emojis in guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while updating the emojis.")
		return
	}

	tick(s, m)
}

// allowCommand adds a user to the allow list.
func allowCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAdmin(s, m) {
		return
	}

	if len(args) == 0 {
		reply(s, m, "Please mention the user to allow.")
		return
	}

	userID, err := utils.ParseUserMention(args[0])
	if err != nil {
		reply(s, m, "Please mention a user, like `@artmod`.")
		return
	}

	if err := votes.AllowUser(m.GuildID, userID); err != nil {
		lit.Error("error allowing user %s in guild %s: %s", userID, m.GuildID, err)
		reply(s, m, "Something went wrong while updating the allowed users list.")
		return
	}

	tick(s, m)
}

// disallowCommand removes a user from the allow list. Removing a user who
// isn't on the list is reported, not treated as an error.
func disallowCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAdmin(s, m) {
		return
	}

	if len(args) == 0 {
		reply(s, m, "Please mention the user to disallow.")
		return
	}

	userID, err := utils.ParseUserMention(args[0])
	if err != nil {
		reply(s, m, "Please mention a user, like `@artmod`.")
		return
	}

	removed, err := votes.DisallowUser(m.GuildID, userID)
	if err != nil {
		lit.Error("error disallowing user %s in guild %s: %s", userID, m.GuildID, err)
		reply(s, m, "Something went wrong while updating the allowed users list.")
		return
	}

	if !removed {
		reply(s, m, fmt.Sprintf("User <@%s> is not in the allowed users list.", userID))
		return
	}

	tick(s, m)
}
