package art

import (
	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/utils"
)

// requireAllowed gates a command on allow-list membership. An empty allow
// list denies everyone, administrators included.
func requireAllowed(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	allowed, err := votes.IsAllowed(m.GuildID, m.Author.ID)
	if err != nil {
		lit.Error("error checking allow list for user %s in guild %s: %s", m.Author.ID, m.GuildID, err)
		reply(s, m, "Something went wrong while checking your permissions.")
		return false
	}

	if !allowed {
		reply(s, m, "You are not allowed to use this command.")
		return false
	}
	return true
}

// requireAdmin gates a command on the Administrator permission.
func requireAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if !utils.IsAdministrator(s, m.Author.ID, m.ChannelID) {
		reply(s, m, "You need the Administrator permission to use this command.")
		return false
	}
	return true
}
