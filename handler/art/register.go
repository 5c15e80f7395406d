// Package art implements the art showcase moderation commands and the
// reaction listener that records votes.
package art

import (
	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/handler"
	"github.com/AriusX7/advart/ledger"
)

var votes *ledger.Ledger

// RegisterHandlers wires the command and component handlers to the router.
func RegisterHandlers(l *ledger.Ledger) {
	votes = l

	handler.AddCommandHandler("artchannel", artChannelCommand)
	handler.AddCommandHandler("emojis", emojisCommand)
	handler.AddCommandHandler("allow", allowCommand)
	handler.AddCommandHandler("disallow", disallowCommand)
	handler.AddCommandHandler("votes", votesCommand)
	handler.AddCommandHandler("allvotes", allVotesCommand)
	handler.AddCommandHandler("clearvotes", clearVotesCommand)
	handler.AddCommandHandler("addreact", addReactCommand)

	handler.AddComponentHandler(menuComponentKey, menuComponentHandler)
}

// reply sends a short user-facing message to the invoking channel.
func reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, content); err != nil {
		lit.Error("error sending message in channel %s: %s", m.ChannelID, err)
	}
}

// tick acknowledges a successful command the way the commands framework
// does: a check mark reaction on the invoking message.
func tick(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, "✅"); err != nil {
		lit.Error("error adding tick reaction in channel %s: %s", m.ChannelID, err)
	}
}
