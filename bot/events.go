package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/AriusX7/advart/handler"
	"github.com/AriusX7/advart/handler/art"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnMessageCreate)
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(art.MessageReactionAdd)

	// Prefix commands need the message content intent on top of the usual
	// guild and reaction intents.
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent
}
