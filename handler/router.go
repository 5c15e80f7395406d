package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/AriusX7/advart/config"
)

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, m *discordgo.MessageCreate, args []string))
	componentHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

// AddCommandHandler registers a handler for a prefix command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)) {
	commandHandlers[name] = handler
}

// AddComponentHandler registers a handler for a message component. The key
// is matched against the part of the custom ID before the first ':'.
func AddComponentHandler(customID string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	componentHandlers[customID] = handler
}

// OnMessageCreate is the main command router. Messages awaited by a pending
// confirmation are delivered there and never parsed as commands.
func OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	if deliverAwaited(m) {
		return
	}

	prefix := config.Cfg.Prefix
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	fields := strings.Fields(m.Content[len(prefix):])
	if len(fields) == 0 {
		return
	}

	if handler, ok := commandHandlers[strings.ToLower(fields[0])]; ok {
		handler(s, m, fields[1:])
	}
}

// OnInteractionCreate routes message component interactions (menu buttons).
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	parts := strings.SplitN(customID, ":", 2)

	if handler, ok := componentHandlers[parts[0]]; ok {
		handler(s, i)
	}
}
