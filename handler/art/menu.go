package art

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	menuComponentKey = "artmenu"
	menuIdleTimeout  = 60 * time.Second
)

// Menu actions, encoded in the button custom IDs.
const (
	actionFirst = "first"
	actionPrev  = "prev"
	actionNext  = "next"
	actionLast  = "last"
	actionStop  = "stop"
)

// menuClock drives idle expiry; tests swap in a fake.
var menuClock clockwork.Clock = clockwork.NewRealClock()

// menuRenderer is the slice of the Discord session the menu drives.
// *discordgo.Session satisfies it.
type menuRenderer interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// menuSession is one live paginated report. Only the invoking user may
// navigate it.
type menuSession struct {
	mu        sync.Mutex
	id        string
	userID    string
	channelID string
	messageID string
	pages     []*discordgo.MessageEmbed
	page      int
	timer     clockwork.Timer
	done      bool
}

var (
	menuMu sync.Mutex
	menus  = make(map[string]*menuSession)
)

// spawnMenu sends the first page with navigation buttons and tracks the
// session until it is stopped or idles out.
func spawnMenu(r menuRenderer, channelID, userID string, pages []*discordgo.MessageEmbed) error {
	if len(pages) == 0 {
		return errors.New("menu needs at least one page")
	}

	id := uuid.New().String()

	msg, err := r.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pages[0]},
		Components: menuComponents(id),
	})
	if err != nil {
		return err
	}

	session := &menuSession{
		id:        id,
		userID:    userID,
		channelID: channelID,
		messageID: msg.ID,
		pages:     pages,
	}
	session.timer = menuClock.AfterFunc(menuIdleTimeout, func() {
		expireMenu(r, id)
	})

	menuMu.Lock()
	menus[id] = session
	menuMu.Unlock()

	return nil
}

// menuComponents builds the navigation row. The session id rides in the
// custom IDs so the component router can find the session back.
func menuComponents(id string) []discordgo.MessageComponent {
	button := func(emoji, action string) discordgo.Button {
		return discordgo.Button{
			Style:    discordgo.SecondaryButton,
			CustomID: menuComponentKey + ":" + id + ":" + action,
			Emoji:    &discordgo.ComponentEmoji{Name: emoji},
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("⏮️", actionFirst),
				button("◀️", actionPrev),
				button("▶️", actionNext),
				button("⏭️", actionLast),
				button("⏹️", actionStop),
			},
		},
	}
}

// menuComponentHandler routes menu button presses from the gateway.
func menuComponentHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	handleMenuComponent(s, i)
}

// handleMenuComponent applies a navigation action to its session.
func handleMenuComponent(r menuRenderer, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 3 {
		return
	}
	id, action := parts[1], parts[2]

	menuMu.Lock()
	session, ok := menus[id]
	menuMu.Unlock()

	if !ok {
		// Stale buttons from before a restart; just acknowledge.
		acknowledge(r, i)
		return
	}

	user := interactionUser(i)
	if user == "" || user != session.userID {
		acknowledge(r, i)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.done {
		acknowledge(r, i)
		return
	}

	if action == actionStop {
		session.done = true
		session.timer.Stop()
		removeMenu(id)

		err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{session.pages[session.page]},
				Components: []discordgo.MessageComponent{},
			},
		})
		if err != nil {
			lit.Error("error stopping menu %s: %s", id, err)
		}
		return
	}

	session.page = nextPage(session.page, len(session.pages), action)
	session.timer.Reset(menuIdleTimeout)

	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{session.pages[session.page]},
			Components: menuComponents(id),
		},
	})
	if err != nil {
		lit.Error("error updating menu %s: %s", id, err)
	}
}

// nextPage computes the page index after a navigation action. Previous and
// next wrap around.
func nextPage(current, total int, action string) int {
	switch action {
	case actionFirst:
		return 0
	case actionLast:
		return total - 1
	case actionNext:
		return (current + 1) % total
	case actionPrev:
		return (current - 1 + total) % total
	}
	return current
}

// expireMenu withdraws the navigation controls after the idle timeout.
func expireMenu(r menuRenderer, id string) {
	menuMu.Lock()
	session, ok := menus[id]
	menuMu.Unlock()
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.done {
		return
	}
	session.done = true
	removeMenu(id)

	_, err := r.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    session.channelID,
		ID:         session.messageID,
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		lit.Error("error withdrawing menu controls for %s: %s", id, err)
	}
}

func removeMenu(id string) {
	menuMu.Lock()
	delete(menus, id)
	menuMu.Unlock()
}

func acknowledge(r menuRenderer, i *discordgo.InteractionCreate) {
	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		lit.Error("error acknowledging interaction: %s", err)
	}
}

func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
