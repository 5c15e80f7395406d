package art

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records everything the menu asks the session to do.
type fakeRenderer struct {
	mu        sync.Mutex
	sent      []*discordgo.MessageSend
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.MessageEdit
}

func (f *fakeRenderer) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	return &discordgo.Message{ID: "menu-message", ChannelID: channelID}, nil
}

func (f *fakeRenderer) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeRenderer) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, m)
	return nil, nil
}

func (f *fakeRenderer) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

func (f *fakeRenderer) editCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edits)
}

func testPages(n int) []*discordgo.MessageEmbed {
	pages := make([]*discordgo.MessageEmbed, n)
	for i := range pages {
		pages[i] = &discordgo.MessageEmbed{Title: fmt.Sprintf("page %d", i+1)}
	}
	return pages
}

// spawnTestMenu starts a menu on a fake renderer and returns the session id
// parsed back out of the sent button custom IDs.
func spawnTestMenu(t *testing.T, fake *fakeRenderer, pages []*discordgo.MessageEmbed) string {
	t.Helper()

	t.Cleanup(func() {
		menuMu.Lock()
		menus = make(map[string]*menuSession)
		menuMu.Unlock()
	})

	require.NoError(t, spawnMenu(fake, "channel", "invoker", pages))

	require.Len(t, fake.sent, 1)
	row, ok := fake.sent[0].Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)

	parts := strings.Split(button.CustomID, ":")
	require.Len(t, parts, 3)
	return parts[1]
}

func buttonPress(sessionID, action, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: menuComponentKey + ":" + sessionID + ":" + action,
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
}

func sessionPage(id string) int {
	menuMu.Lock()
	session, ok := menus[id]
	menuMu.Unlock()
	if !ok {
		return -1
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.page
}

func TestNextPage(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		action  string
		want    int
	}{
		{"first from middle", 2, 5, actionFirst, 0},
		{"last from middle", 2, 5, actionLast, 4},
		{"next", 1, 5, actionNext, 2},
		{"next wraps", 4, 5, actionNext, 0},
		{"prev", 3, 5, actionPrev, 2},
		{"prev wraps", 0, 5, actionPrev, 4},
		{"single page stays put", 0, 1, actionNext, 0},
		{"unknown action keeps page", 2, 5, "shrug", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextPage(tt.current, tt.total, tt.action))
		})
	}
}

func TestMenuComponents(t *testing.T) {
	components := menuComponents("session-id")
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 5)

	actions := []string{actionFirst, actionPrev, actionNext, actionLast, actionStop}
	for i, component := range row.Components {
		button, ok := component.(discordgo.Button)
		require.True(t, ok)

		parts := strings.Split(button.CustomID, ":")
		require.Len(t, parts, 3)
		assert.Equal(t, menuComponentKey, parts[0])
		assert.Equal(t, "session-id", parts[1])
		assert.Equal(t, actions[i], parts[2])
	}
}

func TestMenuOnlyInvokerNavigates(t *testing.T) {
	fake := &fakeRenderer{}
	id := spawnTestMenu(t, fake, testPages(3))

	handleMenuComponent(fake, buttonPress(id, actionNext, "bystander"))

	// The press is acknowledged but nothing moves or re-renders.
	resp := fake.lastResponse()
	require.NotNil(t, resp)
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, resp.Type)
	assert.Nil(t, resp.Data)
	assert.Equal(t, 0, sessionPage(id))

	handleMenuComponent(fake, buttonPress(id, actionNext, "invoker"))

	resp = fake.lastResponse()
	require.NotNil(t, resp)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Equal(t, 1, sessionPage(id))
}

func TestMenuNavigationUpdatesPage(t *testing.T) {
	fake := &fakeRenderer{}
	id := spawnTestMenu(t, fake, testPages(3))

	handleMenuComponent(fake, buttonPress(id, actionLast, "invoker"))

	resp := fake.lastResponse()
	require.NotNil(t, resp)
	require.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	require.Len(t, resp.Data.Embeds, 1)
	assert.Equal(t, "page 3", resp.Data.Embeds[0].Title)
	assert.NotEmpty(t, resp.Data.Components)
	assert.Equal(t, 2, sessionPage(id))
}

func TestMenuStopWithdrawsControls(t *testing.T) {
	fake := &fakeRenderer{}
	id := spawnTestMenu(t, fake, testPages(3))

	handleMenuComponent(fake, buttonPress(id, actionStop, "invoker"))

	resp := fake.lastResponse()
	require.NotNil(t, resp)
	require.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Empty(t, resp.Data.Components)
	assert.Equal(t, -1, sessionPage(id), "session should be gone after stop")

	// Presses on the dead session only acknowledge.
	handleMenuComponent(fake, buttonPress(id, actionNext, "invoker"))
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, fake.lastResponse().Type)
}

func TestMenuIdleTimeoutWithdrawsControls(t *testing.T) {
	fakeClock := clockwork.NewFakeClock()
	menuClock = fakeClock
	t.Cleanup(func() { menuClock = clockwork.NewRealClock() })

	fake := &fakeRenderer{}
	id := spawnTestMenu(t, fake, testPages(3))

	fakeClock.Advance(menuIdleTimeout + time.Second)

	require.Eventually(t, func() bool {
		return fake.editCount() == 1
	}, time.Second, time.Millisecond)

	fake.mu.Lock()
	edit := fake.edits[0]
	fake.mu.Unlock()

	require.NotNil(t, edit.Components)
	assert.Empty(t, *edit.Components)
	assert.Equal(t, "menu-message", edit.ID)
	assert.Equal(t, -1, sessionPage(id), "session should be gone after expiry")
}

func TestMenuNavigationResetsIdleTimer(t *testing.T) {
	fakeClock := clockwork.NewFakeClock()
	menuClock = fakeClock
	t.Cleanup(func() { menuClock = clockwork.NewRealClock() })

	fake := &fakeRenderer{}
	id := spawnTestMenu(t, fake, testPages(3))

	fakeClock.Advance(30 * time.Second)
	handleMenuComponent(fake, buttonPress(id, actionNext, "invoker"))

	// 70s since spawn but only 40s since the last press: still live.
	fakeClock.Advance(40 * time.Second)
	assert.Zero(t, fake.editCount())
	assert.Equal(t, 1, sessionPage(id))

	fakeClock.Advance(30 * time.Second)
	require.Eventually(t, func() bool {
		return fake.editCount() == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, -1, sessionPage(id))
}
