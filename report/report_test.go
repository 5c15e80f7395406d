package report

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AriusX7/advart/ledger"
	"github.com/AriusX7/advart/model"
)

// fakeFetcher serves canned messages; absent IDs fail like deleted messages.
type fakeFetcher struct {
	messages map[string]*discordgo.Message
}

func (f *fakeFetcher) ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	message, ok := f.messages[messageID]
	if !ok {
		return nil, errors.New("unknown message")
	}
	return message, nil
}

func imageMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		Content: content,
		Attachments: []*discordgo.MessageAttachment{
			{ProxyURL: "https://media.example/" + content + ".png"},
		},
	}
}

func record(messageID string, up, down int) model.VoteRecord {
	scores := map[string]int{}
	for i := 0; i < up; i++ {
		scores["up"+messageID+string(rune('a'+i))] = model.Upvote
	}
	for i := 0; i < down; i++ {
		scores["down"+messageID+string(rune('a'+i))] = model.Downvote
	}
	return model.VoteRecord{MessageID: messageID, Scores: scores}
}

func testSettings() model.GuildSettings {
	return model.GuildSettings{GuildID: "guild", ArtChannelID: "channel"}
}

func TestSummariesRequiresArtChannel(t *testing.T) {
	_, err := Summaries(&fakeFetcher{}, model.GuildSettings{GuildID: "guild"}, nil, false)
	assert.ErrorIs(t, err, ledger.ErrChannelNotSet)
}

func TestSummariesSkipsUnfetchableMessages(t *testing.T) {
	fetcher := &fakeFetcher{messages: map[string]*discordgo.Message{
		"msg1": imageMessage("one"),
	}}

	summaries, err := Summaries(fetcher, testSettings(), []model.VoteRecord{
		record("msg1", 1, 0),
		record("deleted", 5, 0),
	}, false)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, "msg1", summaries[0].MessageID)
}

func TestSummariesSkipsMessagesWithoutImages(t *testing.T) {
	fetcher := &fakeFetcher{messages: map[string]*discordgo.Message{
		"msg1": imageMessage("one"),
		"msg2": {Content: "no attachment"},
	}}

	summaries, err := Summaries(fetcher, testSettings(), []model.VoteRecord{
		record("msg1", 1, 0),
		record("msg2", 3, 0),
	}, false)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, "msg1", summaries[0].MessageID)
}

func TestSummariesPreservesOrderWithoutSort(t *testing.T) {
	fetcher := &fakeFetcher{messages: map[string]*discordgo.Message{
		"msg1": imageMessage("one"),
		"msg2": imageMessage("two"),
		"msg3": imageMessage("three"),
	}}

	summaries, err := Summaries(fetcher, testSettings(), []model.VoteRecord{
		record("msg1", 0, 2),
		record("msg2", 5, 0),
		record("msg3", 1, 0),
	}, false)
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, "msg1", summaries[0].MessageID)
	assert.Equal(t, "msg2", summaries[1].MessageID)
	assert.Equal(t, "msg3", summaries[2].MessageID)
}

func TestSummariesSortByNet(t *testing.T) {
	fetcher := &fakeFetcher{messages: map[string]*discordgo.Message{
		"msg1": imageMessage("one"),
		"msg2": imageMessage("two"),
		"msg3": imageMessage("three"),
		"msg4": imageMessage("four"),
	}}

	// Nets: msg1 = -2, msg2 = +1, msg3 = +1, msg4 = +3. The msg2/msg3 tie
	// must keep discovery order.
	summaries, err := Summaries(fetcher, testSettings(), []model.VoteRecord{
		record("msg1", 0, 2),
		record("msg2", 2, 1),
		record("msg3", 1, 0),
		record("msg4", 3, 0),
	}, true)
	require.NoError(t, err)

	require.Len(t, summaries, 4)
	assert.Equal(t, "msg4", summaries[0].MessageID)
	assert.Equal(t, "msg2", summaries[1].MessageID)
	assert.Equal(t, "msg3", summaries[2].MessageID)
	assert.Equal(t, "msg1", summaries[3].MessageID)

	for i := 1; i < len(summaries); i++ {
		assert.GreaterOrEqual(t, summaries[i-1].Net(), summaries[i].Net())
	}
}

func TestSummaryFields(t *testing.T) {
	fetcher := &fakeFetcher{messages: map[string]*discordgo.Message{
		"msg1": imageMessage("one"),
	}}

	summaries, err := Summaries(fetcher, testSettings(), []model.VoteRecord{
		record("msg1", 2, 1),
	}, false)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, "one", summary.Content)
	assert.Equal(t, "https://media.example/one.png", summary.ImageURL)
	assert.Equal(t, "https://discord.com/channels/guild/channel/msg1", summary.JumpLink)
	assert.Equal(t, 2, summary.Upvotes)
	assert.Equal(t, 1, summary.Downvotes)
	assert.Equal(t, 1, summary.Net())
}

func TestSummariesEmpty(t *testing.T) {
	summaries, err := Summaries(&fakeFetcher{}, testSettings(), nil, true)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
