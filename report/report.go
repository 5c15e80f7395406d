// Package report turns ledger state into human-facing submission summaries.
package report

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/ledger"
	"github.com/AriusX7/advart/model"
)

// Fetcher retrieves a single message from a channel. *discordgo.Session
// satisfies it.
type Fetcher interface {
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Summary is one renderable entry of the ranked report.
type Summary struct {
	MessageID string
	Content   string
	ImageURL  string
	JumpLink  string
	Upvotes   int
	Downvotes int
}

// Net is the ranking key: upvotes minus downvotes. It can be negative.
func (s Summary) Net() int {
	return s.Upvotes - s.Downvotes
}

// Summaries builds one summary per tracked submission of the guild.
//
// Messages that cannot be fetched (deleted, missing permissions) are logged
// and skipped, as are messages without an image attachment; the showcase
// summary requires an image. With sortByNet the result is sorted descending
// by net score (stable, ties keep registration order); otherwise
// registration order is preserved.
func Summaries(f Fetcher, settings model.GuildSettings, records []model.VoteRecord, sortByNet bool) ([]Summary, error) {
	if settings.ArtChannelID == "" {
		return nil, ledger.ErrChannelNotSet
	}

	var summaries []Summary
	for _, record := range records {
		message, err := f.ChannelMessage(settings.ArtChannelID, record.MessageID)
		if err != nil {
			lit.Error("error fetching message %s in guild %s: %s", record.MessageID, settings.GuildID, err)
			continue
		}

		if len(message.Attachments) < 1 {
			continue
		}

		up, down := ledger.CountVotes(record)

		summaries = append(summaries, Summary{
			MessageID: record.MessageID,
			Content:   message.Content,
			ImageURL:  message.Attachments[0].ProxyURL,
			JumpLink:  jumpLink(settings.GuildID, settings.ArtChannelID, record.MessageID),
			Upvotes:   up,
			Downvotes: down,
		})
	}

	if sortByNet {
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Net() > summaries[j].Net()
		})
	}

	return summaries, nil
}

func jumpLink(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}
