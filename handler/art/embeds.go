package art

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/AriusX7/advart/report"
)

const embedColor = 0xFFCA33

// buildSummaryEmbed renders one submission summary as a report page.
// Position is 1-based.
func buildSummaryEmbed(summary report.Summary, position, total int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: fmt.Sprintf("%s\n\n[Jump to message!](%s)", summary.Content, summary.JumpLink),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Upvotes", Value: fmt.Sprintf("%d", summary.Upvotes), Inline: true},
			{Name: "Downvotes", Value: fmt.Sprintf("%d", summary.Downvotes), Inline: true},
			{Name: "Total", Value: fmt.Sprintf("%d", summary.Upvotes+summary.Downvotes), Inline: true},
		},
		Image: &discordgo.MessageEmbedImage{
			URL: summary.ImageURL,
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d", position, total),
		},
	}
}
