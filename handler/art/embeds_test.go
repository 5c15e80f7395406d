package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AriusX7/advart/report"
)

func TestBuildSummaryEmbed(t *testing.T) {
	summary := report.Summary{
		MessageID: "msg",
		Content:   "my latest piece",
		ImageURL:  "https://media.example/art.png",
		JumpLink:  "https://discord.com/channels/g/c/msg",
		Upvotes:   4,
		Downvotes: 1,
	}

	embed := buildSummaryEmbed(summary, 2, 7)

	assert.Contains(t, embed.Description, "my latest piece")
	assert.Contains(t, embed.Description, "[Jump to message!](https://discord.com/channels/g/c/msg)")

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "4", embed.Fields[0].Value)
	assert.Equal(t, "1", embed.Fields[1].Value)
	assert.Equal(t, "5", embed.Fields[2].Value)

	require.NotNil(t, embed.Image)
	assert.Equal(t, "https://media.example/art.png", embed.Image.URL)

	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Page 2 of 7", embed.Footer.Text)
}
