package art

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/ledger"
	"github.com/AriusX7/advart/report"
	"github.com/AriusX7/advart/utils"
)

// votesCommand shows the tally for a single art submission.
func votesCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAllowed(s, m) {
		return
	}

	if len(args) == 0 {
		reply(s, m, "Please provide a message id.")
		return
	}

	messageID, err := utils.ParseMessageID(args[0])
	if err != nil {
		reply(s, m, "That doesn't look like a message id.")
		return
	}

	up, down, err := votes.Tally(m.GuildID, messageID)
	if err != nil {
		if errors.Is(err, ledger.ErrNoVotes) {
			reply(s, m, "Votes not recorded for the given message id.")
			return
		}
		lit.Error("error tallying votes for message %s in guild %s: %s", messageID, m.GuildID, err)
		reply(s, m, "Something went wrong while counting the votes.")
		return
	}

	reply(s, m, fmt.Sprintf("Upvotes: %d\nDownvotes: %d\nTotal: %d", up, down, up+down))
}

// allVotesCommand shows a paginated report of all stored art submissions,
// optionally ranked by net score.
func allVotesCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAllowed(s, m) {
		return
	}

	sortByNet := false
	if len(args) > 0 {
		var err error
		if sortByNet, err = utils.ParseBool(args[0]); err != nil {
			reply(s, m, "The sort flag must be `true` or `false`.")
			return
		}
	}

	settings, err := votes.Settings(m.GuildID)
	if err != nil {
		lit.Error("error loading settings for guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while loading the settings.")
		return
	}

	records, err := votes.Records(m.GuildID)
	if err != nil {
		lit.Error("error loading vote records for guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while loading the votes.")
		return
	}

	summaries, err := report.Summaries(s, settings, records, sortByNet)
	if err != nil {
		if errors.Is(err, ledger.ErrChannelNotSet) {
			reply(s, m, "Cannot find the art channel.")
			return
		}
		lit.Error("error building submission report for guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while building the report.")
		return
	}

	if len(summaries) == 0 {
		reply(s, m, "No submissions recorded!")
		return
	}

	pages := make([]*discordgo.MessageEmbed, len(summaries))
	for i, summary := range summaries {
		pages[i] = buildSummaryEmbed(summary, i+1, len(summaries))
	}

	if err := spawnMenu(s, m.ChannelID, m.Author.ID, pages); err != nil {
		lit.Error("error starting submissions menu in channel %s: %s", m.ChannelID, err)
	}
}

// clearVotesCommand wipes all stored votes after an interactive, token-gated
// confirmation. This destroys all historical tallies and is meant to be run
// between contests.
func clearVotesCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAllowed(s, m) {
		return
	}

	if err := awaitClearConfirmation(s, m); err != nil {
		switch {
		case errors.Is(err, ErrConfirmTimeout):
			reply(s, m, "Did not get confirmation, cancelling.")
		case errors.Is(err, ErrConfirmMismatch):
			reply(s, m, "Did not get a matching confirmation, cancelling.")
		default:
			lit.Error("error during clear confirmation in guild %s: %s", m.GuildID, err)
		}
		return
	}

	if err := votes.ClearVotes(m.GuildID); err != nil {
		lit.Error("error clearing votes in guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while clearing the votes.")
		return
	}

	tick(s, m)
}

// addReactCommand attaches the vote reactions to a message in the art
// channel and registers it for vote tracking.
func addReactCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !requireAllowed(s, m) {
		return
	}

	if len(args) == 0 {
		reply(s, m, "Please provide a message id.")
		return
	}

	messageID, err := utils.ParseMessageID(args[0])
	if err != nil {
		reply(s, m, "That doesn't look like a message id.")
		return
	}

	settings, err := votes.Settings(m.GuildID)
	if err != nil {
		lit.Error("error loading settings for guild %s: %s", m.GuildID, err)
		reply(s, m, "Something went wrong while loading the settings.")
		return
	}

	if settings.ArtChannelID == "" {
		reply(s, m, "Cannot find the art channel.")
		return
	}

	if _, err := s.ChannelMessage(settings.ArtChannelID, messageID); err != nil {
		reply(s, m, "Cannot find the message with provided id.")
		return
	}

	if err := votes.RegisterSubmission(m.GuildID, messageID); err != nil {
		if errors.Is(err, ledger.ErrEmojisNotSet) {
			reply(s, m, "Upvote/downvote emojis not set.")
			return
		}
		lit.Error("error registering submission %s in guild %s: %s", messageID, m.GuildID, err)
		reply(s, m, "Something went wrong while registering the submission.")
		return
	}

	// Cancel marker goes last so members see up / down / cancel in order.
	for _, emoji := range []string{
		settings.UpvoteEmoji.APIName(),
		settings.DownvoteEmoji.APIName(),
		"❌",
	} {
		if err := s.MessageReactionAdd(settings.ArtChannelID, messageID, emoji); err != nil {
			lit.Error("error adding reaction %s to message %s: %s", emoji, messageID, err)
		}
	}

	tick(s, m)
}
