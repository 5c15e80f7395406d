package art

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/AriusX7/advart/handler"
)

const confirmTimeout = 60 * time.Second

var (
	// ErrConfirmTimeout means the author never answered the prompt.
	ErrConfirmTimeout = errors.New("confirmation timed out")
	// ErrConfirmMismatch means the answer didn't match the token.
	ErrConfirmMismatch = errors.New("confirmation did not match")
)

// awaitClearConfirmation prompts the author with a one-time token and
// suspends until they repeat it in the same channel. On timeout or a
// mismatched answer the caller must abort without mutating anything.
func awaitClearConfirmation(s *discordgo.Session, m *discordgo.MessageCreate) error {
	token := uuid.New().String()

	reply(s, m, fmt.Sprintf(
		"Running this command will **clear all stored votes.** "+
			"You should only use it at the end of a contest, after results have been announced. "+
			"If you wish to continue, enter this token as your next message.\n\n%s",
		token,
	))

	answer, err := handler.AwaitMessage(m.ChannelID, m.Author.ID, confirmTimeout)
	if err != nil {
		return ErrConfirmTimeout
	}

	if strings.TrimSpace(answer) != token {
		return ErrConfirmMismatch
	}

	return nil
}
