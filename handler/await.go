package handler

import (
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
)

// ErrAwaitTimeout is returned when no message arrives within the wait
// window.
var ErrAwaitTimeout = errors.New("timed out waiting for a message")

// Clock drives await timeouts; tests swap in a fake.
var Clock clockwork.Clock = clockwork.NewRealClock()

type awaitKey struct {
	channelID string
	userID    string
}

var (
	awaitMu sync.Mutex
	awaited = make(map[awaitKey]chan string)
)

// AwaitMessage suspends the calling handler until the given user sends
// their next message in the given channel, or the timeout elapses. At most
// one wait per (channel, user) pair is active; a later wait replaces an
// earlier one.
func AwaitMessage(channelID, userID string, timeout time.Duration) (string, error) {
	key := awaitKey{channelID: channelID, userID: userID}
	ch := make(chan string, 1)

	awaitMu.Lock()
	awaited[key] = ch
	awaitMu.Unlock()

	defer func() {
		awaitMu.Lock()
		if awaited[key] == ch {
			delete(awaited, key)
		}
		awaitMu.Unlock()
	}()

	select {
	case content := <-ch:
		return content, nil
	case <-Clock.After(timeout):
		return "", ErrAwaitTimeout
	}
}

// deliverAwaited hands the message to a pending AwaitMessage call, if any.
// It reports whether the message was consumed.
func deliverAwaited(m *discordgo.MessageCreate) bool {
	key := awaitKey{channelID: m.ChannelID, userID: m.Author.ID}

	awaitMu.Lock()
	ch, ok := awaited[key]
	if ok {
		delete(awaited, key)
	}
	awaitMu.Unlock()

	if !ok {
		return false
	}

	ch <- m.Content
	return true
}
