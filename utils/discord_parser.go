package utils

import (
	"errors"
	"regexp"

	"github.com/AriusX7/advart/model"
)

var (
	reChannelMention = regexp.MustCompile(`^<#(\d+)>$`)
	reUserMention    = regexp.MustCompile(`^<@!?(\d+)>$`)
	reCustomEmoji    = regexp.MustCompile(`^<a?:([^:\s]+):(\d+)>$`)
	reMessageID      = regexp.MustCompile(`^\d{15,21}$`)
)

// ParseChannelMention extracts the channel ID from a <#id> mention.
func ParseChannelMention(arg string) (string, error) {
	matches := reChannelMention.FindStringSubmatch(arg)
	if len(matches) != 2 {
		return "", errors.New("invalid channel mention")
	}
	return matches[1], nil
}

// ParseUserMention extracts the user ID from a <@id> or <@!id> mention.
func ParseUserMention(arg string) (string, error) {
	matches := reUserMention.FindStringSubmatch(arg)
	if len(matches) != 2 {
		return "", errors.New("invalid user mention")
	}
	return matches[1], nil
}

// ParseEmoji parses a custom emoji in <:name:id> or <a:name:id> form, or a
// plain unicode emoji. Unicode emoji have no ID; their name is the character
// itself, which is also how reaction events report them.
func ParseEmoji(arg string) (model.EmojiRef, error) {
	if matches := reCustomEmoji.FindStringSubmatch(arg); len(matches) == 3 {
		return model.EmojiRef{Name: matches[1], ID: matches[2]}, nil
	}

	if arg == "" || arg[0] == '<' {
		return model.EmojiRef{}, errors.New("invalid emoji")
	}
	return model.EmojiRef{Name: arg}, nil
}

// ParseMessageID validates that the argument looks like a message snowflake.
func ParseMessageID(arg string) (string, error) {
	if !reMessageID.MatchString(arg) {
		return "", errors.New("invalid message id")
	}
	return arg, nil
}

// ParseBool interprets the optional sort flag of the allvotes command. An
// empty argument is false.
func ParseBool(arg string) (bool, error) {
	switch arg {
	case "", "false", "no", "n", "0", "off":
		return false, nil
	case "true", "yes", "y", "1", "on":
		return true, nil
	}
	return false, errors.New("invalid boolean flag")
}
