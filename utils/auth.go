package utils

import (
	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"
)

// IsAdministrator reports whether the user holds the Administrator
// permission in the given channel.
func IsAdministrator(s *discordgo.Session, userID, channelID string) bool {
	perms, err := s.UserChannelPermissions(userID, channelID)
	if err != nil {
		lit.Error("error resolving permissions for user %s in channel %s: %s", userID, channelID, err)
		return false
	}

	return perms&discordgo.PermissionAdministrator != 0
}
