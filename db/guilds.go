package db

import (
	"database/sql"

	"github.com/goccy/go-json"

	"github.com/AriusX7/advart/model"
)

// Guild retrieves a guild's settings, creating the row with defaults if the
// guild has never been configured.
func (s *Store) Guild(guildID string) (model.GuildSettings, error) {
	settings := model.GuildSettings{GuildID: guildID}

	var up, down sql.NullString
	err := s.db.QueryRow(
		"SELECT art_channel_id, upvote_emoji, downvote_emoji FROM guild_settings WHERE guild_id = ?",
		guildID,
	).Scan(&settings.ArtChannelID, &up, &down)
	if err != nil {
		if err == sql.ErrNoRows {
			// First access for this guild, create a default row. Concurrent
			// first accesses (a command and a reaction event) may both get
			// here, so the insert has to tolerate losing the race.
			_, err = s.db.Exec("INSERT INTO guild_settings(guild_id) VALUES(?) ON CONFLICT(guild_id) DO NOTHING", guildID)
			if err != nil {
				return settings, err
			}
			return settings, nil
		}
		return settings, err
	}

	if settings.UpvoteEmoji, err = unmarshalEmoji(up); err != nil {
		return settings, err
	}
	if settings.DownvoteEmoji, err = unmarshalEmoji(down); err != nil {
		return settings, err
	}

	return settings, nil
}

// SetArtChannel overwrites the guild's art channel. An empty channel ID
// disables the feature for the guild.
func (s *Store) SetArtChannel(guildID, channelID string) error {
	_, err := s.db.Exec(`
		INSERT INTO guild_settings (guild_id, art_channel_id) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET art_channel_id = excluded.art_channel_id
	`, guildID, channelID)
	return err
}

// SetVoteEmojis overwrites both vote emoji in a single statement so readers
// never observe only one of the pair updated.
func (s *Store) SetVoteEmojis(guildID string, up, down model.EmojiRef) error {
	upJSON, err := json.Marshal(up)
	if err != nil {
		return err
	}
	downJSON, err := json.Marshal(down)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO guild_settings (guild_id, upvote_emoji, downvote_emoji) VALUES (?, ?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
		upvote_emoji = excluded.upvote_emoji,
		downvote_emoji = excluded.downvote_emoji
	`, guildID, string(upJSON), string(downJSON))
	return err
}

func unmarshalEmoji(col sql.NullString) (*model.EmojiRef, error) {
	if !col.Valid || col.String == "" {
		return nil, nil
	}

	var ref model.EmojiRef
	if err := json.Unmarshal([]byte(col.String), &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}
