package db

import "database/sql"

// AllowUser adds a user to the guild's allow list. Adding a user twice is a
// no-op.
func (s *Store) AllowUser(guildID, userID string) error {
	_, err := s.db.Exec(
		"INSERT INTO allowed_users (guild_id, user_id) VALUES (?, ?) ON CONFLICT(guild_id, user_id) DO NOTHING",
		guildID, userID,
	)
	return err
}

// DisallowUser removes a user from the guild's allow list. The returned bool
// reports whether the user was actually present.
func (s *Store) DisallowUser(guildID, userID string) (bool, error) {
	res, err := s.db.Exec(
		"DELETE FROM allowed_users WHERE guild_id = ? AND user_id = ?",
		guildID, userID,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsAllowed reports whether a user is on the guild's allow list.
func (s *Store) IsAllowed(guildID, userID string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM allowed_users WHERE guild_id = ? AND user_id = ?",
		guildID, userID,
	).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
