package db

// createTables creates the necessary tables if they don't exist in the
// database.
func (s *Store) createTables() error {
	createGuildsTableSQL := `
	CREATE TABLE IF NOT EXISTS guild_settings (
		guild_id TEXT PRIMARY KEY,
		art_channel_id TEXT NOT NULL DEFAULT '',
		upvote_emoji TEXT,
		downvote_emoji TEXT
	);`

	createAllowedUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS allowed_users (
		guild_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		PRIMARY KEY (guild_id, user_id)
	);`

	// One row per tracked message; rowid preserves registration order for
	// the ranked report.
	createVoteRecordsTableSQL := `
	CREATE TABLE IF NOT EXISTS vote_records (
		guild_id TEXT NOT NULL,
		message_id TEXT NOT NULL,
		PRIMARY KEY (guild_id, message_id)
	);`

	createVotesTableSQL := `
	CREATE TABLE IF NOT EXISTS votes (
		guild_id TEXT NOT NULL,
		message_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (guild_id, message_id, user_id)
	);`

	for _, stmt := range []string{
		createGuildsTableSQL,
		createAllowedUsersTableSQL,
		createVoteRecordsTableSQL,
		createVotesTableSQL,
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
