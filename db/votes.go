package db

import (
	"database/sql"
	"time"

	"github.com/AriusX7/advart/model"
)

// EnsureRecord creates an empty vote record for a message if one doesn't
// exist yet. No-op when the message is already tracked.
func (s *Store) EnsureRecord(guildID, messageID string) error {
	_, err := s.db.Exec(
		"INSERT INTO vote_records (guild_id, message_id) VALUES (?, ?) ON CONFLICT(guild_id, message_id) DO NOTHING",
		guildID, messageID,
	)
	return err
}

// UpsertVote records a user's score for a message, overwriting any score the
// user cast earlier. The vote record is created if absent.
func (s *Store) UpsertVote(guildID, messageID, userID string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO vote_records (guild_id, message_id) VALUES (?, ?) ON CONFLICT(guild_id, message_id) DO NOTHING",
		guildID, messageID,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO votes (guild_id, message_id, user_id, score, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(guild_id, message_id, user_id) DO UPDATE SET
		score = excluded.score,
		created_at = excluded.created_at
	`, guildID, messageID, userID, score, time.Now().Unix())
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Record returns the vote record for a message. The bool reports whether the
// message is tracked at all; an empty record for a tracked message is not an
// error.
func (s *Store) Record(guildID, messageID string) (model.VoteRecord, bool, error) {
	record := model.VoteRecord{MessageID: messageID, Scores: map[string]int{}}

	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM vote_records WHERE guild_id = ? AND message_id = ?",
		guildID, messageID,
	).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return record, false, nil
		}
		return record, false, err
	}

	rows, err := s.db.Query(
		"SELECT user_id, score FROM votes WHERE guild_id = ? AND message_id = ?",
		guildID, messageID,
	)
	if err != nil {
		return record, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var score int
		if err := rows.Scan(&userID, &score); err != nil {
			return record, false, err
		}
		record.Scores[userID] = score
	}

	return record, true, rows.Err()
}

// Records returns every vote record of the guild in registration order.
func (s *Store) Records(guildID string) ([]model.VoteRecord, error) {
	rows, err := s.db.Query(
		"SELECT message_id FROM vote_records WHERE guild_id = ? ORDER BY rowid",
		guildID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.VoteRecord
	for rows.Next() {
		var messageID string
		if err := rows.Scan(&messageID); err != nil {
			return nil, err
		}
		records = append(records, model.VoteRecord{MessageID: messageID, Scores: map[string]int{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		record, _, err := s.Record(guildID, records[i].MessageID)
		if err != nil {
			return nil, err
		}
		records[i].Scores = record.Scores
	}

	return records, nil
}

// ClearVotes deletes every vote record and score of the guild. This is the
// only operation that removes records.
func (s *Store) ClearVotes(guildID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM votes WHERE guild_id = ?", guildID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM vote_records WHERE guild_id = ?", guildID); err != nil {
		return err
	}

	return tx.Commit()
}
