package db

import (
	"database/sql"

	"github.com/bwmarrin/lit"
	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Store wraps the SQLite connection and implements the guild settings,
// allow-list and vote record persistence used by the rest of the bot.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and creates
// tables if they don't exist.
func Open(source string) (*Store, error) {
	conn, err := sql.Open(dbDriver, source)
	if err != nil {
		return nil, err
	}

	s := &Store{db: conn}
	if err := s.createTables(); err != nil {
		conn.Close()
		return nil, err
	}

	lit.Info("database connection initialized")
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}
