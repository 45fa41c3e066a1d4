package repository

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/oops"

	_ "modernc.org/sqlite"
)

// SQLiteStorage implements Repository on an embedded SQLite database
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens groupwatch.sqlite under basePath and creates the schema
func NewSQLiteStorage(basePath string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create db directory").Wrap(err)
	}

	path := filepath.Join(basePath, "groupwatch.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, oops.With("path", path, "context", "failed to open database").Wrap(err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS chats (
			chat_id INTEGER PRIMARY KEY,
			first_seen INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, oops.With("path", path, "context", "failed to create table").Wrap(err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) EnsureChat(ctx context.Context, chatID int64) error {
	now := time.Now().UTC().UnixNano()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chats (chat_id, first_seen, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET updated_at = excluded.updated_at
	`, chatID, now, now)
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to ensure chat").Wrap(err)
	}
	return nil
}

func (s *SQLiteStorage) RemoveChat(ctx context.Context, chatID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chats WHERE chat_id = ?`, chatID); err != nil {
		return oops.With("chat_id", chatID, "context", "failed to remove chat").Wrap(err)
	}
	return nil
}

func (s *SQLiteStorage) GetChat(ctx context.Context, chatID int64) (*domain.Chat, error) {
	row := s.db.QueryRowContext(ctx, `SELECT chat_id, first_seen, updated_at FROM chats WHERE chat_id = ?`, chatID)

	var chat domain.Chat
	var firstSeen, updatedAt int64
	err := row.Scan(&chat.ID, &firstSeen, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.ErrChatNotFound
	}
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to query chat").Wrap(err)
	}

	chat.FirstSeen = time.Unix(0, firstSeen).UTC()
	chat.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &chat, nil
}

func (s *SQLiteStorage) GetAllChats(ctx context.Context) ([]*domain.Chat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT chat_id, first_seen, updated_at FROM chats ORDER BY chat_id`)
	if err != nil {
		return nil, oops.With("context", "failed to list chats").Wrap(err)
	}
	defer rows.Close()

	chats := make([]*domain.Chat, 0)
	for rows.Next() {
		var chat domain.Chat
		var firstSeen, updatedAt int64
		if err := rows.Scan(&chat.ID, &firstSeen, &updatedAt); err != nil {
			return nil, oops.With("context", "failed to scan chat").Wrap(err)
		}
		chat.FirstSeen = time.Unix(0, firstSeen).UTC()
		chat.UpdatedAt = time.Unix(0, updatedAt).UTC()
		chats = append(chats, &chat)
	}
	return chats, rows.Err()
}

func (s *SQLiteStorage) Close() error { return s.db.Close() }
