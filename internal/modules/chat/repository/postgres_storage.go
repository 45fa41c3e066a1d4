package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/oops"
)

// PostgresStorage implements Repository on a pgx connection pool
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage connects to databaseURL and creates the chats table
func NewPostgresStorage(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, oops.With("context", "failed to create postgres pool").Wrap(err)
	}

	_, err = pool.Exec(ctx, `create table if not exists chats (
		chat_id bigint primary key,
		first_seen timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`)
	if err != nil {
		pool.Close()
		return nil, oops.With("context", "failed to create chats table").Wrap(err)
	}

	return &PostgresStorage{pool: pool}, nil
}

func (s *PostgresStorage) EnsureChat(ctx context.Context, chatID int64) error {
	_, err := s.pool.Exec(ctx, `insert into chats (chat_id) values ($1)
		on conflict (chat_id) do update set updated_at = now()`, chatID)
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to ensure chat").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) RemoveChat(ctx context.Context, chatID int64) error {
	if _, err := s.pool.Exec(ctx, `delete from chats where chat_id = $1`, chatID); err != nil {
		return oops.With("chat_id", chatID, "context", "failed to remove chat").Wrap(err)
	}
	return nil
}

func (s *PostgresStorage) GetChat(ctx context.Context, chatID int64) (*domain.Chat, error) {
	var chat domain.Chat
	err := s.pool.QueryRow(ctx, `select chat_id, first_seen, updated_at from chats where chat_id = $1`, chatID).
		Scan(&chat.ID, &chat.FirstSeen, &chat.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, errors.ErrChatNotFound
	}
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to query chat").Wrap(err)
	}
	return &chat, nil
}

func (s *PostgresStorage) GetAllChats(ctx context.Context) ([]*domain.Chat, error) {
	rows, err := s.pool.Query(ctx, `select chat_id, first_seen, updated_at from chats order by chat_id`)
	if err != nil {
		return nil, oops.With("context", "failed to list chats").Wrap(err)
	}
	defer rows.Close()

	chats := make([]*domain.Chat, 0)
	for rows.Next() {
		var chat domain.Chat
		if err := rows.Scan(&chat.ID, &chat.FirstSeen, &chat.UpdatedAt); err != nil {
			return nil, oops.With("context", "failed to scan chat").Wrap(err)
		}
		chats = append(chats, &chat)
	}
	return chats, rows.Err()
}

func (s *PostgresStorage) Close() error {
	s.pool.Close()
	return nil
}
