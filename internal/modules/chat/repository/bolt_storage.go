package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/oops"
	bolt "go.etcd.io/bbolt"
)

var bucketChats = []byte("chats")

// BoltStorage implements Repository on a single bbolt file
type BoltStorage struct {
	db *bolt.DB
}

// NewBoltStorage opens (or creates) groupwatch.db under basePath
func NewBoltStorage(basePath string) (*BoltStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	path := filepath.Join(basePath, "groupwatch.db")
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, oops.With("path", path, "context", "failed to open bolt database").Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(bucketChats)
		return e
	})
	if err != nil {
		_ = db.Close()
		return nil, oops.With("path", path, "context", "failed to create chats bucket").Wrap(err)
	}

	return &BoltStorage{db: db}, nil
}

func chatKey(chatID int64) []byte {
	return []byte(strconv.FormatInt(chatID, 10))
}

func (s *BoltStorage) EnsureChat(_ context.Context, chatID int64) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketChats)
		now := time.Now().UTC()
		chat := domain.Chat{ID: chatID, FirstSeen: now, UpdatedAt: now}

		if v := bucket.Get(chatKey(chatID)); v != nil {
			var existing domain.Chat
			if err := json.Unmarshal(v, &existing); err == nil {
				chat.FirstSeen = existing.FirstSeen
			}
		}

		b, err := json.Marshal(chat)
		if err != nil {
			return err
		}
		return bucket.Put(chatKey(chatID), b)
	})
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to ensure chat").Wrap(err)
	}
	return nil
}

func (s *BoltStorage) RemoveChat(_ context.Context, chatID int64) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketChats).Delete(chatKey(chatID))
	})
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to remove chat").Wrap(err)
	}
	return nil
}

func (s *BoltStorage) GetChat(_ context.Context, chatID int64) (*domain.Chat, error) {
	var chat domain.Chat
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketChats).Get(chatKey(chatID))
		if v == nil {
			return errors.ErrChatNotFound
		}
		return json.Unmarshal(v, &chat)
	})
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *BoltStorage) GetAllChats(_ context.Context) ([]*domain.Chat, error) {
	chats := make([]*domain.Chat, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketChats).ForEach(func(_, v []byte) error {
			var chat domain.Chat
			if err := json.Unmarshal(v, &chat); err != nil {
				return err
			}
			chats = append(chats, &chat)
			return nil
		})
	})
	if err != nil {
		return nil, oops.With("context", "failed to list chats").Wrap(err)
	}
	return chats, nil
}

func (s *BoltStorage) Close() error { return s.db.Close() }
