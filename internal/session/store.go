package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	usecase "github.com/roncastellon/BWM-walker-app-sub003/internal/usecase/schedule"
)

// Batch draft sessions are per-operator scratch space: one active
// builder per operator, invisible to everyone else, discarded on cancel
// or TTL expiry. Redis is not the persistence collaborator; nothing
// here outlives commit.

var ErrNoSession = errors.New("no active batch session")

const sessionTTL = 4 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(operatorID uint) string {
	return fmt.Sprintf("batch:%d", operatorID)
}

func (s *Store) Save(ctx context.Context, operatorID uint, sess *usecase.BatchSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(operatorID), b, sessionTTL).Err()
}

func (s *Store) Get(ctx context.Context, operatorID uint) (*usecase.BatchSession, error) {
	b, err := s.rdb.Get(ctx, key(operatorID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var sess usecase.BatchSession
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, operatorID uint) error {
	return s.rdb.Del(ctx, key(operatorID)).Err()
}
