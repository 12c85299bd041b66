package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	persistentTTL = 30 * 24 * time.Hour
	ephemeralTTL  = 12 * time.Hour
)

// RedisSessionStore keeps sessions under session:<token> with a per-user
// index set so DeleteByUser can clear remembered logins.
type RedisSessionStore struct {
	rdb *redis.Client
}

var _ interfaces.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess entities.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	ttl := ephemeralTTL
	if sess.Persistent {
		ttl = persistentTTL
	}
	if err := s.rdb.Set(ctx, tokenKey(sess.Token), data, ttl).Err(); err != nil {
		return err
	}
	return s.rdb.SAdd(ctx, userKey(sess.UserID), sess.Token).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (entities.Session, error) {
	data, err := s.rdb.Get(ctx, tokenKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, err
	}
	var sess entities.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return entities.Session{}, err
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	sess, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	if sess.Token != "" {
		if err := s.rdb.SRem(ctx, userKey(sess.UserID), token).Err(); err != nil {
			return err
		}
	}
	return s.rdb.Del(ctx, tokenKey(token)).Err()
}

func (s *RedisSessionStore) DeleteByUser(ctx context.Context, userID int) error {
	tokens, err := s.rdb.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return err
	}
	for _, token := range tokens {
		if err := s.rdb.Del(ctx, tokenKey(token)).Err(); err != nil {
			return err
		}
	}
	return s.rdb.Del(ctx, userKey(userID)).Err()
}

func tokenKey(token string) string {
	return "session:" + token
}

func userKey(userID int) string {
	return fmt.Sprintf("user_sessions:%d", userID)
}
