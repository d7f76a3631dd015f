package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/models"
)

const sessionKeyPrefix = "dailyreport:session:"

type redisSessionRepo struct {
	client *redis.Client
}

// NewRedisClient connects to the configured redis and pings it once.
func NewRedisClient(c *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddress,
		Password: c.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "ping redis at %s", c.RedisAddress)
	}
	return client, nil
}

// NewRedisSessionRepo keeps sessions in redis; expiry is delegated to key TTLs.
func NewRedisSessionRepo(client *redis.Client) SessionRepository {
	return &redisSessionRepo{client: client}
}

func (r *redisSessionRepo) FindSession(ctx context.Context, id string) (*models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "get session")
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	if session.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (r *redisSessionRepo) SaveSession(ctx context.Context, session *models.Session) error {
	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return r.DeleteSession(ctx, session.ID)
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "set session")
	}
	session.MarkClean()
	return nil
}

func (r *redisSessionRepo) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

// DeleteExpiredSessions is a no-op: redis evicts expired keys itself.
func (r *redisSessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
