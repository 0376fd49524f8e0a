package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis creates a Redis client and checks that it answers.
func NewRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

// redisPublisherClient is the subset of *redis.Client the publisher needs.
type redisPublisherClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher forwards events to the notifications:<userID> channel so
// other consumers (push, email) can pick them up.
type RedisPublisher struct {
	rdb redisPublisherClient
	log *slog.Logger
}

func NewRedisPublisher(rdb redisPublisherClient, log *slog.Logger) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, log: log}
}

func NotificationChannel(userID models.UserID) string {
	return fmt.Sprintf("notifications:%d", userID)
}

func (p *RedisPublisher) Publish(ctx context.Context, userID models.UserID, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("marshal notification", "type", ev.Type, "err", err)
		return
	}
	if err := p.rdb.Publish(ctx, NotificationChannel(userID), payload).Err(); err != nil {
		p.log.Warn("publish notification", "user_id", userID, "type", ev.Type, "err", err)
	}
}
