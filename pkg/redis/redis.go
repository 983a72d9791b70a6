package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrNotConfigured = errors.New("redis address not configured")

type IRedis interface {
	PushList(ctx context.Context, key string, value string, maxLen int64, expiration time.Duration) error
	GetList(ctx context.Context, key string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

type redisClient struct {
	client *redis.Client
}

// New connects using REDIS_ADDRESS, REDIS_PASSWORD and REDIS_DB. It returns
// ErrNotConfigured when no address is set so callers can fall back to memory.
func New() (IRedis, error) {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		return nil, ErrNotConfigured
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")
	return NewFromClient(client), nil
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

// PushList appends value, trims the list to its newest maxLen entries and
// refreshes the key's expiration in one transaction.
func (r *redisClient) PushList(ctx context.Context, key string, value string, maxLen int64, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Appending to list %s", key))

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, value)
		if maxLen > 0 {
			pipe.LTrim(ctx, key, -maxLen, -1)
		}
		if expiration > 0 {
			pipe.Expire(ctx, key, expiration)
		}
		return nil
	})
	if err != nil {
		logrus.Error(fmt.Sprintf("Error appending to list %s: %v", key, err))
		return err
	}

	return nil
}

func (r *redisClient) GetList(ctx context.Context, key string) ([]string, error) {
	logrus.Debug(fmt.Sprintf("Reading list %s", key))

	values, err := r.client.LRange(ctx, key, 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading list %s: %v", key, err))
		return nil, err
	}

	return values, nil
}

func (r *redisClient) Delete(ctx context.Context, key string) error {
	logrus.Debug(fmt.Sprintf("Deleting key %s", key))

	result, err := r.client.Del(ctx, key).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting key %s: %v", key, err))
		return err
	}

	if result == 0 {
		logrus.Debug(fmt.Sprintf("Key %s not found for deletion", key))
	}

	return nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
