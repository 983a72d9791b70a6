package chatRepository

import (
	"ElectionAssistant/internal/entity"
	contextPkg "ElectionAssistant/pkg/context"
	"ElectionAssistant/pkg/redis"
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type redisRepository struct {
	redis  redis.IRedis
	log    *logrus.Logger
	config Config
}

func NewRedisRepository(client redis.IRedis, log *logrus.Logger, config Config) Repository {
	return &redisRepository{
		redis:  client,
		log:    log,
		config: config,
	}
}

func (r *redisRepository) AppendMessage(ctx context.Context, sessionID string, msg entity.Message) error {
	requestID := contextPkg.GetRequestID(ctx)

	payload, err := jsoniter.MarshalToString(msg)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal message")
		return err
	}

	if err := r.redis.PushList(ctx, historyKey(sessionID), payload, int64(r.config.HistoryLimit), r.config.SessionTTL); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to append message to history")
		return err
	}

	return nil
}

func (r *redisRepository) GetMessages(ctx context.Context, sessionID string) ([]entity.Message, error) {
	requestID := contextPkg.GetRequestID(ctx)

	values, err := r.redis.GetList(ctx, historyKey(sessionID))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read message history")
		return nil, err
	}

	messages := make([]entity.Message, 0, len(values))
	for _, v := range values {
		var msg entity.Message
		if err := jsoniter.UnmarshalFromString(v, &msg); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Skipping malformed history entry")
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (r *redisRepository) ClearMessages(ctx context.Context, sessionID string) error {
	if err := r.redis.Delete(ctx, historyKey(sessionID)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to clear message history")
		return err
	}
	return nil
}
