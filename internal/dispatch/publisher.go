package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	groupingQueueKey = "case_grouping_queue"
)

// CaseQueuedEvent - задание на группировку нового обращения.
// Решение о группировке принимается вне цикла запрос-ответ:
// обработчик создания обращения кладет событие в очередь и не ждет результата.
type CaseQueuedEvent struct {
	EventID  string    `json:"event_id"`
	CaseID   int64     `json:"case_id"`
	QueuedAt time.Time `json:"queued_at"`
}

// Publisher - интерфейс для постановки обращений в очередь группировки
type Publisher interface {
	PublishCaseCreated(ctx context.Context, caseID int64) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// PublishCaseCreated публикует событие о новом обращении в очередь Redis
func (p *RedisPublisher) PublishCaseCreated(ctx context.Context, caseID int64) error {
	event := CaseQueuedEvent{
		EventID:  uuid.NewString(),
		CaseID:   caseID,
		QueuedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal case queued event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, groupingQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish case queued event to Redis: %w", err)
	}
	return nil
}
