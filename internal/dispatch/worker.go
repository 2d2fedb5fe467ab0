package dispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// GroupingEvaluator - движок группировки, вызываемый воркером для каждого
// события из очереди
type GroupingEvaluator interface {
	EvaluateGrouping(ctx context.Context, caseID int64) (*models.GroupingResult, error)
}

// GroupFormedEvent - полезная нагрузка вебхука о сформированной группе
type GroupFormedEvent struct {
	EventID     string    `json:"event_id"`
	CaseGroupID int64     `json:"case_group_id"`
	CaseIDs     []int64   `json:"case_ids"`
	Timestamp   time.Time `json:"timestamp"`
}

// Worker - структура для обработки очереди группировки
type Worker struct {
	redisClient *redis.Client
	grouping    GroupingEvaluator
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, grouping GroupingEvaluator, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		grouping:    grouping,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди группировки
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting grouping worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping grouping worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, groupingQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop case queued event from Redis")
					time.Sleep(w.cfg.WebhookBaseDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event CaseQueuedEvent
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal case queued event from Redis")
					continue
				}

				w.processCaseQueuedEvent(ctx, event)
			}
		}
	}()
}

func (w *Worker) processCaseQueuedEvent(ctx context.Context, event CaseQueuedEvent) {
	log := w.logger.WithField("event_id", event.EventID).WithField("case_id", event.CaseID)
	log.Debug("Evaluating grouping for queued case...")

	res, err := w.grouping.EvaluateGrouping(ctx, event.CaseID)
	if err != nil {
		// Обращение могло быть закрыто или сгруппировано, пока событие лежало
		// в очереди. Это не повод для повторной постановки.
		log.WithError(err).Warn("Grouping evaluation skipped")
		return
	}

	if !res.GroupCreated {
		log.WithField("cases_found", len(res.CasesFound)).Debug("No group formed yet")
		return
	}

	log.WithField("case_group_id", *res.CaseGroupID).
		WithField("member_count", len(res.Cases)).
		Info("Case group formed")

	w.deliverGroupWebhook(ctx, GroupFormedEvent{
		EventID:     event.EventID,
		CaseGroupID: *res.CaseGroupID,
		CaseIDs:     res.Cases,
		Timestamp:   time.Now().UTC(),
	})
}

// deliverGroupWebhook отправляет подписанный вебхук о сформированной группе
func (w *Worker) deliverGroupWebhook(ctx context.Context, event GroupFormedEvent) {
	log := w.logger.WithField("case_group_id", event.CaseGroupID)

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("Failed to marshal group formed event")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBuffer(payload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(payload, w.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Group webhook delivered successfully.")
			return
		}

		log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver group webhook after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
