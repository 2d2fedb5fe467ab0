package dispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер без Redis (только для доставки вебхуков)
func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return &Worker{
		logger:     logger,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.WebhookTimeout},
	}
}

func TestDeliverGroupWebhook_SignedAndDelivered(t *testing.T) {
	// Подготовка
	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event := GroupFormedEvent{
		EventID:     "evt-1",
		CaseGroupID: 7,
		CaseIDs:     []int64{10, 11, 12},
		Timestamp:   time.Now().UTC(),
	}

	// Действие
	worker.deliverGroupWebhook(context.Background(), event)

	// Проверки
	var received GroupFormedEvent
	require.NoError(t, json.Unmarshal(gotBody, &received))
	assert.Equal(t, int64(7), received.CaseGroupID)
	assert.Equal(t, []int64{10, 11, 12}, received.CaseIDs)

	// Подпись совпадает с HMAC-SHA256 тела запроса
	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestDeliverGroupWebhook_RetriesOnServerError(t *testing.T) {
	// Подготовка
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	// Действие
	worker.deliverGroupWebhook(context.Background(), GroupFormedEvent{EventID: "evt-2", CaseGroupID: 8})

	// Проверки
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliverGroupWebhook_NoURLConfigured(t *testing.T) {
	// Подготовка
	cfg := &config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	// Действие и проверка: вызов без URL не паникует и ничего не шлет
	worker.deliverGroupWebhook(context.Background(), GroupFormedEvent{EventID: "evt-3"})
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Подготовка
	payload := []byte(`{"case_group_id":7}`)

	// Действие
	signature := generateHMACSHA256(payload, "secret")

	// Проверки
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signature)
	// Другой секрет дает другую подпись
	assert.NotEqual(t, signature, generateHMACSHA256(payload, "other"))
}
