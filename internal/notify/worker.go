package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_intake_service/internal/config"
	"github.com/sirupsen/logrus"
)

var errWebhookNotConfigured = errors.New("emergency webhook URL is not configured")

// Worker - обработчик очереди уведомлений: вебхук экстренной службы и письма заявителям
type Worker struct {
	redisClient *redis.Client
	mailer      Mailer
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker. mailer может быть nil, тогда письма не отправляются.
func NewWorker(redisClient *redis.Client, mailer Mailer, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		mailer:      mailer,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notify worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notify worker.")
				return
			default:
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notifyQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop notify event from Redis")
					sleepCtx(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notify event from Redis")
					continue
				}

				w.processEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) processEvent(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_kind": event.Kind,
		"case_id":    event.CaseID,
		"severity":   event.Severity,
	})
	log.Debug("Processing notify event...")

	switch event.Kind {
	case KindEmergency, KindEscalation:
		if err := w.deliverWebhook(ctx, log, rawPayload); err != nil {
			log.WithError(err).Error("Emergency dispatch failed")
		}
	case KindConfirmation:
		if w.mailer == nil {
			log.Warn("Mailer is not configured. Skipping confirmation email.")
			return
		}
		if err := w.mailer.SendConfirmation(ctx, event); err != nil {
			log.WithError(err).Error("Failed to send confirmation email")
			return
		}
		log.Info("Confirmation email sent.")
	default:
		log.Warn("Unknown notify event kind, dropping")
	}
}

// deliverWebhook отправляет событие в шлюз звонков/SMS с экспоненциальной задержкой между попытками
func (w *Worker) deliverWebhook(ctx context.Context, log *logrus.Entry, rawPayload string) error {
	if w.cfg.WebhookURL == "" {
		return errWebhookNotConfigured
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.postWebhook(ctx, rawPayload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Emergency webhook delivered successfully.")
			return nil
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		} else {
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, maxRetries-1-i)
		}
		if i == maxRetries-1 {
			break
		}
		if !sleepCtx(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	return fmt.Errorf("failed to deliver webhook after %d attempts", maxRetries)
}

func (w *Worker) postWebhook(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// sleepCtx ждет d или отмены контекста. false - контекст отменен.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
