package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_intake_service/internal/models"
)

const (
	notifyQueueKey = "sos_notify_events"
)

// Виды уведомлений
const (
	KindEmergency    = "emergency"
	KindEscalation   = "escalation"
	KindConfirmation = "confirmation"
)

// Event - задание для внешних систем оповещения
type Event struct {
	Kind         string          `json:"kind"`
	CaseID       string          `json:"case_id"`
	Severity     models.Severity `json:"severity"`
	SLA          string          `json:"sla"`
	Status       string          `json:"status"`
	ReporterID   string          `json:"reporter_id,omitempty"`
	ContactEmail string          `json:"contact_email,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	GeoCell      string          `json:"geo_cell,omitempty"`
	Actor        string          `json:"actor,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// NewCaseEvent собирает событие из обращения
func NewCaseEvent(kind string, c *models.Case) Event {
	return Event{
		Kind:         kind,
		CaseID:       c.CaseID,
		Severity:     c.Severity,
		SLA:          c.SLA,
		Status:       c.Status,
		ReporterID:   c.ReporterID,
		ContactEmail: c.ContactEmail,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		GeoCell:      c.GeoCell,
		Timestamp:    time.Now().UTC(),
	}
}

// Publisher - интерфейс для постановки уведомлений в очередь
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая список Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notify event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает BRPOP с хвоста
	if err := p.redisClient.LPush(ctx, notifyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notify event to Redis: %w", err)
	}
	return nil
}
