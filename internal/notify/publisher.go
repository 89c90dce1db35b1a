package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const alertQueueKey = "dispatch_alerts"

// Event types pushed to the alert queue.
const (
	EventDispatchApproved  = "dispatch_approved"
	EventDirectDispatch    = "direct_dispatch"
	EventDispatchCompleted = "dispatch_completed"
	EventDispatchCancelled = "dispatch_cancelled"
)

// DispatchEvent is the volunteer alert payload delivered to the
// configured webhook whenever a unit is committed to or released from
// an incident.
type DispatchEvent struct {
	EventID        uuid.UUID `json:"event_id"`
	Type           string    `json:"type"`
	DispatchID     int64     `json:"dispatch_id"`
	IncidentID     int64     `json:"incident_id"`
	IncidentTitle  string    `json:"incident_title"`
	Location       string    `json:"location"`
	Severity       string    `json:"severity"`
	UnitID         int64     `json:"unit_id"`
	UnitName       string    `json:"unit_name"`
	UnitCode       string    `json:"unit_code"`
	VolunteerCount int       `json:"volunteer_count"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher enqueues dispatch events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisPublisher is a Publisher backed by a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the alert queue. Callers treat failures
// as best-effort: a lost alert never rolls back a dispatch.
func (p *RedisPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
