// Package events builds domain event envelopes and hands them to a broker.
package events

import (
	"context"
	"encoding/json"
	"time"

	"ctws/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Event types, also used as routing keys.
const (
	MealCreated                = "meal.created"
	MealDeleted                = "meal.deleted"
	UserCreated                = "user.created"
	BodyParametersAdded        = "body_parameters.added"
	TelegramCredentialsCreated = "telegram_credentials.created"
)

// Event is the JSON envelope published for every write.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// Publisher is satisfied by *rabbitmq.Client.
type Publisher interface {
	Publish(routingKey string, body []byte) error
}

// Emitter publishes events on a best-effort basis: a broker failure is
// logged and counted but never fails the write that caused it.
type Emitter struct {
	pub     Publisher
	log     logrus.FieldLogger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewEmitter returns an Emitter. pub may be nil, in which case Emit does nothing.
func NewEmitter(pub Publisher, log logrus.FieldLogger, m *metrics.Metrics) *Emitter {
	return &Emitter{
		pub:     pub,
		log:     log,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Emit wraps payload in an Event and publishes it under eventType. The
// publish is not tied to ctx: a write that committed is announced even if the
// client has gone away.
func (e *Emitter) Emit(_ context.Context, eventType string, payload interface{}) {
	if e == nil || e.pub == nil {
		return
	}

	evt := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: e.now(),
		Payload:    payload,
	}
	entry := e.log.WithFields(logrus.Fields{"event_id": evt.ID, "event_type": eventType})

	body, err := json.Marshal(evt)
	if err != nil {
		entry.WithError(err).Error("failed to encode event")
		e.metrics.RecordEvent(eventType, err)
		return
	}

	err = e.pub.Publish(eventType, body)
	e.metrics.RecordEvent(eventType, err)
	if err != nil {
		entry.WithError(err).Error("failed to publish event")
	}
}
