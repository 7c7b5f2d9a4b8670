package services

import (
	"log"

	"github.com/google/uuid"
)

// EventPublisher is the slice of the RabbitMQ client the services need.
// A nil publisher disables event publishing.
type EventPublisher interface {
	PublishEvent(event string, payload map[string]interface{}) error
}

// publishEvent sends a lifecycle event with a generated event id.
// Publishing is best-effort: a failure is logged and never fails the
// request that triggered it.
func publishEvent(mq EventPublisher, event string, payload map[string]interface{}) {
	if mq == nil {
		return
	}
	payload["event_id"] = uuid.New().String()
	if err := mq.PublishEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
