package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated  EventType = "product_created"
	EventProductUpdated  EventType = "product_updated"
	EventProductDeleted  EventType = "product_deleted"
	EventContactReceived EventType = "contact_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProductChangedPayload payload for create/update/delete events.
type ProductChangedPayload struct {
	ProductID string `json:"producto_id"`
	Name      string `json:"nombre,omitempty"`
	Category  string `json:"categoria,omitempty"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	MessageID string `json:"mensaje_id"`
	Email     string `json:"email"`
}
