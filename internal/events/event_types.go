package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventVendorCreated  EventType = "vendor_created"
	EventStoreCreated   EventType = "store_created"
)

// Event represents a domain event emitted by services. SubjectID is the
// primary record the event concerns (user, vendor or store ID).
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// VendorCreatedPayload payload.
type VendorCreatedPayload struct {
	UserID       string `json:"user_id"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
}

// StoreCreatedPayload payload.
type StoreCreatedPayload struct {
	VendorID string `json:"vendor_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
}
