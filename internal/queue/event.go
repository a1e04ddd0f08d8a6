// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for them.
package queue

// TraineeRegisteredEvent is published after a registration commits. It
// carries enough for downstream consumers to log or notify without querying
// the primary database; the password hash never enters the broker.
type TraineeRegisteredEvent struct {
	TraineeID    uint64 `json:"trainee_id"`
	PhoneNumber  string `json:"phone_number"`
	Name         string `json:"name"`
	RegisteredAt string `json:"registered_at"`
}
