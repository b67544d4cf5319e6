package models

// DomainEvent describes one successful mutating command, published to the
// external notification sink. The core never reads events back.
type DomainEvent struct {
	Name       string            `json:"event"`
	Actor      string            `json:"actor"`
	Entities   map[string]uint64 `json:"entities"`
	OccurredAt uint64            `json:"occurred_at"`
}
