// Package audit records compliance events for every bureau consultation.
// Events flow through a buffered channel to a background worker so domain
// code never blocks on the audit trail.
package audit

import "time"

// Action identifies an auditable gateway action.
type Action string

const (
	ActionContextBuilt      Action = "context_built"
	ActionContextNormalized Action = "context_normalized"
	ActionContextCacheHit   Action = "context_cache_hit"
	ActionLookupFailed      Action = "lookup_failed"
	ActionInvalidEnvelope   Action = "invalid_envelope"
)

// Event is one audit record. SubjectHash is the SHA-256 of the consulted
// document; raw CPFs never reach the audit trail.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Action      Action    `json:"action"`
	ClientID    string    `json:"client_id,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	SubjectHash string    `json:"subject_hash,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
	Reason      string    `json:"reason,omitempty"`
}
