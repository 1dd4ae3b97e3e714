// Package store archives every normalized context for compliance review.
// Reports are retained with a hashed document reference, never a raw CPF.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"spc-gateway/internal/bureau/normalizer"
)

// Report is one archived normalization result.
type Report struct {
	ID           uuid.UUID
	DocumentHash string
	RequestID    string
	ClientID     string
	Payload      *normalizer.AiContextPayload
	CreatedAt    time.Time
}

// Store persists normalization reports.
type Store interface {
	Append(ctx context.Context, report Report) error
	ListByDocument(ctx context.Context, documentHash string) ([]Report, error)
}
