package handler

import (
	"time"

	"spc-gateway/internal/bureau/normalizer"
)

// ContextResponse wraps the normalized payload with request metadata. The
// document echoes back masked; the full CPF never appears in responses.
type ContextResponse struct {
	Document    string                       `json:"document"`
	GeneratedAt time.Time                    `json:"generated_at"`
	Context     *normalizer.AiContextPayload `json:"context"`
}
