// Package handler exposes the bureau context endpoints.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spc-gateway/internal/bureau/normalizer"
	id "spc-gateway/pkg/domain"
	dErrors "spc-gateway/pkg/domain-errors"
	"spc-gateway/pkg/platform/httputil"
	"spc-gateway/pkg/requestcontext"
)

// Real envelopes run tens of kilobytes; 2 MiB leaves generous headroom.
const maxEnvelopeBytes = 2 << 20

// ContextBuilder is the service seam the handler depends on.
type ContextBuilder interface {
	BuildContext(ctx context.Context, document id.Document) (*normalizer.AiContextPayload, error)
	NormalizeRaw(ctx context.Context, raw []byte) (*normalizer.AiContextPayload, error)
}

type Handler struct {
	service ContextBuilder
	logger  *slog.Logger
}

func New(service ContextBuilder, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the bureau routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/context", h.handleBuildContext)
	r.Post("/context/normalize", h.handleNormalize)
}

func (h *Handler) handleBuildContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ContextRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	payload, err := h.service.BuildContext(ctx, req.Parsed())
	if err != nil {
		h.logger.ErrorContext(ctx, "context build failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ContextResponse{
		Document:    req.Parsed().Masked(),
		GeneratedAt: requestcontext.Now(ctx).UTC(),
		Context:     payload,
	})
}

func (h *Handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEnvelopeBytes))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body unreadable or too large"))
		return
	}
	if len(raw) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "request body is required"))
		return
	}

	payload, err := h.service.NormalizeRaw(ctx, raw)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, payload)
}
