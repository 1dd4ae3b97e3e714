// Package bureau turns raw SPC/ACERTA responses into the normalized context
// payload handed to the AI underwriting collaborator.
package bureau

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"spc-gateway/internal/audit"
	"spc-gateway/internal/bureau/cache"
	"spc-gateway/internal/bureau/metrics"
	"spc-gateway/internal/bureau/normalizer"
	"spc-gateway/internal/bureau/store"
	id "spc-gateway/pkg/domain"
	dErrors "spc-gateway/pkg/domain-errors"
	"spc-gateway/pkg/requestcontext"
)

// ContextCache is the seam for the Redis payload cache. Nil disables caching.
type ContextCache interface {
	Find(ctx context.Context, document id.Document) (*normalizer.AiContextPayload, error)
	Save(ctx context.Context, document id.Document, payload *normalizer.AiContextPayload) error
}

// Auditor publishes compliance events. Nil disables auditing.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service orchestrates lookup, normalization, caching and archival.
type Service struct {
	client  LookupClient
	cache   ContextCache
	archive store.Store
	auditor Auditor
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Service)

func WithCache(c ContextCache) Option     { return func(s *Service) { s.cache = c } }
func WithArchive(a store.Store) Option    { return func(s *Service) { s.archive = a } }
func WithAuditor(a Auditor) Option        { return func(s *Service) { s.auditor = a } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

func NewService(client LookupClient, logger *slog.Logger, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("bureau: lookup client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		client: client,
		logger: logger,
		tracer: otel.Tracer("spc-gateway/bureau"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BuildContext produces the normalized context for one document, consulting
// the cache first and archiving the result for compliance.
func (s *Service) BuildContext(ctx context.Context, document id.Document) (*normalizer.AiContextPayload, error) {
	ctx, span := s.tracer.Start(ctx, "bureau.build_context")
	defer span.End()

	if s.cache != nil {
		payload, err := s.cache.Find(ctx, document)
		switch {
		case err == nil:
			if s.metrics != nil {
				s.metrics.CacheHits.Inc()
			}
			s.emit(ctx, audit.Event{
				Action:      audit.ActionContextCacheHit,
				SubjectHash: document.Hash(),
				Outcome:     "served_from_cache",
			})
			return payload, nil
		case !errors.Is(err, cache.ErrNotCached):
			// A broken cache degrades to a lookup, it does not fail the request.
			s.logger.Warn("context cache read failed", "error", err)
		}
		if s.metrics != nil {
			s.metrics.CacheMisses.Inc()
		}
	}

	start := time.Now()
	raw, err := s.client.Lookup(ctx, document)
	if err != nil {
		if s.metrics != nil {
			s.metrics.LookupFailures.Inc()
		}
		s.emit(ctx, audit.Event{
			Action:      audit.ActionLookupFailed,
			SubjectHash: document.Hash(),
			Reason:      err.Error(),
		})
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "bureau lookup failed", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveLookupLatency(time.Since(start))
	}

	payload, err := s.normalize(ctx, raw)
	if err != nil {
		s.emit(ctx, audit.Event{
			Action:      audit.ActionInvalidEnvelope,
			SubjectHash: document.Hash(),
			Reason:      "lookup returned malformed JSON",
		})
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, document, payload); err != nil {
			s.logger.Warn("context cache write failed", "error", err)
		}
	}
	if s.archive != nil {
		report := store.Report{
			ID:           uuid.New(),
			DocumentHash: document.Hash(),
			RequestID:    requestcontext.RequestID(ctx),
			ClientID:     requestcontext.ClientID(ctx),
			Payload:      payload,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.archive.Append(ctx, report); err != nil {
			s.logger.Error("report archive failed", "error", err)
		}
	}

	s.emit(ctx, audit.Event{
		Action:      audit.ActionContextBuilt,
		SubjectHash: document.Hash(),
		Outcome:     "built",
	})
	return payload, nil
}

// NormalizeRaw normalizes a caller-supplied envelope without a bureau lookup.
// Used by batch backfills that already hold raw responses.
func (s *Service) NormalizeRaw(ctx context.Context, raw []byte) (*normalizer.AiContextPayload, error) {
	ctx, span := s.tracer.Start(ctx, "bureau.normalize_raw")
	defer span.End()

	payload, err := s.normalize(ctx, raw)
	if err != nil {
		s.emit(ctx, audit.Event{
			Action: audit.ActionInvalidEnvelope,
			Reason: "caller supplied malformed JSON",
		})
		return nil, err
	}

	s.emit(ctx, audit.Event{Action: audit.ActionContextNormalized, Outcome: "normalized"})
	return payload, nil
}

// normalize guards the only precondition the normalizer has: the input must
// be well-formed JSON. Everything past that point is total.
func (s *Service) normalize(_ context.Context, raw []byte) (*normalizer.AiContextPayload, error) {
	if !gjson.ValidBytes(raw) {
		if s.metrics != nil {
			s.metrics.InvalidPayloads.Inc()
		}
		return nil, dErrors.New(dErrors.CodeInvalidPayload, "envelope is not valid JSON")
	}

	start := time.Now()
	payload := normalizer.Normalize(raw)
	if s.metrics != nil {
		s.metrics.ObserveNormalizeDuration(time.Since(start))
		s.metrics.ContextsBuilt.Inc()
		if sparse(payload) {
			s.metrics.SparsePayloads.Inc()
		}
	}
	return payload, nil
}

func sparse(p *normalizer.AiContextPayload) bool {
	return len(p.NegativeDetails.Debts) == 0 &&
		len(p.NegativeDetails.Protests) == 0 &&
		len(p.NegativeDetails.BadChecks) == 0
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor != nil {
		s.auditor.Emit(ctx, event)
	}
}
