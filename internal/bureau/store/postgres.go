package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"spc-gateway/internal/bureau/normalizer"
)

// Postgres archives reports in the bureau_reports table. The payload column
// is JSONB so compliance queries can inspect individual sections.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Append(ctx context.Context, report Report) error {
	payload, err := json.Marshal(report.Payload)
	if err != nil {
		return fmt.Errorf("marshal report payload: %w", err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO bureau_reports (id, document_hash, request_id, client_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		report.ID, report.DocumentHash, report.RequestID, report.ClientID, payload, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (p *Postgres) ListByDocument(ctx context.Context, documentHash string) ([]Report, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, document_hash, request_id, client_id, payload, created_at
		FROM bureau_reports
		WHERE document_hash = $1
		ORDER BY created_at DESC`,
		documentHash,
	)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var (
			r   Report
			raw []byte
		)
		if err := rows.Scan(&r.ID, &r.DocumentHash, &r.RequestID, &r.ClientID, &raw, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		var payload normalizer.AiContextPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("unmarshal report payload: %w", err)
		}
		r.Payload = &payload
		out = append(out, r)
	}
	return out, rows.Err()
}
