package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const entryCols = `id, seq, correlation_id, action, reason, metadata, created_at`

func (r *repoPG) Append(ctx context.Context, e *Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_log_entry (id, seq, correlation_id, action, reason, metadata, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.Seq, e.CorrelationID, e.Action, e.Reason, e.Metadata, e.CreatedAt)
	return err
}

func (r *repoPG) scan(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Seq, &e.CorrelationID, &e.Action, &e.Reason, &e.Metadata, &e.CreatedAt)
	return &e, err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log_entry`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+entryCols+` FROM audit_log_entry
		ORDER BY created_at DESC, seq DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) ListByCorrelation(ctx context.Context, correlationID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log_entry WHERE correlation_id = $1`,
		correlationID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+entryCols+` FROM audit_log_entry
		WHERE correlation_id = $1 ORDER BY seq ASC LIMIT $2 OFFSET $3`, correlationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) collect(rows pgx.Rows, total int) ([]*Entry, int, error) {
	var items []*Entry
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}
