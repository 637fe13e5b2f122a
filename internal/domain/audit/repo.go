package audit

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists audit entries. Deliberately append-only: the interface
// exposes no update or delete, and the Postgres implementation issues only
// INSERT and SELECT statements.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, limit, offset int) ([]*Entry, int, error)
	ListByCorrelation(ctx context.Context, correlationID uuid.UUID, limit, offset int) ([]*Entry, int, error)
}
