package audit

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger appends decision records as a best-effort side channel. A failed
// write never blocks or alters a clinical decision that has already been
// computed: the failure is counted, logged, and the pipeline moves on.
// Callers alert on WriteFailures separately.
//
// Seq is a per-process monotonic counter; ordering is guaranteed within a
// request (entries are written in stage order) but not across requests.
type Logger struct {
	repo     Repository
	log      zerolog.Logger
	seq      atomic.Uint64
	failures atomic.Uint64
}

func NewLogger(repo Repository, log zerolog.Logger) *Logger {
	return &Logger{repo: repo, log: log}
}

// Log appends one entry. Best-effort by contract: no error return.
func (l *Logger) Log(ctx context.Context, correlationID uuid.UUID, action, reason string, metadata map[string]any) {
	entry := &Entry{
		ID:            uuid.New(),
		Seq:           l.seq.Add(1),
		CorrelationID: correlationID,
		Action:        action,
		Reason:        reason,
		Metadata:      metadata,
		CreatedAt:     time.Now().UTC(),
	}
	if err := l.repo.Append(ctx, entry); err != nil {
		l.failures.Add(1)
		l.log.Error().
			Err(err).
			Str("correlation_id", correlationID.String()).
			Str("action", action).
			Msg("audit write failed")
	}
}

// WriteFailures returns the number of failed appends since process start.
func (l *Logger) WriteFailures() uint64 {
	return l.failures.Load()
}
