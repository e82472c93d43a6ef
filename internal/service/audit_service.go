package service

import (
	"context"
	"sync"

	"receipt-certifier/internal/core/domain"

	"github.com/rs/zerolog"
)

// AuditLogger implements ports.AuditService by writing entries to a
// dedicated zerolog logger off the request path.
type AuditLogger struct {
	log zerolog.Logger
	wg  sync.WaitGroup
}

// NewAuditService creates a new audit logger.
func NewAuditService(log zerolog.Logger) *AuditLogger {
	return &AuditLogger{log: log.With().Str("component", "audit").Logger()}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *AuditLogger) Log(_ context.Context, entry *domain.AuditLog) {
	if entry == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ev := s.log.Info().
			Str("audit_id", entry.ID.String()).
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("ip", entry.IPAddress).
			Time("at", entry.CreatedAt)
		if entry.Subject != "" {
			ev = ev.Str("subject", entry.Subject)
		}
		if entry.Details != "" {
			ev = ev.RawJSON("details", []byte(entry.Details))
		}
		ev.Msg("audit")
	}()
}

// Wait blocks until every pending entry has been written.
func (s *AuditLogger) Wait() {
	s.wg.Wait()
}
