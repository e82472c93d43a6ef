package postgres

import (
	"context"
	"fmt"
)

// HealthCheck implements ports.HealthChecker for PostgreSQL. It checks the
// certified_receipts table rather than the bare connection, so a database
// without the schema reports unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks that the certified reference table is readable.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.pool.Exec(ctx, "SELECT 1 FROM certified_receipts LIMIT 1"); err != nil {
		return fmt.Errorf("certified_receipts unreachable: %w", err)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
