package ports

import (
	"context"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence. Recording
// must never block a request or surface an error to it.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events to the audit trail collection.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
