package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrEventNotFound = errors.New("event not found")

// Repository contains all DB interactions needed by the service.
type Repository interface {
	// ListByDate returns the date's events in stored (insertion) order.
	ListByDate(ctx context.Context, date string) ([]Event, error)
	// ListBetween returns events with from <= date <= to, ordered by date then insertion.
	ListBetween(ctx context.Context, from, to string) ([]Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)

	Create(ctx context.Context, ev Event) (*Event, error)
	// CancelEvent flips a confirmed event to cancelled; ErrEventNotFound if no
	// confirmed event with that id exists.
	CancelEvent(ctx context.Context, id uuid.UUID) (*Event, error)

	// Audit logging
	InsertAudit(ctx context.Context, entry AuditEntry) error
}
