package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const eventColumns = `
	id,
	to_char(event_date, 'YYYY-MM-DD'),
	event_time,
	title,
	customer_name,
	status,
	created_at,
	updated_at,
	cancelled_at`

func scanEvent(row pgx.Row) (*Event, error) {
	var ev Event
	var cancelledAt *time.Time

	err := row.Scan(
		&ev.ID,
		&ev.Date,
		&ev.Time,
		&ev.Title,
		&ev.CustomerName,
		&ev.Status,
		&ev.CreatedAt,
		&ev.UpdatedAt,
		&cancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	ev.CancelledAt = cancelledAt
	return &ev, nil
}

func collectEvents(rows pgx.Rows) ([]Event, error) {
	defer rows.Close()

	var result []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ev)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) ListByDate(ctx context.Context, date string) ([]Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE event_date = $1::date
		ORDER BY created_at, id
	`, date)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *PgRepository) ListBetween(ctx context.Context, from, to string) ([]Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE event_date BETWEEN $1::date AND $2::date
		ORDER BY event_date, created_at, id
	`, from, to)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *PgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id)
	return scanEvent(row)
}

func (r *PgRepository) Create(ctx context.Context, ev Event) (*Event, error) {
	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (id, event_date, event_time, title, customer_name, status, created_at, updated_at)
		VALUES ($1, $2::date, $3, $4, $5, 'confirmed', now(), now())
		RETURNING `+eventColumns+`
	`, id, ev.Date, ev.Time, ev.Title, ev.CustomerName)

	return scanEvent(row)
}

func (r *PgRepository) CancelEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE events
		SET status = 'cancelled',
		    cancelled_at = now(),
		    updated_at = now()
		WHERE id = $1
		  AND status = 'confirmed'
		RETURNING `+eventColumns+`
	`, id)

	return scanEvent(row)
}

func (r *PgRepository) InsertAudit(ctx context.Context, entry AuditEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_log (entry_type, event_id, payload, created_at)
		VALUES ($1, $2, $3, COALESCE($4, now()))
	`, entry.EntryType, entry.EventID, entry.Payload, nullableTime(entry.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
