// Package repository implements the event store on PostgreSQL.
// It uses pgx directly (no ORM) for transparency and performance.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"daybook/internal/model"
	"daybook/internal/service"
)

// EventRepository handles persistence for events. It satisfies
// service.EventStore.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, date_time, importance, owner_id, created_at`

// ListByOwner returns the owner's events, restricted to the scope's
// inclusive range when one is present, ordered by date-time then id so
// the result is a total order.
func (r *EventRepository) ListByOwner(ctx context.Context, ownerID int64, scope service.Scope) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + `
		 FROM events
		 WHERE owner_id = $1
		 ORDER BY date_time ASC, id ASC`
	args := []any{ownerID}
	if scope.Mode != service.ModeAll {
		query = `SELECT ` + eventColumns + `
		 FROM events
		 WHERE owner_id = $1 AND date_time BETWEEN $2 AND $3
		 ORDER BY date_time ASC, id ASC`
		args = append(args, scope.Start, scope.End)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.DateTime, &e.Importance, &e.OwnerID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Stamps fetches only identifiers and date-times for the owner's events
// in the scope. Same filters and ordering as ListByOwner.
func (r *EventRepository) Stamps(ctx context.Context, ownerID int64, scope service.Scope) ([]service.EventStamp, error) {
	query := `SELECT id, date_time
		 FROM events
		 WHERE owner_id = $1
		 ORDER BY date_time ASC, id ASC`
	args := []any{ownerID}
	if scope.Mode != service.ModeAll {
		query = `SELECT id, date_time
		 FROM events
		 WHERE owner_id = $1 AND date_time BETWEEN $2 AND $3
		 ORDER BY date_time ASC, id ASC`
		args = append(args, scope.Start, scope.End)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list event stamps: %w", err)
	}
	defer rows.Close()

	var stamps []service.EventStamp
	for rows.Next() {
		var st service.EventStamp
		if err := rows.Scan(&st.ID, &st.DateTime); err != nil {
			return nil, fmt.Errorf("scan event stamp: %w", err)
		}
		stamps = append(stamps, st)
	}
	return stamps, rows.Err()
}

// Create inserts a new event and returns it with the store-assigned id.
func (r *EventRepository) Create(ctx context.Context, ev model.Event) (model.Event, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO events (title, description, date_time, importance, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		ev.Title, ev.Description, ev.DateTime, ev.Importance, ev.OwnerID, ev.CreatedAt,
	).Scan(&ev.ID)
	if err != nil {
		return model.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return ev, nil
}

// OwnerOf returns the owner of a single event or service.ErrNotFound.
// Always a fresh read; the authorization layer depends on that.
func (r *EventRepository) OwnerOf(ctx context.Context, id int64) (int64, error) {
	var owner int64
	err := r.db.QueryRow(ctx,
		`SELECT owner_id FROM events WHERE id = $1`,
		id,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, service.ErrNotFound
		}
		return 0, fmt.Errorf("get event owner: %w", err)
	}
	return owner, nil
}

// Update replaces the mutable fields of an existing event. The owner
// column is deliberately not part of the statement.
func (r *EventRepository) Update(ctx context.Context, ev model.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, date_time = $4, importance = $5
		 WHERE id = $1`,
		ev.ID, ev.Title, ev.Description, ev.DateTime, ev.Importance,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// Delete removes an event by id.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM events WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
