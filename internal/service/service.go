// Package service implements the calendar core: date-scope resolution,
// owner-filtered queries, per-day aggregation, write validation, and
// the ownership check that guards every mutation.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"daybook/internal/model"
)

// Sentinel errors surfaced to the request layer. Handlers map them to
// HTTP statuses with errors.Is.
var (
	// ErrBadScope means a month or year parameter was supplied but is
	// not an integer.
	ErrBadScope = errors.New("bad scope")
	// ErrValidation means a create/update payload failed the field
	// gate. One aggregated error per request, no partial writes.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means the mutation target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller does not own the target event. The
	// message deliberately carries no detail about the actual owner.
	ErrForbidden = errors.New("forbidden")
)

// EventStamp is the narrow id + date-time projection used by the
// per-day aggregation, fetched instead of full event bodies.
type EventStamp struct {
	ID       int64
	DateTime time.Time
}

// EventStore is the persistence contract this core consumes. List
// results must be ordered ascending by date-time, ties broken by
// ascending identifier, so clients can merge new events into a sorted
// view without resorting everything.
type EventStore interface {
	// ListByOwner returns the owner's events, restricted to the scope's
	// inclusive range when the scope has one.
	ListByOwner(ctx context.Context, ownerID int64, scope Scope) ([]model.Event, error)
	// Stamps is ListByOwner's narrow projection: identifiers and
	// date-times only.
	Stamps(ctx context.Context, ownerID int64, scope Scope) ([]EventStamp, error)
	// Create persists a new event and returns it with the
	// store-assigned identifier.
	Create(ctx context.Context, ev model.Event) (model.Event, error)
	// OwnerOf returns the owner of the event with the given id, or
	// ErrNotFound.
	OwnerOf(ctx context.Context, id int64) (int64, error)
	// Update replaces the mutable fields of the event with ev.ID.
	Update(ctx context.Context, ev model.Event) error
	// Delete removes the event with the given id.
	Delete(ctx context.Context, id int64) error
}

// EventService orchestrates the five calendar operations on behalf of
// an already-authenticated user.
type EventService struct {
	store EventStore
	loc   *time.Location
}

// NewEventService constructs an EventService. loc is the single zone
// used for every day/month boundary computation.
func NewEventService(store EventStore, loc *time.Location) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{store: store, loc: loc}
}

// ResolveAndQuery resolves the date/month/year parameters to one of the
// three read modes and returns the caller's events in that scope,
// ordered ascending by date-time then id. The owner filter always
// applies; no scope ever exposes another user's events.
func (s *EventService) ResolveAndQuery(ctx context.Context, ownerID int64, dateStr, monthStr, yearStr string) ([]model.Event, error) {
	scope, err := resolveScope(dateStr, monthStr, yearStr, s.loc)
	if err != nil {
		return nil, err
	}
	events, err := s.store.ListByOwner(ctx, ownerID, scope)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}

// AggregateByDay returns one count per calendar day of the given month
// (zero-indexed on the wire): index i holds the number of the owner's
// events falling on day i+1. Month and year are both required and must
// be numeric.
func (s *EventService) AggregateByDay(ctx context.Context, ownerID int64, monthStr, yearStr string) ([]int, error) {
	month, ok, err := optionalInt(monthStr)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: month %q is not a number", ErrBadScope, monthStr)
	}
	year, ok, err := optionalInt(yearStr)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: year %q is not a number", ErrBadScope, yearStr)
	}

	scope := monthScope(year, month, s.loc)
	stamps, err := s.store.Stamps(ctx, ownerID, scope)
	if err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}

	counts := make([]int, daysInMonth(scope.Start.Year(), scope.Start.Month()))
	for _, st := range stamps {
		day := st.DateTime.In(s.loc).Day()
		if day >= 1 && day <= len(counts) {
			counts[day-1]++
		}
	}
	return counts, nil
}

// CreateEvent validates the payload and persists a new event owned by
// the caller. The owner is fixed here and never reassigned.
func (s *EventService) CreateEvent(ctx context.Context, ownerID int64, req model.CreateEventRequest) (model.Event, error) {
	f, err := validateEventFields(req.Title, req.Description, req.Importance, req.DateTime, s.loc)
	if err != nil {
		return model.Event{}, err
	}

	ev := model.Event{
		Title:       f.Title,
		Description: f.Description,
		DateTime:    f.DateTime,
		Importance:  f.Importance,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.store.Create(ctx, ev)
	if err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

// UpdateEvent validates the payload, verifies the caller owns the
// target, and replaces the event's mutable fields.
//
// The ownership check always loads fresh owner data; it is a security
// boundary, not a cacheable property. The load-then-check-then-write
// sequence is not transactional against concurrent writers to the same
// event, matching the store's single-statement operation model; closing
// that race would need a store transaction or a version column.
func (s *EventService) UpdateEvent(ctx context.Context, ownerID int64, req model.UpdateEventRequest) error {
	if req.ID == 0 {
		return fmt.Errorf("%w: event id is required", ErrValidation)
	}
	f, err := validateEventFields(req.Title, req.Description, req.Importance, req.DateTime, s.loc)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, ownerID, req.ID); err != nil {
		return err
	}

	ev := model.Event{
		ID:          req.ID,
		Title:       f.Title,
		Description: f.Description,
		DateTime:    f.DateTime,
		Importance:  f.Importance,
		OwnerID:     ownerID,
	}
	if err := s.store.Update(ctx, ev); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent verifies ownership and removes the event. idStr must be a
// well-formed integer; anything else fails before any store access.
func (s *EventService) DeleteEvent(ctx context.Context, ownerID int64, idStr string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: event id must be a number", ErrValidation)
	}
	if err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// authorize loads the target event's owner and rejects the mutation
// when it does not match the caller.
func (s *EventService) authorize(ctx context.Context, ownerID, eventID int64) error {
	owner, err := s.store.OwnerOf(ctx, eventID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load event owner: %w", err)
	}
	if owner != ownerID {
		return ErrForbidden
	}
	return nil
}
