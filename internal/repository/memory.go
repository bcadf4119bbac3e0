package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"daybook/internal/model"
	"daybook/internal/service"
)

// MemoryStore is an in-memory service.EventStore used in tests and for
// running the service without Postgres. It mirrors the SQL store's
// contract, including the importance foreign key and list ordering.
type MemoryStore struct {
	mu     sync.Mutex
	events map[int64]model.Event
	nextID int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[int64]model.Event)}
}

func (m *MemoryStore) ListByOwner(_ context.Context, ownerID int64, scope service.Scope) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []model.Event
	for _, e := range m.events {
		if e.OwnerID != ownerID || !inScope(e, scope) {
			continue
		}
		events = append(events, e)
	}
	sortEvents(events)
	return events, nil
}

func (m *MemoryStore) Stamps(_ context.Context, ownerID int64, scope service.Scope) ([]service.EventStamp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []model.Event
	for _, e := range m.events {
		if e.OwnerID != ownerID || !inScope(e, scope) {
			continue
		}
		events = append(events, e)
	}
	sortEvents(events)

	stamps := make([]service.EventStamp, len(events))
	for i, e := range events {
		stamps[i] = service.EventStamp{ID: e.ID, DateTime: e.DateTime}
	}
	return stamps, nil
}

func (m *MemoryStore) Create(_ context.Context, ev model.Event) (model.Event, error) {
	if !ev.Importance.Valid() {
		return model.Event{}, fmt.Errorf("insert event: importance %d violates foreign key", ev.Importance)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	ev.ID = m.nextID
	m.events[ev.ID] = ev
	return ev, nil
}

func (m *MemoryStore) OwnerOf(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return 0, service.ErrNotFound
	}
	return e.OwnerID, nil
}

func (m *MemoryStore) Update(_ context.Context, ev model.Event) error {
	if !ev.Importance.Valid() {
		return fmt.Errorf("update event: importance %d violates foreign key", ev.Importance)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.events[ev.ID]
	if !ok {
		return service.ErrNotFound
	}
	cur.Title = ev.Title
	cur.Description = ev.Description
	cur.DateTime = ev.DateTime
	cur.Importance = ev.Importance
	m.events[ev.ID] = cur
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return service.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

// Get returns a snapshot of a single event. Test helper.
func (m *MemoryStore) Get(id int64) (model.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	return e, ok
}

func inScope(e model.Event, s service.Scope) bool {
	if s.Mode == service.ModeAll {
		return true
	}
	return !e.DateTime.Before(s.Start) && !e.DateTime.After(s.End)
}

func sortEvents(events []model.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].DateTime.Equal(events[j].DateTime) {
			return events[i].DateTime.Before(events[j].DateTime)
		}
		return events[i].ID < events[j].ID
	})
}
