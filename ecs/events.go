package ecs

// EventKind identifies the events systems publish during a frame.
type EventKind string

const (
	EventChargeChanged  EventKind = "charge_changed"
	EventDashed         EventKind = "dashed"
	EventWallBounce     EventKind = "wall_bounce"
	EventFieldChanged   EventKind = "field_changed"
	EventLaserSpawned   EventKind = "laser_spawned"
	EventScrollSpawned  EventKind = "scroll_spawned"
	EventScrollPickedUp EventKind = "scroll_picked_up"
	EventPlayerHit      EventKind = "player_hit"
	EventRunWon         EventKind = "run_won"
	EventRunLost        EventKind = "run_lost"
)

// Event is a frame-local notification.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the queued events without consuming them.
func (q *EventQueue) Events() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Has reports whether an event of kind is queued.
func (q *EventQueue) Has(kind EventKind) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Kind == kind {
			return true
		}
	}
	return false
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
