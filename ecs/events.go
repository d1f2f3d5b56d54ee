package ecs

// Event is a frame-scoped message between systems. Data carries a
// type-specific payload.
type Event struct {
	Type string
	Data any
}

// EventQueue collects the events pushed during one scheduler frame. Systems
// later in the frame read them with Pending or Collect; the scheduler clears
// the queue once every system has run.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns this frame's events without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns this frame's events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q != nil {
		q.items = q.items[:0:0]
	}
}

// Collect returns the payloads of every pending event of type typ whose data
// is a T.
func Collect[T any](q *EventQueue, typ string) []T {
	var out []T
	for _, evt := range q.Pending() {
		if evt.Type != typ {
			continue
		}
		if data, ok := evt.Data.(T); ok {
			out = append(out, data)
		}
	}
	return out
}
