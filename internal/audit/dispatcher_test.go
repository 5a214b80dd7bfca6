package audit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recorderSink) Log(vendorID uint, actor, action, entity string, entityID *uint, metadata any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		VendorID: vendorID,
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
	return nil
}

func (s *recorderSink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never satisfied")
}

func TestDispatchDeliversToSink(t *testing.T) {
	sink := &recorderSink{}
	d := NewDispatcher(sink)

	id := uint(7)
	d.Dispatch(Event{
		VendorID: 1,
		Actor:    "ravi@example.com",
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &id,
	})

	waitFor(t, func() bool { return len(sink.snapshot()) == 1 })

	got := sink.snapshot()[0]
	assert.Equal(t, uint(1), got.VendorID)
	assert.Equal(t, "booking_created", got.Action)
	require.NotNil(t, got.EntityID)
	assert.Equal(t, uint(7), *got.EntityID)
}

func TestDispatchPreservesOrder(t *testing.T) {
	sink := &recorderSink{}
	d := NewDispatcher(sink)

	for _, action := range []string{"booking_created", "payment_confirmed", "pending_released"} {
		d.Dispatch(Event{VendorID: 1, Action: action})
	}

	waitFor(t, func() bool { return len(sink.snapshot()) == 3 })

	events := sink.snapshot()
	assert.Equal(t, "booking_created", events[0].Action)
	assert.Equal(t, "payment_confirmed", events[1].Action)
	assert.Equal(t, "pending_released", events[2].Action)
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "booking_created"}) // no panic
}
