package event_bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEvent EventType = "test.event"

func TestEventBus(t *testing.T) {
	t.Run("should deliver events to subscribers of the type", func(t *testing.T) {
		// given
		bus := NewEventBus()
		var received []Event
		bus.Subscribe(testEvent, func(e Event) error {
			received = append(received, e)
			return nil
		})
		bus.Subscribe("other.event", func(e Event) error {
			t.Fatal("should not be called")
			return nil
		})

		// when
		err := bus.Publish(NewEvent(testEvent, "payload"))

		// then
		assert.NoError(t, err)
		assert.Len(t, received, 1)
		assert.Equal(t, "payload", received[0].Data)
	})

	t.Run("should stop delivering after unsubscribe", func(t *testing.T) {
		// given
		bus := NewEventBus()
		calls := 0
		unsubscribe := bus.Subscribe(testEvent, func(e Event) error {
			calls++
			return nil
		})

		// when
		_ = bus.Publish(NewEvent(testEvent, nil))
		unsubscribe()
		_ = bus.Publish(NewEvent(testEvent, nil))

		// then
		assert.Equal(t, 1, calls)
	})

	t.Run("should keep delivering when one handler fails", func(t *testing.T) {
		// given
		bus := NewEventBus()
		bus.Subscribe(testEvent, func(e Event) error {
			return errors.New("boom")
		})
		delivered := false
		bus.Subscribe(testEvent, func(e Event) error {
			delivered = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(testEvent, nil))

		// then
		assert.Error(t, err)
		assert.True(t, delivered)
	})

	t.Run("should recover from a panicking handler", func(t *testing.T) {
		// given
		bus := NewEventBus()
		bus.Subscribe(testEvent, func(e Event) error {
			panic("boom")
		})

		// when
		err := bus.Publish(NewEvent(testEvent, nil))

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "handler panic")
	})

	t.Run("should publish without subscribers", func(t *testing.T) {
		assert.NoError(t, NewEventBus().Publish(NewEvent(testEvent, nil)))
	})
}
