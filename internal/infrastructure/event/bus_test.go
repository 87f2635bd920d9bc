package event

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/packerp/backend/internal/domain/catalog"
	"github.com/packerp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recordingHandler records every event it receives
type recordingHandler struct {
	eventTypes []string
	received   []shared.DomainEvent
	fail       error
	panics     bool
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.fail
}

func (h *recordingHandler) EventTypes() []string {
	return h.eventTypes
}

func testEvent(eventType string) shared.DomainEvent {
	event := shared.NewBaseDomainEvent(eventType, "Product", uuid.New())
	return &event
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to handlers by event type", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		created := &recordingHandler{eventTypes: []string{catalog.EventTypeProductCreated}}
		deleted := &recordingHandler{eventTypes: []string{catalog.EventTypeProductDeleted}}
		bus.Subscribe(created)
		bus.Subscribe(deleted)

		err := bus.Publish(ctx, testEvent(catalog.EventTypeProductCreated))
		require.NoError(t, err)

		assert.Len(t, created.received, 1)
		assert.Empty(t, deleted.received)
	})

	t.Run("wildcard handler receives all events", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		wildcard := &recordingHandler{}
		bus.Subscribe(wildcard)

		err := bus.Publish(ctx,
			testEvent(catalog.EventTypeProductCreated),
			testEvent(catalog.EventTypeStockWentNegative),
		)
		require.NoError(t, err)
		assert.Len(t, wildcard.received, 2)
	})

	t.Run("handler failure does not stop other handlers", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{eventTypes: []string{catalog.EventTypeProductCreated}, fail: shared.ErrInvalidState}
		healthy := &recordingHandler{eventTypes: []string{catalog.EventTypeProductCreated}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		err := bus.Publish(ctx, testEvent(catalog.EventTypeProductCreated))
		require.NoError(t, err)
		assert.Len(t, healthy.received, 1)
	})

	t.Run("panicking handler is isolated", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		panicking := &recordingHandler{eventTypes: []string{catalog.EventTypeProductCreated}, panics: true}
		healthy := &recordingHandler{eventTypes: []string{catalog.EventTypeProductCreated}}
		bus.Subscribe(panicking)
		bus.Subscribe(healthy)

		err := bus.Publish(ctx, testEvent(catalog.EventTypeProductCreated))
		require.NoError(t, err)
		assert.Len(t, healthy.received, 1)
	})

	t.Run("unsubscribed handler receives nothing", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{eventTypes: []string{catalog.EventTypeProductCreated}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		err := bus.Publish(ctx, testEvent(catalog.EventTypeProductCreated))
		require.NoError(t, err)
		assert.Empty(t, handler.received)
	})
}

func TestStockWentNegativeHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("warns on negative stock", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		handler := NewStockWentNegativeHandler(zap.New(core))

		event := catalog.NewStockWentNegativeEvent(catalog.AggregateTypePackage, uuid.New(), "cream jar 50ml", -7)
		require.NoError(t, handler.Handle(ctx, event))

		entries := logs.FilterMessage("stock level below zero").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "cream jar 50ml", entries[0].ContextMap()["name"])
		assert.Equal(t, int64(-7), entries[0].ContextMap()["resulting_quantity"])
	})

	t.Run("ignores other event types", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		handler := NewStockWentNegativeHandler(zap.New(core))

		require.NoError(t, handler.Handle(ctx, testEvent(catalog.EventTypeProductCreated)))
		assert.Zero(t, logs.Len())
	})

	t.Run("subscribes to the negative stock type only", func(t *testing.T) {
		handler := NewStockWentNegativeHandler(zap.NewNop())
		assert.Equal(t, []string{catalog.EventTypeStockWentNegative}, handler.EventTypes())
	})
}
