package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilegames/blokus/internal/game/core"
)

// recordingSubscriber captures every event delivered to it.
type recordingSubscriber struct {
	id       string
	types    []string
	received []Event
}

func (rs *recordingSubscriber) ID() string { return rs.id }

func (rs *recordingSubscriber) HandleEvent(event Event) {
	rs.received = append(rs.received, event)
}

func (rs *recordingSubscriber) InterestedIn(eventType string) bool {
	if len(rs.types) == 0 {
		return true
	}
	for _, t := range rs.types {
		if t == eventType {
			return true
		}
	}
	return false
}

func TestEventBus_PublishToSubscriber(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder"}
	bus.Subscribe(sub)

	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Publish(NewGameStartedEvent("game-1", 4, 20))
	bus.Publish(NewTurnSkippedEvent("game-1", 3))

	require.Len(t, sub.received, 2)
	assert.Equal(t, TypeGameStarted, sub.received[0].Type())
	assert.Equal(t, TypeTurnSkipped, sub.received[1].Type())
	assert.Equal(t, "game-1", sub.received[0].GameID())
	assert.False(t, sub.received[0].Timestamp().IsZero())
}

func TestEventBus_InterestFilter(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "moves_only", types: []string{TypeMoveExecuted}}
	bus.Subscribe(sub)

	bus.Publish(NewGameStartedEvent("game-1", 2, 20))
	bus.Publish(NewMoveExecutedEvent("game-1", 1, "I5", core.Position{Row: 0, Col: 0}, 0, false, 1))
	bus.Publish(NewGameEndedEvent("game-1", 1, []int{0, 42}, 30))

	require.Len(t, sub.received, 1)
	moveEvent, ok := sub.received[0].(*MoveExecutedEvent)
	require.True(t, ok)
	assert.Equal(t, "I5", moveEvent.PieceID)
	assert.Equal(t, 1, moveEvent.PlayerID)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "transient"}
	bus.Subscribe(sub)
	bus.Unsubscribe("transient")

	assert.Equal(t, 0, bus.SubscriberCount())

	bus.Publish(NewGameStartedEvent("game-1", 2, 20))
	assert.Empty(t, sub.received)
}

func TestEventBus_SubscribeFunc(t *testing.T) {
	bus := NewEventBus()

	var rejections []*MoveRejectedEvent
	handlerID := bus.SubscribeFunc(TypeMoveRejected, func(event Event) {
		if rejected, ok := event.(*MoveRejectedEvent); ok {
			rejections = append(rejections, rejected)
		}
	})

	assert.Equal(t, "move.rejected_func_1", handlerID)
	assert.Equal(t, 1, bus.FuncHandlerCount(TypeMoveRejected))

	bus.Publish(NewMoveRejectedEvent("game-1", 2, 5, core.Position{Row: 9, Col: 9}, "InvalidMove"))
	bus.Publish(NewMoveExecutedEvent("game-1", 2, "X5", core.Position{Row: 9, Col: 9}, 0, false, 2))

	require.Len(t, rejections, 1)
	assert.Equal(t, "InvalidMove", rejections[0].Reason)
	assert.Equal(t, 5, rejections[0].PieceIndex)
}

func TestEventBus_PanicIsolation(t *testing.T) {
	bus := NewEventBus()

	bus.SubscribeFunc(TypeGameEnded, func(Event) {
		panic("handler failure")
	})

	calmed := &recordingSubscriber{id: "survivor"}
	bus.Subscribe(calmed)

	assert.NotPanics(t, func() {
		bus.Publish(NewGameEndedEvent("game-1", 2, []int{10, 0}, 25))
	})
	assert.Len(t, calmed.received, 1, "a panicking handler must not block delivery to others")
}
