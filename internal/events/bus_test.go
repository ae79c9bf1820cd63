package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	bus.Publish(TopicAppointmentsChanged)
	bus.Publish(TopicAnnouncementsChanged)

	assert.Equal(t, TopicAppointmentsChanged, <-ch)
	assert.Equal(t, TopicAnnouncementsChanged, <-ch)
}

func TestBus_TopicFilter(t *testing.T) {
	bus := NewBus()
	ch, unsubscribe := bus.Subscribe(TopicAnnouncementsChanged)
	defer unsubscribe()

	bus.Publish(TopicAppointmentsChanged)
	bus.Publish(TopicAnnouncementsChanged)

	assert.Equal(t, TopicAnnouncementsChanged, <-ch)
	select {
	case topic := <-ch:
		t.Fatalf("unexpected event: %s", topic)
	default:
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()
	require.Equal(t, 1, bus.SubscriberCount())

	unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount())

	// Канал закрыт, повторная отписка безопасна
	_, open := <-ch
	assert.False(t, open)
	assert.NotPanics(t, unsubscribe)

	bus.Publish(TopicAppointmentsChanged)
}

func TestBus_PublishDoesNotBlock(t *testing.T) {
	bus := NewBus()
	_, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	// Никто не читает: буфер переполняется, лишние события отбрасываются
	for i := 0; i < 100; i++ {
		bus.Publish(TopicAppointmentsChanged)
	}
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus()
	ch1, unsub1 := bus.Subscribe(TopicAppointmentsChanged)
	defer unsub1()
	ch2, unsub2 := bus.Subscribe()
	defer unsub2()

	bus.Publish(TopicAppointmentsChanged)

	assert.Equal(t, TopicAppointmentsChanged, <-ch1)
	assert.Equal(t, TopicAppointmentsChanged, <-ch2)
}
