package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClickWithin(t *testing.T) {
	c := Click{Path: []string{"lang-option-rust", "select-boxes", "filter-bar", "app"}}

	assert.True(t, c.Within("select-boxes"))
	assert.True(t, c.Within("lang-option-rust"))
	assert.False(t, c.Within("course-list"))
	assert.False(t, c.Within(""), "an empty id never contains anything")
	assert.False(t, Click{}.Within("select-boxes"))
}

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.SubscribeClicks(func(Click) { got = append(got, "first") })
	bus.SubscribeClicks(func(Click) { got = append(got, "second") })

	bus.PublishClick(Click{})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0

	unsubscribe := bus.SubscribeClicks(func(Click) { calls++ })
	assert.Equal(t, 1, bus.Listeners())

	bus.PublishClick(Click{})
	unsubscribe()
	unsubscribe() // second call is a no-op
	bus.PublishClick(Click{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Listeners())
}

func TestBusHandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()
	calls := 0

	var unsubscribe func()
	unsubscribe = bus.SubscribeClicks(func(Click) {
		calls++
		unsubscribe()
	})
	other := 0
	bus.SubscribeClicks(func(Click) { other++ })

	bus.PublishClick(Click{})
	bus.PublishClick(Click{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}
