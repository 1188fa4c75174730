package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fitin/storefront/user/pkg/response"
)

func TestSubscribeInvokesWithCurrentState(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	user := response.User{ID: uuid.New(), Email: "ayesha@example.com", Role: "admin"}
	registry.Publish(State{User: &user, Admin: true})

	got := []State{}
	registry.Subscribe(func(s State) { got = append(got, s) })

	assert.Len(t, got, 1)
	assert.True(t, got[0].Admin)
	assert.Equal(t, "ayesha@example.com", got[0].User.Email)
}

func TestPublishNotifiesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	order := []string{}
	registry.Subscribe(func(State) { order = append(order, "first") })
	registry.Subscribe(func(State) { order = append(order, "second") })
	order = order[:0]

	registry.Publish(State{})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	calls := 0
	unsubscribe := registry.Subscribe(func(State) { calls++ })
	assert.Equal(t, 1, calls)

	unsubscribe()
	unsubscribe()
	registry.Publish(State{})

	assert.Equal(t, 1, calls)
}

func TestPublishReplacesCurrentState(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	assert.Nil(t, registry.Current().User)

	user := response.User{ID: uuid.New(), Email: "bilal@example.com", Role: "user"}
	registry.Publish(State{User: &user})
	assert.Equal(t, "bilal@example.com", registry.Current().User.Email)

	registry.Publish(State{})
	assert.Nil(t, registry.Current().User)
	assert.False(t, registry.Current().Admin)
}
