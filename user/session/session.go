// Package session tracks the authenticated user and pushes state
// changes to subscribers.
package session

import (
	"sort"
	"sync"

	"github.com/fitin/storefront/user/pkg/response"
)

// State is the auth snapshot pushed to subscribers. A nil User means
// signed out.
type State struct {
	User  *response.User
	Admin bool
}

type Registry struct {
	mu       sync.Mutex
	current  State
	nextID   int
	handlers map[int]func(State)
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[int]func(State){}}
}

// Subscribe registers fn and immediately invokes it with the current
// state. The returned function unsubscribes; calling it more than once
// is harmless.
func (r *Registry) Subscribe(fn func(State)) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.handlers[id] = fn
	current := r.current
	r.mu.Unlock()

	fn(current)

	return func() {
		r.mu.Lock()
		delete(r.handlers, id)
		r.mu.Unlock()
	}
}

// Publish replaces the current state and invokes every subscriber
// serially in subscription order.
func (r *Registry) Publish(s State) {
	r.mu.Lock()
	r.current = s
	ids := make([]int, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]func(State), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, r.handlers[id])
	}
	r.mu.Unlock()

	for _, fn := range handlers {
		fn(s)
	}
}

func (r *Registry) Current() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
