// Package resource holds the stateful side of the CRUD pattern: one store
// per entity wrapping its service binding. A store keeps the last-fetched
// collection, a loading flag, and the last error message, and mutates them
// optimistically after each successful remote call.
//
// State transitions go through an explicit reducer over a closed set of
// actions (set-loading, set-error, replace-collection, upsert-one,
// remove-one) so the optimistic-mutation edge cases are enumerable and
// testable in isolation from network timing.
//
// Concurrency contract: the loading flag reflects only the most recently
// settled call; overlapping operations from one store are neither queued nor
// cancelled. The screens driving the stores disable their triggering
// controls while loading is true. A store outlives any screen, so a late
// completion only mutates store state and never touches a torn-down view.
package resource

import "sync"

// State is the snapshot a store exposes to screens.
type State[T any] struct {
	// Items is the held collection (or the current page of it).
	Items []T

	// Loaded reports whether the collection has been fetched at least once;
	// before that Items is empty rather than meaningfully empty.
	Loaded bool

	// Loading is true while exactly one operation is in flight.
	Loading bool

	// Err is the last operation's human-readable error message, empty when
	// the last operation succeeded.
	Err string
}

type actionKind int

const (
	actionSetLoading actionKind = iota
	actionSetError
	actionReplaceAll
	actionUpsertOne
	actionRemoveOne
)

type action[T any] struct {
	kind    actionKind
	loading bool
	message string
	items   []T
	item    T
	id      int64
}

// reduce applies one action to a state snapshot and returns the next state.
// ident extracts the identifier used for upsert/remove matching.
func reduce[T any](state State[T], act action[T], ident func(T) int64) State[T] {
	switch act.kind {
	case actionSetLoading:
		state.Loading = act.loading
		if act.loading {
			state.Err = ""
		}
	case actionSetError:
		state.Err = act.message
	case actionReplaceAll:
		state.Items = act.items
		state.Loaded = true
	case actionUpsertOne:
		replaced := false
		for i, item := range state.Items {
			if ident(item) == ident(act.item) {
				state.Items[i] = act.item
				replaced = true
				break
			}
		}
		if !replaced {
			state.Items = append(state.Items, act.item)
		}
	case actionRemoveOne:
		kept := state.Items[:0:0]
		for _, item := range state.Items {
			if ident(item) != act.id {
				kept = append(kept, item)
			}
		}
		state.Items = kept
	}
	return state
}

// collection is the mutex-guarded reducer host shared by the three stores.
type collection[T any] struct {
	mu    sync.Mutex
	state State[T]
	ident func(T) int64
}

func newCollection[T any](ident func(T) int64) *collection[T] {
	return &collection[T]{ident: ident}
}

func (c *collection[T]) dispatch(acts ...action[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, act := range acts {
		c.state = reduce(c.state, act, c.ident)
	}
}

// snapshot returns a copy of the state with the items slice cloned, so a
// screen can read it without racing store mutations.
func (c *collection[T]) snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.state
	out.Items = append([]T(nil), c.state.Items...)
	return out
}

// begin marks an operation start: loading on, previous error cleared.
func (c *collection[T]) begin() {
	c.dispatch(action[T]{kind: actionSetLoading, loading: true})
}

// settle marks an operation end. On failure it records message as the
// store's error text.
func (c *collection[T]) settle(err error, message string) {
	acts := []action[T]{{kind: actionSetLoading, loading: false}}
	if err != nil {
		acts = append(acts, action[T]{kind: actionSetError, message: message})
	}
	c.dispatch(acts...)
}
