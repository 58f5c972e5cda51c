package scope

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// DigestLimit is the number of passes Digest makes before giving up.
const DigestLimit = 10

// ErrDigestLimit is returned when watchers keep changing after DigestLimit passes.
var ErrDigestLimit = errors.New("digest iterations limit reached")

// WatchFunc computes the watched value from the scope.
type WatchFunc func(s *Scope) any

// ListenerFunc is called with the new and previous value after a change.
type ListenerFunc func(newValue, oldValue any, s *Scope)

type watcher struct {
	get      WatchFunc
	listener ListenerFunc
	last     any
	primed   bool
	removed  bool
}

// Scope is an Object placed in a tree of scopes.
type Scope struct {
	Object

	id       string
	parent   *Scope
	children []*Scope
	watchers []*watcher
}

// NewRoot creates a scope with no parent.
func NewRoot() *Scope {
	return &Scope{id: uuid.NewString()}
}

// New creates a child scope.
func (s *Scope) New() *Scope {
	child := &Scope{id: uuid.NewString(), parent: s}
	s.children = append(s.children, child)
	return child
}

// ID returns the scope's unique id.
func (s *Scope) ID() string { return s.id }

// Parent returns the parent scope, or nil for a root.
func (s *Scope) Parent() *Scope { return s.parent }

// Children returns the direct child scopes in creation order.
func (s *Scope) Children() []*Scope { return s.children }

// Root returns the top of the tree.
func (s *Scope) Root() *Scope {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// Lookup finds name on this scope or the closest ancestor that has it.
func (s *Scope) Lookup(name string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Flatten returns every visible property; closer scopes shadow ancestors.
func (s *Scope) Flatten() map[string]any {
	var chain []*Scope
	for cur := s; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}

	out := make(map[string]any)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, k := range chain[i].Keys() {
			out[k], _ = chain[i].Get(k)
		}
	}
	return out
}

// Watch registers a watcher and returns a function that removes it.
// The listener runs on the first digest and on every change after that.
func (s *Scope) Watch(get WatchFunc, listener ListenerFunc) func() {
	w := &watcher{get: get, listener: listener}
	s.watchers = append(s.watchers, w)
	return func() { w.removed = true }
}

// Digest runs the watchers of s and its descendants until none reports a change.
func (s *Scope) Digest() error {
	for pass := 0; pass < DigestLimit; pass++ {
		if !s.digestOnce() {
			return nil
		}
	}
	return fmt.Errorf("%w (%d) on scope %s", ErrDigestLimit, DigestLimit, s.id)
}

func (s *Scope) digestOnce() bool {
	dirty := false

	for _, w := range append([]*watcher(nil), s.watchers...) {
		if w.removed {
			continue
		}
		value := w.get(s)
		if w.primed && equal(value, w.last) {
			continue
		}
		old := w.last
		if !w.primed {
			old = value
		}
		w.last, w.primed = value, true
		dirty = true
		if w.listener != nil {
			w.listener(value, old, s)
		}
	}

	live := make([]*watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		if !w.removed {
			live = append(live, w)
		}
	}
	s.watchers = live

	for _, child := range append([]*Scope(nil), s.children...) {
		if child.digestOnce() {
			dirty = true
		}
	}
	return dirty
}

// equal is reflect.DeepEqual except that funcs compare by code pointer, so a
// watched function value does not count as a change on every pass.
func equal(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func && vb.Kind() == reflect.Func {
		return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}
