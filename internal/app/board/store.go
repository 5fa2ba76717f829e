// Package board implements the project-state store: the single authoritative
// owner of the board's project list and the fan-out that keeps subscribers in
// sync with it.
//
// Semantics:
//
//   - Single source of truth: every subscriber's most recent snapshot equals
//     the store's state at the time of its last notification.
//   - Fan-out is synchronous and runs in subscriber-registration order. Each
//     subscriber receives its own independent snapshot copy, so mutating a
//     received snapshot never corrupts the store or another subscriber's view.
//   - Mutations are serialized through a FIFO queue. A mutation submitted
//     while a fan-out is in progress (for example from inside a subscriber
//     callback) is queued and applied, with its own complete fan-out, before
//     the call that started the fan-out returns.
//   - Moving to an unknown id or to the current status is a silent no-op
//     with no notification, which makes Move idempotent.
//
// The store is constructed explicitly and wired into its consumers; there is
// no package-level instance.
package board

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Store owns the ordered project list (insertion order = creation order,
// stable across mutations) and the ordered subscriber list. All methods are
// safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	projects []project.Project
	subs     []*subscription
	draining bool
	pending  []func() bool
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Subscribe registers sub to receive a snapshot after every applied mutation
// and returns its subscription handle. Subscribers registered while a fan-out
// is in progress first hear about subsequent mutations.
func (s *Store) Subscribe(sub ports.BoardSubscriber) ports.Subscription {
	h := &subscription{store: s, sub: sub}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, h)

	return h
}

// Add constructs a project with Active status and a fresh unique id, appends
// it to the board, and notifies all subscribers. It returns the created
// record as a value copy. Add performs no validation and always succeeds.
func (s *Store) Add(title, description string, people int) project.Project {
	p := project.New(title, description, people)

	s.submit(func() bool {
		s.projects = append(s.projects, p)
		return true
	})

	return p
}

// Move transitions the project with the given id to the requested status and
// notifies all subscribers. When the id is unknown or the project already has
// that status, Move is a silent no-op and nobody is notified. At most one
// record changes per call.
func (s *Store) Move(id string, status project.Status) {
	s.submit(func() bool {
		for i := range s.projects {
			if s.projects[i].ID != id {
				continue
			}
			if s.projects[i].Status == status {
				return false
			}
			s.projects[i].Status = status
			return true
		}
		return false
	})
}

// Snapshot returns an independent copy of the current project list in
// creation order.
func (s *Store) Snapshot() project.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return project.Snapshot(slices.Clone(s.projects))
}

// Get returns the project with the given id.
// Returns domain.ErrNotFound if no project has that id.
func (s *Store) Get(id string) (project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

// submit enqueues a mutation and drains the queue unless a drain is already
// in progress, in which case the active drainer will pick the mutation up.
// Each applied mutation that reports a change is followed by its own fan-out
// before the next queued mutation is applied, so subscribers observe
// mutations strictly in application order.
func (s *Store) submit(apply func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, apply)
	if s.draining {
		return
	}

	s.draining = true
	defer func() { s.draining = false }()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]

		if next() {
			s.notifyLocked()
		}
	}
}

// notifyLocked fans the current state out to every subscriber in
// registration order. Called with s.mu held; the lock is released while
// callbacks run and re-acquired before returning, even if a callback panics.
func (s *Store) notifyLocked() {
	master := project.Snapshot(slices.Clone(s.projects))
	subs := slices.Clone(s.subs)

	s.mu.Unlock()
	defer s.mu.Lock()

	for _, h := range subs {
		h.sub.OnSnapshot(master.Clone())
	}
}

// remove drops h from the subscriber list, preserving the registration order
// of the remaining subscribers. No-op if h was already removed.
func (s *Store) remove(h *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.subs {
		if cur == h {
			s.subs = slices.Delete(s.subs, i, i+1)
			return
		}
	}
}

// subscription is the handle returned by Subscribe.
type subscription struct {
	store *Store
	sub   ports.BoardSubscriber
}

var _ ports.Subscription = (*subscription)(nil)

// Unsubscribe removes the subscriber from the store. It is idempotent and
// takes effect for notifications that begin after the call; a fan-out already
// in flight still delivers to the subscriber.
func (h *subscription) Unsubscribe() {
	h.store.remove(h)
}
