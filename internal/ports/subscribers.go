package ports

import "github.com/jsamuelsen11/taskboard/internal/domain/project"

// BoardSubscriber receives a full board snapshot after every applied
// mutation. The snapshot is an independent copy owned by the subscriber;
// mutating it has no effect on the board or on other subscribers.
//
// OnSnapshot is invoked synchronously during fan-out, so implementations
// must not block. Adapters that perform I/O (webhooks, sockets) hand the
// snapshot off to their own goroutines.
type BoardSubscriber interface {
	OnSnapshot(snapshot project.Snapshot)
}

// SubscriberFunc adapts a plain function to the BoardSubscriber interface.
type SubscriberFunc func(snapshot project.Snapshot)

// OnSnapshot calls f.
func (f SubscriberFunc) OnSnapshot(snapshot project.Snapshot) {
	f(snapshot)
}

// Subscription is the handle returned when a subscriber registers with the
// board. Unsubscribe removes the registration; it is idempotent and safe to
// call from any goroutine, including from inside OnSnapshot. Removal takes
// effect for notifications that begin after the call.
type Subscription interface {
	Unsubscribe()
}
