// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Subscriber ports are implemented by outbound adapters (stream hub, webhook
// notifier) and invoked by the board store's fan-out.
package ports
