// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers
// and the background worker. Outbound ports (transactions, task queues,
// principal lookup, stores) are implemented by adapters and called by the
// application layer.
package ports
