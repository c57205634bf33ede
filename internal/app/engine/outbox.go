package engine

import (
	"context"

	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/queue"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.NotificationSource = (*Notifications)(nil)
	_ ports.CommandSource      = (*Commands)(nil)
)

// Notifications is the queue between effect handlers and the renderer's
// notification surface.
type Notifications struct {
	q *queue.Unbounded[root.Notification]
}

// NewNotifications returns an empty notification queue.
func NewNotifications() *Notifications {
	return &Notifications{q: queue.New[root.Notification]()}
}

// Push enqueues n without blocking.
func (n *Notifications) Push(x root.Notification) { n.q.Push(x) }

// NextNotification blocks until a notification is available.
func (n *Notifications) NextNotification(ctx context.Context) (root.Notification, error) {
	return n.q.Pop(ctx)
}

// Len reports the number of undelivered notifications.
func (n *Notifications) Len() int { return n.q.Len() }

// Close wakes waiting readers once the queue is drained.
func (n *Notifications) Close() { n.q.Close() }

// Commands is the queue of host commands such as Finish.
type Commands struct {
	q *queue.Unbounded[root.Command]
}

// NewCommands returns an empty command queue.
func NewCommands() *Commands {
	return &Commands{q: queue.New[root.Command]()}
}

// Push enqueues c without blocking.
func (c *Commands) Push(x root.Command) { c.q.Push(x) }

// NextCommand blocks until a command is available.
func (c *Commands) NextCommand(ctx context.Context) (root.Command, error) {
	return c.q.Pop(ctx)
}

// Close wakes waiting readers once the queue is drained.
func (c *Commands) Close() { c.q.Close() }
