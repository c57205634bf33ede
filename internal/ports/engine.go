package ports

import (
	"context"

	"github.com/jsamuelsen11/delivery-core/internal/app/root"
)

// StateEngine is the renderer's view of the running engine.
type StateEngine interface {
	// State returns the latest published state.
	State() root.RootState

	// Accept feeds msg to the engine. It never blocks on effect work.
	Accept(msg root.Msg)

	// Updates returns a channel closed at the next state publication.
	Updates() <-chan struct{}
}

// NotificationSource yields notifications in emission order.
type NotificationSource interface {
	NextNotification(ctx context.Context) (root.Notification, error)
}

// CommandSource yields host commands in emission order.
type CommandSource interface {
	NextCommand(ctx context.Context) (root.Command, error)
}
