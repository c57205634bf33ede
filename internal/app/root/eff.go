package root

import (
	"fmt"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
)

// Eff describes side-effecting work requested by the reducer.
type Eff interface{ isEff() }

// Feature-tagged effects, routed to the owning feature's handler.
type (
	DishesEff   struct{ Eff dishes.Eff }
	DishEff     struct{ Eff dish.Eff }
	CartEff     struct{ Eff cart.Eff }
	HomeEff     struct{ Eff home.Eff }
	MenuEff     struct{ Eff menu.Eff }
	FavoriteEff struct{ Eff favorites.Eff }
)

// Nav commits a Navigate message for Cmd.
type Nav struct{ Cmd NavCmd }

// Cmd sends Command to the host.
type Cmd struct{ Command Command }

// Notify shows a notification.
type Notify struct{ Notification Notification }

// SyncCounter keeps the cart badge in step with storage.
type SyncCounter struct{}

// SyncEntity backfills the local dish and category caches when empty.
type SyncEntity struct{}

// ToggleLikeEff persists a favorite flag.
type ToggleLikeEff struct {
	DishID     string
	IsFavorite bool
}

// AddToCartEff adds one unit and offers to undo it.
type AddToCartEff struct {
	DishID string
	Title  string
}

// RemoveFromCartEff removes one unit and reports it.
type RemoveFromCartEff struct {
	DishID string
	Title  string
}

// Terminate cancels the in-flight work of the handler owning Route.
type Terminate struct{ Route string }

func (DishesEff) isEff()         {}
func (DishEff) isEff()           {}
func (CartEff) isEff()           {}
func (HomeEff) isEff()           {}
func (MenuEff) isEff()           {}
func (FavoriteEff) isEff()       {}
func (Nav) isEff()               {}
func (Cmd) isEff()               {}
func (Notify) isEff()            {}
func (SyncCounter) isEff()       {}
func (SyncEntity) isEff()        {}
func (ToggleLikeEff) isEff()     {}
func (AddToCartEff) isEff()      {}
func (RemoveFromCartEff) isEff() {}
func (Terminate) isEff()         {}

// NotificationKind distinguishes plain, error and actionable notifications.
type NotificationKind uint8

const (
	NotificationText NotificationKind = iota
	NotificationError
	NotificationAction
)

var notificationKindNames = [...]string{
	NotificationText:   "text",
	NotificationError:  "error",
	NotificationAction: "action",
}

// String implements fmt.Stringer.
func (k NotificationKind) String() string {
	if int(k) < len(notificationKindNames) {
		return notificationKindNames[k]
	}
	return fmt.Sprintf("NotificationKind(%d)", k)
}

// ParseNotificationKind is the inverse of NotificationKind.String.
func ParseNotificationKind(s string) (NotificationKind, error) {
	for i, name := range notificationKindNames {
		if name == s {
			return NotificationKind(i), nil
		}
	}
	return 0, fmt.Errorf("root: unknown notification kind %q", s)
}

// Notification is a message for the user. Label and Action are set when the
// user can respond: accepting Action is what invoking the label does.
type Notification struct {
	Kind    NotificationKind
	Message string
	Label   string
	Action  Msg
}

// TextNotification returns a plain informational notification.
func TextNotification(message string) Notification {
	return Notification{Kind: NotificationText, Message: message}
}

// ErrorNotification returns a failure notification.
func ErrorNotification(message string) Notification {
	return Notification{Kind: NotificationError, Message: message}
}

// ActionNotification returns a notification offering action under label.
func ActionNotification(message, label string, action Msg) Notification {
	return Notification{Kind: NotificationAction, Message: message, Label: label, Action: action}
}

// HasAction reports whether the notification carries a follow-up message.
func (n Notification) HasAction() bool { return n.Action != nil }
