package dto

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
)

// NotificationEvent is the wire form of a notification. Action, when
// present, is the envelope to post back if the user picks Label.
type NotificationEvent struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Label   string       `json:"label,omitempty"`
	Action  *MsgEnvelope `json:"action,omitempty"`
}

// ToNotificationEvent converts a notification for the wire.
func ToNotificationEvent(n root.Notification) (NotificationEvent, error) {
	ev := NotificationEvent{
		Kind:    n.Kind.String(),
		Message: n.Message,
		Label:   n.Label,
	}
	if n.HasAction() {
		env, err := EncodeMsg(n.Action)
		if err != nil {
			return NotificationEvent{}, err
		}
		ev.Action = &env
	}
	return ev, nil
}

// CommandEvent is the wire form of a host command.
type CommandEvent struct {
	Command string `json:"command"`
}

// ToCommandEvent converts a host command for the wire.
func ToCommandEvent(c root.Command) CommandEvent {
	return CommandEvent{Command: string(c)}
}

// AcceptedResponse acknowledges a posted message.
type AcceptedResponse struct {
	Accepted string `json:"accepted"`
}
