package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// EngineHandler exposes the state engine to a remote renderer: the current
// state, a message inbox and event streams for state, notifications and
// host commands.
type EngineHandler struct {
	engine        ports.StateEngine
	notifications ports.NotificationSource
	commands      ports.CommandSource
	logger        *slog.Logger
}

// NewEngineHandler creates a new EngineHandler.
func NewEngineHandler(
	engine ports.StateEngine,
	notifications ports.NotificationSource,
	commands ports.CommandSource,
	logger *slog.Logger,
) *EngineHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EngineHandler{
		engine:        engine,
		notifications: notifications,
		commands:      commands,
		logger:        logger,
	}
}

// State handles GET /api/v1/state.
func (h *EngineHandler) State(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.State())
}

// PostMessage handles POST /api/v1/messages. The message is handed to the
// engine; its effects are observable through the streams.
func (h *EngineHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var env dto.MsgEnvelope
	if !readJSON(w, r, &env) {
		return
	}

	msg, err := dto.DecodeMsg(env)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.engine.Accept(msg)
	writeJSON(w, http.StatusAccepted, dto.AcceptedResponse{Accepted: env.Type})
}

// StateStream handles GET /api/v1/state/stream. The current state is sent
// on connect and again after every publication. Publications that happen
// while a state is being written are coalesced.
func (h *EngineHandler) StateStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := openStream(w)

	for {
		updates := h.engine.Updates()
		if err := s.send("state", h.engine.State()); err != nil {
			h.closed(ctx, "state", err)
			return
		}
		select {
		case <-updates:
		case <-ctx.Done():
			h.closed(ctx, "state", ctx.Err())
			return
		}
	}
}

// Notifications handles GET /api/v1/notifications. Each notification is
// delivered to exactly one connected client.
func (h *EngineHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := openStream(w)

	for {
		n, err := h.notifications.NextNotification(ctx)
		if err != nil {
			h.closed(ctx, "notifications", err)
			return
		}
		ev, err := dto.ToNotificationEvent(n)
		if err != nil {
			h.logger.ErrorContext(ctx, "dropping notification",
				slog.String("message", n.Message),
				slog.Any("error", err),
			)
			continue
		}
		if err := s.send("notification", ev); err != nil {
			h.logger.WarnContext(ctx, "notification lost",
				slog.String("message", n.Message),
				slog.Any("error", err),
			)
			return
		}
	}
}

// Commands handles GET /api/v1/commands.
func (h *EngineHandler) Commands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := openStream(w)

	for {
		c, err := h.commands.NextCommand(ctx)
		if err != nil {
			h.closed(ctx, "commands", err)
			return
		}
		if err := s.send("command", dto.ToCommandEvent(c)); err != nil {
			h.logger.WarnContext(ctx, "command lost",
				slog.String("command", string(c)),
				slog.Any("error", err),
			)
			return
		}
	}
}

func (h *EngineHandler) closed(ctx context.Context, stream string, err error) {
	level := slog.LevelDebug
	if !errors.Is(err, context.Canceled) {
		level = slog.LevelInfo
	}
	h.logger.Log(ctx, level, "event stream closed",
		slog.String("stream", stream),
		slog.Any("error", err),
	)
}
