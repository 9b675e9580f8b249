// Package interactions routes inbound interaction events: it decodes
// the opaque custom identifier into a tagged action, enforces
// authorization, drives the lifecycle services, and produces exactly
// one callback response per event.
package interactions

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kyudon/police-intake/internal/confirm"
	"github.com/kyudon/police-intake/internal/platform"
	"github.com/kyudon/police-intake/internal/services"
	"github.com/kyudon/police-intake/internal/store"
)

// Deferred-update callback type: acknowledges a component interaction
// without changing anything. Used as the no-op answer for identifiers
// this system never minted.
const respDeferredUpdate = 6

const genericFailure = "❌ Something went wrong while handling your request."

type Router struct {
	reports  *services.ReportService
	cases    *services.CaseService
	settings *store.Settings
	msgr     platform.Messenger
	resets   *confirm.Table
	admins   map[string]bool
}

func NewRouter(
	reports *services.ReportService,
	cases *services.CaseService,
	settings *store.Settings,
	msgr platform.Messenger,
	resets *confirm.Table,
	admins map[string]bool,
) *Router {
	return &Router{
		reports:  reports,
		cases:    cases,
		settings: settings,
		msgr:     msgr,
		resets:   resets,
		admins:   admins,
	}
}

// Dispatch answers one inbound interaction. It never returns nil for a
// kind the platform can deliver, and it never lets a fault escape: the
// worst outcome is a generic failure reply plus a logged detail record.
func (rt *Router) Dispatch(ctx context.Context, inter *platform.Interaction) *platform.Response {
	var (
		resp   *platform.Response
		err    error
		action string
	)
	switch inter.Kind {
	case platform.KindPing:
		return &platform.Response{Type: platform.RespPong}
	case platform.KindCommand:
		action = "command:" + inter.Data.Name
		resp, err = rt.handleCommand(ctx, inter)
	case platform.KindComponent:
		action = "component:" + inter.Data.CustomID
		resp, err = rt.handleComponent(ctx, inter)
	case platform.KindModalSubmit:
		action = "modal:" + inter.Data.CustomID
		resp, err = rt.handleModal(ctx, inter)
	default:
		slog.Warn("unhandled interaction kind", "kind", inter.Kind, "guild_id", inter.GuildID)
		return platform.Ephemeral(genericFailure)
	}
	if err != nil {
		return rt.failureResponse(err, inter, action)
	}
	return resp
}

// failureResponse translates handler outcomes into a response:
// sentinel outcomes become user-visible messages, anything else
// becomes the generic failure plus an audit record.
func (rt *Router) failureResponse(err error, inter *platform.Interaction, action string) *platform.Response {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return platform.Ephemeral("❌ Record not found.")
	case errors.Is(err, services.ErrForbidden):
		return platform.Ephemeral("❌ You do not have permission to do that.")
	case errors.Is(err, services.ErrInvalidState):
		return platform.Ephemeral("❌ This record has already been handled.")
	case errors.Is(err, services.ErrValidation):
		return platform.Ephemeral("❌ " + err.Error())
	}
	slog.Error("interaction handling failed",
		"action", action,
		"guild_id", inter.GuildID,
		"actor_id", inter.Actor().ID,
		"error", err,
	)
	return platform.Ephemeral(genericFailure)
}

// elevated reports whether the actor holds the administrator bit or is
// on the configured elevated-user list.
func (rt *Router) elevated(inter *platform.Interaction) bool {
	if inter.Member.HasAdmin() {
		return true
	}
	return rt.admins[inter.Actor().ID]
}

// reportChannel resolves the guild's report intake channel binding.
func (rt *Router) reportChannel(guildID string) (string, bool, error) {
	gs, found, err := rt.settings.Get(guildID)
	if err != nil {
		return "", false, err
	}
	if !found || gs.ReportChannelID == "" {
		return "", false, nil
	}
	return gs.ReportChannelID, true, nil
}

// caseLogChannel resolves the guild's case log channel binding.
func (rt *Router) caseLogChannel(guildID string) (string, bool, error) {
	gs, found, err := rt.settings.Get(guildID)
	if err != nil {
		return "", false, err
	}
	if !found || gs.CaseLogChannelID == "" {
		return "", false, nil
	}
	return gs.CaseLogChannelID, true, nil
}
