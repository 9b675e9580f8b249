package interactions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/platform"
	"github.com/kyudon/police-intake/internal/render"
	"github.com/kyudon/police-intake/internal/services"
)

func (rt *Router) handleModal(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	cid, ok := ParseCustomID(inter.Data.CustomID)
	if !ok {
		slog.Warn("unrecognized modal id",
			"custom_id", inter.Data.CustomID, "guild_id", inter.GuildID)
		return platform.Ephemeral(genericFailure), nil
	}

	switch cid.Action {
	case ActionCustomReportModal:
		content := inter.Data.TextValue("report_content")
		return rt.fileAndPost(ctx, inter, models.ReportTypeOther, content, true)
	case ActionCaseRegisterModal:
		return rt.registerCase(ctx, inter)
	case ActionCaseEditModal:
		return rt.submitCaseEdit(ctx, inter, cid.EntityID, false)
	case ActionAdminCaseEditModal:
		return rt.submitCaseEdit(ctx, inter, cid.EntityID, true)
	default:
		slog.Warn("modal id decoded to unhandled action",
			"custom_id", inter.Data.CustomID, "guild_id", inter.GuildID)
		return platform.Ephemeral(genericFailure), nil
	}
}

// registerCase creates the case and mirrors it to the log channel.
func (rt *Router) registerCase(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	channelID, configured, err := rt.caseLogChannel(inter.GuildID)
	if err != nil {
		return nil, err
	}
	if !configured {
		return platform.Ephemeral("❌ The case log channel is not set up. Ask an administrator to run `/case-setup`."), nil
	}

	actor := inter.Actor()
	c, err := rt.cases.Register(inter.GuildID, actor.ID, actor.Tag(),
		inter.Data.TextValue("case_title"), inter.Data.TextValue("case_description"))
	if err != nil {
		return nil, err
	}

	messageID, err := rt.msgr.Send(ctx, channelID, platform.MessagePayload{
		Embeds:     []platform.Embed{render.CaseEmbed(c)},
		Components: render.CaseActions(c),
	})
	if err != nil {
		slog.Error("case registered but log post failed",
			"case_id", c.ID, "guild_id", inter.GuildID, "error", err)
		return platform.Ephemeral(fmt.Sprintf("⚠️ Your case was saved (Case No: **%s**) but could not be posted to the log channel.", c.CaseNumber)), nil
	}
	if err := rt.cases.SetMessageID(c.ID, messageID); err != nil {
		slog.Error("failed to link case log message",
			"case_id", c.ID, "message_id", messageID, "error", err)
	}

	return platform.Ephemeral(fmt.Sprintf("✅ Case registered. (Case No: **%s**)", c.CaseNumber)), nil
}

// submitCaseEdit applies an edit modal and refreshes the mirror.
func (rt *Router) submitCaseEdit(ctx context.Context, inter *platform.Interaction, caseID string, admin bool) (*platform.Response, error) {
	if admin && !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}

	c, err := rt.cases.Edit(caseID, inter.Actor().ID, admin,
		inter.Data.TextValue("case_title"), inter.Data.TextValue("case_description"))
	if err != nil {
		return nil, err
	}

	rt.updateCaseMirror(ctx, inter.GuildID, c)
	return platform.Ephemeral(fmt.Sprintf("✅ Case %s updated.", c.CaseNumber)), nil
}

// updateCaseMirror patches the mirrored log message's Title and
// Description in place. Failures only log: the record is already the
// source of truth.
func (rt *Router) updateCaseMirror(ctx context.Context, guildID string, c *models.Case) {
	if c.MessageID == "" {
		return
	}
	channelID, configured, err := rt.caseLogChannel(guildID)
	if err != nil || !configured {
		return
	}

	msg, err := rt.msgr.Fetch(ctx, channelID, c.MessageID)
	if err != nil || len(msg.Embeds) == 0 {
		slog.Warn("failed to fetch case log message for edit",
			"case_id", c.ID, "message_id", c.MessageID, "error", err)
		return
	}

	embed := render.PatchField(msg.Embeds[0], "Title", c.Title)
	embed = render.PatchField(embed, "Description", c.Description)
	if err := rt.msgr.Edit(ctx, channelID, c.MessageID, platform.MessagePayload{
		Embeds:     []platform.Embed{embed},
		Components: render.CaseActions(c),
	}); err != nil {
		slog.Warn("failed to update case log message",
			"case_id", c.ID, "message_id", c.MessageID, "error", err)
	}
}

// logCaseClosure posts the closure entry and turns the mirror green.
// Both are best effort.
func (rt *Router) logCaseClosure(ctx context.Context, guildID string, c *models.Case) {
	channelID, configured, err := rt.caseLogChannel(guildID)
	if err != nil || !configured {
		return
	}

	closedAt := time.Now().UTC()
	if c.ClosedAt != nil {
		closedAt = *c.ClosedAt
	}
	if _, err := rt.msgr.Send(ctx, channelID, platform.MessagePayload{
		Embeds: []platform.Embed{render.ClosureLogEmbed(c, closedAt)},
	}); err != nil {
		slog.Warn("failed to post case closure log",
			"case_id", c.ID, "guild_id", guildID, "error", err)
	}

	if c.MessageID == "" {
		return
	}
	msg, err := rt.msgr.Fetch(ctx, channelID, c.MessageID)
	if err != nil || len(msg.Embeds) == 0 {
		slog.Warn("failed to fetch case log message for closure",
			"case_id", c.ID, "message_id", c.MessageID, "error", err)
		return
	}

	embed := render.PatchField(msg.Embeds[0], "Status", render.CaseStatusValue(models.CaseStatusClosed))
	embed = render.AppendField(embed, "Closed At", render.FormatTime(closedAt), true)
	embed.Color = render.ColorGreen
	if err := rt.msgr.Edit(ctx, channelID, c.MessageID, platform.MessagePayload{
		Embeds:     []platform.Embed{embed},
		Components: []platform.ActionRow{},
	}); err != nil {
		slog.Warn("failed to update case log message on closure",
			"case_id", c.ID, "message_id", c.MessageID, "error", err)
	}
}
