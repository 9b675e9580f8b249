package interactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/pagination"
	"github.com/kyudon/police-intake/internal/platform"
	"github.com/kyudon/police-intake/internal/render"
	"github.com/kyudon/police-intake/internal/services"
)

func (rt *Router) handleComponent(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	cid, ok := ParseCustomID(inter.Data.CustomID)
	if !ok {
		// Not an identifier this system minted. Acknowledge without
		// touching anything.
		slog.Warn("unrecognized component id",
			"custom_id", inter.Data.CustomID, "guild_id", inter.GuildID)
		return &platform.Response{Type: respDeferredUpdate}, nil
	}

	switch cid.Action {
	case ActionReportSubmit:
		if cid.ReportType == models.ReportTypeOther {
			return reportContentModal(), nil
		}
		return rt.fileAndPost(ctx, inter, cid.ReportType, "", false)

	case ActionReportPagePrev:
		return rt.turnHistoryPage(inter, cid, cid.Page-1)
	case ActionReportPageNext:
		return rt.turnHistoryPage(inter, cid, cid.Page+1)
	case ActionReportPageInfo:
		return &platform.Response{Type: respDeferredUpdate}, nil

	case ActionDispatch, ActionArrive, ActionProcessing, ActionCloseReport:
		return rt.advanceReport(inter, cid)

	case ActionAssignCase:
		return rt.assignCase(inter, cid.EntityID)

	case ActionDeleteReportMenu:
		return rt.deleteReportFromMenu(ctx, inter)
	case ActionEditCaseMenu:
		return rt.editCaseFromMenu(inter, false)
	case ActionAdminEditCaseMenu:
		return rt.editCaseFromMenu(inter, true)
	case ActionCloseCaseMenu:
		return rt.closeCaseFromMenu(ctx, inter)
	case ActionDeleteCaseMenu:
		return rt.deleteCaseFromMenu(ctx, inter)

	default:
		slog.Warn("component id decoded to unhandled action",
			"custom_id", inter.Data.CustomID, "guild_id", inter.GuildID)
		return &platform.Response{Type: respDeferredUpdate}, nil
	}
}

// fileAndPost creates the report and posts it to the intake channel.
// The confirmation replaces the picker for button submissions and is a
// fresh ephemeral reply for modal submissions.
func (rt *Router) fileAndPost(ctx context.Context, inter *platform.Interaction, reportType, content string, viaModal bool) (*platform.Response, error) {
	reply := platform.UpdateContent
	if viaModal {
		reply = platform.Ephemeral
	}

	channelID, configured, err := rt.reportChannel(inter.GuildID)
	if err != nil {
		return nil, err
	}
	if !configured {
		return reply("❌ The report intake channel is not set up. Ask an administrator to run `/setup-intake`."), nil
	}

	actor := inter.Actor()
	report, err := rt.reports.File(inter.GuildID, actor.ID, actor.Tag(), reportType, content)
	if err != nil {
		return nil, err
	}

	messageID, err := rt.msgr.Send(ctx, channelID, platform.MessagePayload{
		Embeds:     []platform.Embed{render.ReportEmbed(report)},
		Components: render.ReportActions(report),
	})
	if err != nil {
		slog.Error("report filed but intake post failed",
			"report_id", report.ID, "guild_id", inter.GuildID, "error", err)
		return reply(fmt.Sprintf("⚠️ Your report was saved (Report No: %s) but could not be posted to the intake channel.", report.ShortID())), nil
	}
	if err := rt.reports.SetMessageID(report.ID, messageID); err != nil {
		slog.Error("failed to link intake message",
			"report_id", report.ID, "message_id", messageID, "error", err)
	}

	return reply(fmt.Sprintf("✅ Your %s report has been filed. (Report No: %s)",
		render.ReportTypeLabel(report.Type), report.ShortID())), nil
}

// turnHistoryPage re-renders the actor's history at newPage. Only the
// user baked into the identifier may turn their own pages.
func (rt *Router) turnHistoryPage(inter *platform.Interaction, cid CustomID, newPage int) (*platform.Response, error) {
	if inter.Actor().ID != cid.UserID {
		return nil, services.ErrForbidden
	}
	if newPage < 0 {
		newPage = 0
	}

	reports, err := rt.reports.History(cid.UserID)
	if err != nil {
		return nil, err
	}
	page, totalPages := pagination.Window(reports, historyPageSize, newPage)
	if len(page) == 0 {
		return platform.Ephemeral("❌ Invalid page."), nil
	}

	return &platform.Response{
		Type: platform.RespUpdateMessage,
		Data: &platform.ResponseData{
			Embeds: []platform.Embed{render.HistoryEmbed(
				page, newPage*historyPageSize, newPage, totalPages, len(reports))},
			Components: []platform.ActionRow{render.PaginationRow(newPage, totalPages, cid.UserID)},
		},
	}, nil
}

// advanceReport drives one lifecycle step and re-renders the intake
// message in place: the Status field is patched, the step's own fields
// are appended, and the action row becomes the next step's button.
func (rt *Router) advanceReport(inter *platform.Interaction, cid CustomID) (*platform.Response, error) {
	actor := inter.Actor()
	now := time.Now().UTC()

	var (
		report *models.Report
		err    error
	)
	switch cid.Action {
	case ActionDispatch:
		report, err = rt.reports.Dispatch(cid.EntityID, actor.Tag())
	case ActionArrive:
		report, err = rt.reports.Arrive(cid.EntityID)
	case ActionProcessing:
		report, err = rt.reports.StartProcessing(cid.EntityID)
	case ActionCloseReport:
		report, err = rt.reports.Close(cid.EntityID)
	}
	if err != nil {
		return nil, err
	}

	embed := render.ReportEmbed(report)
	if inter.Message != nil && len(inter.Message.Embeds) > 0 {
		embed = inter.Message.Embeds[0]
	}
	embed = render.PatchField(embed, "Status", render.ReportStatusValue(report.Status))

	switch cid.Action {
	case ActionDispatch:
		embed = render.AppendField(embed, "Responder", report.Responder, true)
		embed = render.AppendField(embed, "Dispatched At", render.FormatTime(now), true)
	case ActionArrive:
		embed = render.AppendField(embed, "Arrived At", render.FormatTime(now), true)
	case ActionProcessing:
		embed = render.AppendField(embed, "Processing Since", render.FormatTime(now), true)
	case ActionCloseReport:
		embed = render.AppendField(embed, "Closed At", render.FormatTime(now), true)
		embed.Color = render.ColorGreen
	}

	return &platform.Response{
		Type: platform.RespUpdateMessage,
		Data: &platform.ResponseData{
			Embeds:     []platform.Embed{embed},
			Components: render.ReportActions(report),
		},
	}, nil
}

// assignCase claims the case for the acting user and strips the assign
// button from the mirror.
func (rt *Router) assignCase(inter *platform.Interaction, caseID string) (*platform.Response, error) {
	actor := inter.Actor()
	c, err := rt.cases.Assign(caseID, actor.Tag())
	if err != nil {
		return nil, err
	}

	embed := render.CaseEmbed(c)
	if inter.Message != nil && len(inter.Message.Embeds) > 0 {
		embed = render.PatchField(inter.Message.Embeds[0], "Officer", c.Officer)
	}
	return &platform.Response{
		Type: platform.RespUpdateMessage,
		Data: &platform.ResponseData{
			Embeds:     []platform.Embed{embed},
			Components: []platform.ActionRow{},
		},
	}, nil
}

// selectedValue returns the single chosen menu value.
func selectedValue(inter *platform.Interaction) (string, bool) {
	if len(inter.Data.Values) == 0 {
		return "", false
	}
	return inter.Data.Values[0], true
}

func (rt *Router) deleteReportFromMenu(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	id, ok := selectedValue(inter)
	if !ok {
		return platform.UpdateContent("❌ No report selected."), nil
	}

	report, err := rt.reports.Get(id)
	if err != nil {
		return nil, err
	}
	if err := rt.reports.Delete(id); err != nil {
		return nil, err
	}

	// Best-effort cleanup of the posted intake message.
	if report.MessageID != "" {
		if channelID, configured, err := rt.reportChannel(inter.GuildID); err == nil && configured {
			if err := rt.msgr.Delete(ctx, channelID, report.MessageID); err != nil {
				slog.Warn("failed to delete intake message",
					"report_id", report.ID, "message_id", report.MessageID, "error", err)
			}
		}
	}

	slog.Info("report deleted",
		"report_id", report.ID, "guild_id", inter.GuildID, "actor_id", inter.Actor().ID)
	return platform.UpdateContent(fmt.Sprintf("✅ Report deleted. (Report No: %s)", report.ShortID())), nil
}

// editCaseFromMenu opens the prefilled edit modal for the chosen case.
// The non-admin path re-checks ownership before showing the form; the
// admin path re-checks elevation because the menu reply alone proves
// nothing.
func (rt *Router) editCaseFromMenu(inter *platform.Interaction, admin bool) (*platform.Response, error) {
	id, ok := selectedValue(inter)
	if !ok {
		return platform.UpdateContent("❌ No case selected."), nil
	}
	if admin && !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}

	c, err := rt.cases.Get(id)
	if err != nil {
		return nil, err
	}
	if !admin && c.UserID != inter.Actor().ID {
		return platform.UpdateContent("❌ You can only edit your own cases."), nil
	}

	customID := "case_edit_modal_" + c.ID
	if admin {
		customID = "admin_case_edit_modal_" + c.ID
	}
	return caseModal(customID, "Edit Case "+c.CaseNumber, c.Title, c.Description), nil
}

func (rt *Router) closeCaseFromMenu(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	id, ok := selectedValue(inter)
	if !ok {
		return platform.UpdateContent("❌ No case selected."), nil
	}

	c, err := rt.cases.Close(id, inter.Actor().ID)
	if errors.Is(err, services.ErrForbidden) {
		return platform.UpdateContent("❌ You can only close your own cases."), nil
	}
	if err != nil {
		return nil, err
	}

	rt.logCaseClosure(ctx, inter.GuildID, c)
	return platform.UpdateContent(fmt.Sprintf("✅ Case %s closed.", c.CaseNumber)), nil
}

func (rt *Router) deleteCaseFromMenu(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	id, ok := selectedValue(inter)
	if !ok {
		return platform.UpdateContent("❌ No case selected."), nil
	}
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}

	c, err := rt.cases.Delete(id)
	if err != nil {
		return nil, err
	}

	// Best-effort cleanup of the mirrored log message.
	if c.MessageID != "" {
		if channelID, configured, err := rt.caseLogChannel(inter.GuildID); err == nil && configured {
			if err := rt.msgr.Delete(ctx, channelID, c.MessageID); err != nil {
				slog.Warn("failed to delete case log message",
					"case_id", c.ID, "message_id", c.MessageID, "error", err)
			}
		}
	}

	slog.Info("case deleted",
		"case_id", c.ID, "case_number", c.CaseNumber,
		"guild_id", inter.GuildID, "actor_id", inter.Actor().ID)
	return platform.UpdateContent(fmt.Sprintf("✅ Case %s deleted.", c.CaseNumber)), nil
}

// reportContentModal is the free-text form for "other" reports.
func reportContentModal() *platform.Response {
	return &platform.Response{
		Type: platform.RespModal,
		Data: &platform.ResponseData{
			CustomID: "custom_report_modal",
			Title:    "Emergency Report",
			Components: []platform.ActionRow{
				platform.Row(platform.Component{
					Type:      platform.ComponentTextInput,
					CustomID:  "report_content",
					Label:     "Report Details",
					Style:     platform.TextInputParagraph,
					MaxLength: 1000,
					Required:  true,
				}),
			},
		},
	}
}
