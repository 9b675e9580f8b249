package interactions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/pagination"
	"github.com/kyudon/police-intake/internal/platform"
	"github.com/kyudon/police-intake/internal/render"
	"github.com/kyudon/police-intake/internal/services"
)

const (
	historyPageSize = 5

	// Select menus carry at most this many options on the wire.
	menuOptionCap = 25
)

func (rt *Router) handleCommand(ctx context.Context, inter *platform.Interaction) (*platform.Response, error) {
	switch inter.Data.Name {
	case "report":
		return rt.cmdReport(inter)
	case "report-history":
		return rt.cmdReportHistory(inter)
	case "report-delete":
		return rt.cmdReportDelete(inter)
	case "report-reset":
		return rt.cmdReportReset(inter)
	case "setup-intake":
		return rt.cmdSetupIntake(inter)
	case "case-register":
		return rt.cmdCaseRegister(inter)
	case "case-edit":
		return rt.cmdCaseEdit(inter)
	case "case-force-edit":
		return rt.cmdCaseForceEdit(inter)
	case "case-close":
		return rt.cmdCaseClose(inter)
	case "case-delete":
		return rt.cmdCaseDelete(inter)
	case "case-lookup":
		return rt.cmdCaseLookup(inter)
	case "case-setup":
		return rt.cmdCaseSetup(inter)
	default:
		slog.Warn("unknown command", "name", inter.Data.Name, "guild_id", inter.GuildID)
		return platform.Ephemeral(genericFailure), nil
	}
}

// cmdReport shows the report-type picker, visible only to the actor.
func (rt *Router) cmdReport(inter *platform.Interaction) (*platform.Response, error) {
	return &platform.Response{
		Type: platform.RespMessage,
		Data: &platform.ResponseData{
			Embeds:     []platform.Embed{render.TypePickerEmbed()},
			Components: render.TypePickerRows(),
			Flags:      platform.FlagEphemeral,
		},
	}, nil
}

// cmdReportHistory renders the first page of the actor's own reports.
func (rt *Router) cmdReportHistory(inter *platform.Interaction) (*platform.Response, error) {
	actor := inter.Actor()
	reports, err := rt.reports.History(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return platform.Ephemeral("📋 You have not filed any reports."), nil
	}

	page, totalPages := pagination.Window(reports, historyPageSize, 0)
	data := &platform.ResponseData{
		Embeds: []platform.Embed{render.HistoryEmbed(page, 0, 0, totalPages, len(reports))},
		Flags:  platform.FlagEphemeral,
	}
	if totalPages > 1 {
		data.Components = []platform.ActionRow{render.PaginationRow(0, totalPages, actor.ID)}
	}
	return &platform.Response{Type: platform.RespMessage, Data: data}, nil
}

// cmdReportDelete offers an elevated actor a menu of the target user's
// reports to delete.
func (rt *Router) cmdReportDelete(inter *platform.Interaction) (*platform.Response, error) {
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}
	targetID := inter.Data.Option("user")
	if targetID == "" {
		return platform.Ephemeral("❌ A target user is required."), nil
	}

	reports, err := rt.reports.History(targetID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return platform.Ephemeral(fmt.Sprintf("📋 <@%s> has no reports.", targetID)), nil
	}
	if len(reports) > menuOptionCap {
		reports = reports[:menuOptionCap]
	}

	options := make([]platform.SelectOption, 0, len(reports))
	for _, r := range reports {
		options = append(options, render.ReportOption(r))
	}
	return &platform.Response{
		Type: platform.RespMessage,
		Data: &platform.ResponseData{
			Content:    fmt.Sprintf("🗑️ Select a report from <@%s> to delete:", targetID),
			Components: []platform.ActionRow{selectRow("delete_report_"+targetID, "Select a report", options)},
			Flags:      platform.FlagEphemeral,
		},
	}, nil
}

// cmdReportReset wipes every report, but only on the second invocation
// within the confirmation window.
func (rt *Router) cmdReportReset(inter *platform.Interaction) (*platform.Response, error) {
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}
	actor := inter.Actor()
	if !rt.resets.Confirm(inter.GuildID, actor.ID) {
		return platform.Ephemeral("⚠️ This deletes **every** report. Run `/report-reset` again within 15 seconds to confirm."), nil
	}

	count, err := rt.reports.Reset()
	if err != nil {
		return nil, err
	}
	slog.Info("report data reset", "guild_id", inter.GuildID, "actor_id", actor.ID, "deleted", count)
	return platform.Ephemeral(fmt.Sprintf("✅ All report data deleted. (%d records)", count)), nil
}

// cmdSetupIntake binds the invoking channel as the report intake
// channel.
func (rt *Router) cmdSetupIntake(inter *platform.Interaction) (*platform.Response, error) {
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}
	if err := rt.settings.SetReportChannel(inter.GuildID, inter.ChannelID); err != nil {
		return nil, err
	}
	return platform.Ephemeral(fmt.Sprintf("✅ Reports will be posted to <#%s>.", inter.ChannelID)), nil
}

// cmdCaseRegister opens the registration modal.
func (rt *Router) cmdCaseRegister(inter *platform.Interaction) (*platform.Response, error) {
	return caseModal("case_register_modal", "Register Case", "", ""), nil
}

// cmdCaseEdit offers the actor a menu of their own cases to edit.
func (rt *Router) cmdCaseEdit(inter *platform.Interaction) (*platform.Response, error) {
	actor := inter.Actor()
	cases, err := rt.cases.ByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return platform.Ephemeral("📋 You have no registered cases."), nil
	}
	return caseMenu("edit_case_select", "✏️ Select a case to edit:", "Select a case", cases), nil
}

// cmdCaseForceEdit offers an elevated actor a menu of the target
// user's cases.
func (rt *Router) cmdCaseForceEdit(inter *platform.Interaction) (*platform.Response, error) {
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}
	targetID := inter.Data.Option("user")
	if targetID == "" {
		return platform.Ephemeral("❌ A target user is required."), nil
	}
	cases, err := rt.cases.ByUser(targetID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return platform.Ephemeral(fmt.Sprintf("📋 <@%s> has no registered cases.", targetID)), nil
	}
	return caseMenu("admin_edit_case_select",
		fmt.Sprintf("✏️ Select a case from <@%s> to edit:", targetID), "Select a case", cases), nil
}

// cmdCaseClose offers the actor their open cases.
func (rt *Router) cmdCaseClose(inter *platform.Interaction) (*platform.Response, error) {
	actor := inter.Actor()
	cases, err := rt.cases.ActiveByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return platform.Ephemeral("📋 You have no open cases."), nil
	}
	return caseMenu("close_case_select", "✅ Select a case to close:", "Select a case", cases), nil
}

// cmdCaseDelete offers an elevated actor the target user's cases.
func (rt *Router) cmdCaseDelete(inter *platform.Interaction) (*platform.Response, error) {
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}
	targetID := inter.Data.Option("user")
	if targetID == "" {
		return platform.Ephemeral("❌ A target user is required."), nil
	}
	cases, err := rt.cases.ByUser(targetID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return platform.Ephemeral(fmt.Sprintf("📋 <@%s> has no registered cases.", targetID)), nil
	}
	return caseMenu("delete_case_select",
		fmt.Sprintf("🗑️ Select a case from <@%s> to delete:", targetID), "Select a case", cases), nil
}

// cmdCaseLookup renders one case by its human-facing number.
func (rt *Router) cmdCaseLookup(inter *platform.Interaction) (*platform.Response, error) {
	number := inter.Data.Option("case_number")
	if number == "" {
		return platform.Ephemeral("❌ A case number is required."), nil
	}
	c, err := rt.cases.ByNumber(number)
	if err != nil {
		return nil, err
	}
	return &platform.Response{
		Type: platform.RespMessage,
		Data: &platform.ResponseData{
			Embeds: []platform.Embed{render.CaseLookupEmbed(c)},
			Flags:  platform.FlagEphemeral,
		},
	}, nil
}

// cmdCaseSetup binds the case log channel.
func (rt *Router) cmdCaseSetup(inter *platform.Interaction) (*platform.Response, error) {
	if !rt.elevated(inter) {
		return nil, services.ErrForbidden
	}
	channelID := inter.Data.Option("channel")
	if channelID == "" {
		channelID = inter.ChannelID
	}
	if err := rt.settings.SetCaseLogChannel(inter.GuildID, channelID); err != nil {
		return nil, err
	}
	return platform.Ephemeral(fmt.Sprintf("✅ Case logs will be posted to <#%s>.", channelID)), nil
}

// selectRow wraps options in a single select-menu action row.
func selectRow(customID, placeholder string, options []platform.SelectOption) platform.ActionRow {
	return platform.Row(platform.Component{
		Type:        platform.ComponentSelectMenu,
		CustomID:    customID,
		Placeholder: placeholder,
		Options:     options,
	})
}

// caseMenu builds an ephemeral case-selection reply, capped at the
// wire's option limit.
func caseMenu(customID, content, placeholder string, cases []models.Case) *platform.Response {
	if len(cases) > menuOptionCap {
		cases = cases[:menuOptionCap]
	}
	options := make([]platform.SelectOption, 0, len(cases))
	for _, c := range cases {
		options = append(options, render.CaseOption(c))
	}
	return &platform.Response{
		Type: platform.RespMessage,
		Data: &platform.ResponseData{
			Content:    content,
			Components: []platform.ActionRow{selectRow(customID, placeholder, options)},
			Flags:      platform.FlagEphemeral,
		},
	}
}

// caseModal builds the shared title/description modal. Prefilled
// values carry the current record into edit flows.
func caseModal(customID, title, prefillTitle, prefillDescription string) *platform.Response {
	return &platform.Response{
		Type: platform.RespModal,
		Data: &platform.ResponseData{
			CustomID: customID,
			Title:    title,
			Components: []platform.ActionRow{
				platform.Row(platform.Component{
					Type:      platform.ComponentTextInput,
					CustomID:  "case_title",
					Label:     "Case Title",
					Style:     platform.TextInputShort,
					Value:     prefillTitle,
					MaxLength: models.CaseTitleMaxLen,
					Required:  true,
				}),
				platform.Row(platform.Component{
					Type:      platform.ComponentTextInput,
					CustomID:  "case_description",
					Label:     "Case Description",
					Style:     platform.TextInputParagraph,
					Value:     prefillDescription,
					MaxLength: models.CaseDescriptionMaxLen,
					Required:  true,
				}),
			},
		},
	}
}
