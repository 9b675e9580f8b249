package render

import (
	"fmt"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/platform"
)

// Display names and picker emoji per report type.
var reportTypeLabels = map[string]string{
	models.ReportTypeViolence: "Violence",
	models.ReportTypeTheft:    "Theft",
	models.ReportTypeTraffic:  "Traffic Accident",
	models.ReportTypeMissing:  "Missing Person",
	models.ReportTypeFraud:    "Fraud",
	models.ReportTypeOther:    "Other",
}

var reportTypeEmoji = map[string]string{
	models.ReportTypeViolence: "👊",
	models.ReportTypeTheft:    "🦹",
	models.ReportTypeTraffic:  "🚗",
	models.ReportTypeMissing:  "🔍",
	models.ReportTypeFraud:    "💰",
	models.ReportTypeOther:    "📝",
}

// Per-status icon set for reports; richer than the case set.
var reportStatusIcons = map[string]string{
	models.ReportStatusFiled:      "📝",
	models.ReportStatusDispatched: "🚨",
	models.ReportStatusArrived:    "📍",
	models.ReportStatusProcessing: "⚙️",
	models.ReportStatusClosed:     "✅",
}

var reportStatusLabels = map[string]string{
	models.ReportStatusFiled:      "Filed",
	models.ReportStatusDispatched: "Dispatched",
	models.ReportStatusArrived:    "Arrived",
	models.ReportStatusProcessing: "Processing",
	models.ReportStatusClosed:     "Closed",
}

// ReportTypeLabel returns the display name for a report type token.
func ReportTypeLabel(t string) string {
	if label, ok := reportTypeLabels[t]; ok {
		return label
	}
	return t
}

// ReportStatusValue is the rendered value of the "Status" field:
// icon + label.
func ReportStatusValue(status string) string {
	icon, ok := reportStatusIcons[status]
	if !ok {
		icon = "❓"
	}
	label, ok := reportStatusLabels[status]
	if !ok {
		label = status
	}
	return icon + " " + label
}

// ReportEmbed renders a freshly filed report for the intake channel.
// Field order is fixed; later transitions patch "Status" in place and
// append their own timestamp fields.
func ReportEmbed(r *models.Report) platform.Embed {
	fields := []platform.EmbedField{
		{Name: "Reporter", Value: fmt.Sprintf("<@%s>", r.UserID), Inline: true},
		{Name: "Filed At", Value: FormatTime(r.FiledAt), Inline: true},
		{Name: "Type", Value: ReportTypeLabel(r.Type), Inline: true},
		{Name: "Status", Value: ReportStatusValue(r.Status), Inline: true},
		{Name: "Report No", Value: r.ShortID(), Inline: true},
	}
	if r.Type == models.ReportTypeOther && r.Content != "" {
		fields = append(fields, platform.EmbedField{Name: "Details", Value: r.Content})
	}
	return platform.Embed{
		Title:       "🚨 Report Filed",
		Description: fmt.Sprintf("A **%s** report has been filed", ReportTypeLabel(r.Type)),
		Color:       ColorRed,
		Fields:      fields,
		Timestamp:   r.FiledAt.UTC().Format(time.RFC3339),
		Footer:      &platform.EmbedFooter{Text: reportFooter},
	}
}

// nextAction maps a status to the single button a viewer may press
// next, or nothing for the terminal state.
var nextAction = map[string]struct {
	prefix string
	label  string
	style  int
	emoji  string
}{
	models.ReportStatusFiled:      {"dispatch_", "Dispatch", platform.StylePrimary, "🚔"},
	models.ReportStatusDispatched: {"arrive_", "Arrive", platform.StyleSuccess, "📍"},
	models.ReportStatusArrived:    {"processing_", "Processing", platform.StyleSecondary, "⚙️"},
	models.ReportStatusProcessing: {"close_", "Close", platform.StyleDanger, "✅"},
}

// ReportActions returns the action row for a report's current status.
// Closed reports get none: the empty slice strips the buttons.
func ReportActions(r *models.Report) []platform.ActionRow {
	action, ok := nextAction[r.Status]
	if !ok {
		return []platform.ActionRow{}
	}
	return []platform.ActionRow{platform.Row(platform.Component{
		Type:     platform.ComponentButton,
		CustomID: action.prefix + r.ID,
		Label:    action.label,
		Style:    action.style,
		Emoji:    &platform.Emoji{Name: action.emoji},
	})}
}

// TypePickerEmbed renders the report-type selection prompt.
func TypePickerEmbed() platform.Embed {
	return platform.Embed{
		Title:       "🚨 Emergency Report",
		Description: "Select the type of report",
		Color:       ColorRed,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

// TypePickerRows renders the six intake buttons, three per row.
func TypePickerRows() []platform.ActionRow {
	types := []string{
		models.ReportTypeViolence, models.ReportTypeTheft, models.ReportTypeTraffic,
		models.ReportTypeMissing, models.ReportTypeFraud, models.ReportTypeOther,
	}
	rows := make([]platform.ActionRow, 0, 2)
	for start := 0; start < len(types); start += 3 {
		var row platform.ActionRow
		row.Type = platform.ComponentActionRow
		for _, t := range types[start : start+3] {
			style := platform.StyleDanger
			if t == models.ReportTypeOther {
				style = platform.StyleSecondary
			}
			row.Components = append(row.Components, platform.Component{
				Type:     platform.ComponentButton,
				CustomID: "report_" + t,
				Label:    ReportTypeLabel(t),
				Style:    style,
				Emoji:    &platform.Emoji{Name: reportTypeEmoji[t]},
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// HistoryEmbed renders one page of a user's report history. startIndex
// is the zero-based position of the page's first report in the full
// list, used for the running numbering.
func HistoryEmbed(page []models.Report, startIndex, pageIndex, totalPages, totalReports int) platform.Embed {
	e := platform.Embed{
		Title:       "📋 My Reports",
		Description: fmt.Sprintf("%d reports total (page %d/%d)", totalReports, pageIndex+1, totalPages),
		Color:       ColorBlue,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Footer:      &platform.EmbedFooter{Text: reportFooter},
	}
	for i, r := range page {
		e.Fields = append(e.Fields, platform.EmbedField{
			Name: fmt.Sprintf("%d. %s report", startIndex+i+1, ReportTypeLabel(r.Type)),
			Value: fmt.Sprintf("📅 Filed: %s\n%s\n🆔 Report No: %s",
				FormatTime(r.FiledAt), ReportStatusValue(r.Status), r.ShortID()),
		})
	}
	return e
}

// PaginationRow renders prev / page-info / next buttons. The info
// button is inert; prev and next are disabled at the edges.
func PaginationRow(pageIndex, totalPages int, userID string) platform.ActionRow {
	return platform.Row(
		platform.Component{
			Type:     platform.ComponentButton,
			CustomID: fmt.Sprintf("report_check_prev_%s_%d", userID, pageIndex),
			Label:    "◀ Prev",
			Style:    platform.StylePrimary,
			Disabled: pageIndex == 0,
		},
		platform.Component{
			Type:     platform.ComponentButton,
			CustomID: fmt.Sprintf("report_check_page_%s_%d", userID, pageIndex),
			Label:    fmt.Sprintf("%d / %d", pageIndex+1, totalPages),
			Style:    platform.StyleSecondary,
			Disabled: true,
		},
		platform.Component{
			Type:     platform.ComponentButton,
			CustomID: fmt.Sprintf("report_check_next_%s_%d", userID, pageIndex),
			Label:    "Next ▶",
			Style:    platform.StylePrimary,
			Disabled: pageIndex >= totalPages-1,
		},
	)
}

// ReportOption renders one report as a select-menu option.
func ReportOption(r models.Report) platform.SelectOption {
	icon, ok := reportStatusIcons[r.Status]
	if !ok {
		icon = "📝"
	}
	return platform.SelectOption{
		Label:       fmt.Sprintf("%s - %s", ReportTypeLabel(r.Type), r.FiledAt.UTC().Format("1/2 15:04")),
		Description: fmt.Sprintf("Status: %s | ID: %s", reportStatusLabels[r.Status], r.ShortID()),
		Value:       r.ID,
		Emoji:       &platform.Emoji{Name: icon},
	}
}
