package render

import (
	"fmt"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/platform"
)

// Coarser 3-color set for cases: amber while filed, blue while
// processing, green once closed, gray for anything unknown.
func caseColor(status string) int {
	switch status {
	case models.CaseStatusFiled:
		return ColorAmber
	case models.CaseStatusProcessing:
		return ColorBlue
	case models.CaseStatusClosed:
		return ColorGreen
	default:
		return ColorGray
	}
}

var caseStatusIcons = map[string]string{
	models.CaseStatusFiled:      "📝",
	models.CaseStatusProcessing: "⚙️",
	models.CaseStatusClosed:     "✅",
}

var caseStatusLabels = map[string]string{
	models.CaseStatusFiled:      "Filed",
	models.CaseStatusProcessing: "Processing",
	models.CaseStatusClosed:     "Closed",
}

// CaseStatusValue is the rendered "Status" field value.
func CaseStatusValue(status string) string {
	icon, ok := caseStatusIcons[status]
	if !ok {
		icon = "❓"
	}
	label, ok := caseStatusLabels[status]
	if !ok {
		label = status
	}
	return icon + " " + label
}

const unassignedOfficer = "Unassigned"

// CaseEmbed renders a newly registered case for the log channel. The
// "Status", "Title", "Description", and "Officer" fields are patched
// by name as the case moves.
func CaseEmbed(c *models.Case) platform.Embed {
	officer := c.Officer
	if officer == "" {
		officer = unassignedOfficer
	}
	return platform.Embed{
		Title: "📋 New Case Registered",
		Color: ColorAmber,
		Fields: []platform.EmbedField{
			{Name: "Case No", Value: c.CaseNumber, Inline: true},
			{Name: "Reporter", Value: fmt.Sprintf("<@%s>", c.UserID), Inline: true},
			{Name: "Status", Value: CaseStatusValue(c.Status), Inline: true},
			{Name: "Title", Value: c.Title},
			{Name: "Description", Value: c.Description},
			{Name: "Registered At", Value: FormatTime(c.FiledAt), Inline: true},
			{Name: "Officer", Value: officer, Inline: true},
		},
		Timestamp: c.FiledAt.UTC().Format(time.RFC3339),
		Footer:    &platform.EmbedFooter{Text: caseFooter},
	}
}

// CaseActions returns the assign button for an open case mirror.
func CaseActions(c *models.Case) []platform.ActionRow {
	if c.Status == models.CaseStatusClosed || c.Officer != "" {
		return []platform.ActionRow{}
	}
	return []platform.ActionRow{platform.Row(platform.Component{
		Type:     platform.ComponentButton,
		CustomID: "assign_case_" + c.ID,
		Label:    "Assign Officer",
		Style:    platform.StylePrimary,
		Emoji:    &platform.Emoji{Name: "👮"},
	})}
}

// CaseLookupEmbed renders the full record for the lookup command.
func CaseLookupEmbed(c *models.Case) platform.Embed {
	officer := c.Officer
	if officer == "" {
		officer = unassignedOfficer
	}
	fields := []platform.EmbedField{
		{Name: "Title", Value: c.Title},
		{Name: "Description", Value: c.Description},
		{Name: "Reporter", Value: fmt.Sprintf("<@%s>", c.UserID), Inline: true},
		{Name: "Status", Value: CaseStatusValue(c.Status), Inline: true},
		{Name: "Registered At", Value: FormatTime(c.FiledAt), Inline: true},
		{Name: "Officer", Value: officer, Inline: true},
	}
	if c.Status == models.CaseStatusClosed && c.ClosedAt != nil {
		fields = append(fields, platform.EmbedField{
			Name: "Closed At", Value: FormatTime(*c.ClosedAt), Inline: true,
		})
	}
	return platform.Embed{
		Title:     fmt.Sprintf("📋 Case Lookup - %s", c.CaseNumber),
		Color:     caseColor(c.Status),
		Fields:    fields,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer:    &platform.EmbedFooter{Text: caseFooter},
	}
}

// ClosureLogEmbed renders the standalone closure entry posted to the
// log channel when a case closes.
func ClosureLogEmbed(c *models.Case, closedAt time.Time) platform.Embed {
	return platform.Embed{
		Title: "✅ Case Closed",
		Color: ColorGreen,
		Fields: []platform.EmbedField{
			{Name: "Case No", Value: c.CaseNumber, Inline: true},
			{Name: "Title", Value: c.Title},
			{Name: "Closed At", Value: FormatTime(closedAt), Inline: true},
		},
		Timestamp: closedAt.UTC().Format(time.RFC3339),
		Footer:    &platform.EmbedFooter{Text: caseFooter},
	}
}

// CaseOption renders one case as a select-menu option.
func CaseOption(c models.Case) platform.SelectOption {
	return platform.SelectOption{
		Label:       fmt.Sprintf("%s - %s", c.CaseNumber, c.Title),
		Description: fmt.Sprintf("Status: %s | %s", caseStatusLabels[c.Status], c.FiledAt.UTC().Format("2006-01-02")),
		Value:       c.ID,
	}
}
