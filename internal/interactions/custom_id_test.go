package interactions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyudon/police-intake/internal/interactions"
)

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		raw  string
		want interactions.CustomID
	}{
		{
			raw:  "report_theft",
			want: interactions.CustomID{Action: interactions.ActionReportSubmit, ReportType: "theft"},
		},
		{
			raw:  "report_other",
			want: interactions.CustomID{Action: interactions.ActionReportSubmit, ReportType: "other"},
		},
		{
			raw:  "dispatch_REPORT_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionDispatch, EntityID: "REPORT_1724900000000_a1b2c3d4e"},
		},
		{
			raw:  "arrive_REPORT_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionArrive, EntityID: "REPORT_1724900000000_a1b2c3d4e"},
		},
		{
			raw:  "processing_REPORT_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionProcessing, EntityID: "REPORT_1724900000000_a1b2c3d4e"},
		},
		{
			raw:  "close_REPORT_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionCloseReport, EntityID: "REPORT_1724900000000_a1b2c3d4e"},
		},
		{
			raw:  "assign_case_CASE_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionAssignCase, EntityID: "CASE_1724900000000_a1b2c3d4e"},
		},
		{
			raw:  "report_check_prev_123456789_2",
			want: interactions.CustomID{Action: interactions.ActionReportPagePrev, UserID: "123456789", Page: 2},
		},
		{
			raw:  "report_check_next_123456789_0",
			want: interactions.CustomID{Action: interactions.ActionReportPageNext, UserID: "123456789", Page: 0},
		},
		{
			raw:  "report_check_page_123456789_4",
			want: interactions.CustomID{Action: interactions.ActionReportPageInfo, UserID: "123456789", Page: 4},
		},
		{
			raw:  "delete_report_123456789",
			want: interactions.CustomID{Action: interactions.ActionDeleteReportMenu, UserID: "123456789"},
		},
		{
			raw:  "edit_case_select",
			want: interactions.CustomID{Action: interactions.ActionEditCaseMenu},
		},
		{
			raw:  "admin_edit_case_select",
			want: interactions.CustomID{Action: interactions.ActionAdminEditCaseMenu},
		},
		{
			raw:  "close_case_select",
			want: interactions.CustomID{Action: interactions.ActionCloseCaseMenu},
		},
		{
			raw:  "delete_case_select",
			want: interactions.CustomID{Action: interactions.ActionDeleteCaseMenu},
		},
		{
			raw:  "custom_report_modal",
			want: interactions.CustomID{Action: interactions.ActionCustomReportModal},
		},
		{
			raw:  "case_register_modal",
			want: interactions.CustomID{Action: interactions.ActionCaseRegisterModal},
		},
		{
			raw:  "case_edit_modal_CASE_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionCaseEditModal, EntityID: "CASE_1724900000000_a1b2c3d4e"},
		},
		{
			raw:  "admin_case_edit_modal_CASE_1724900000000_a1b2c3d4e",
			want: interactions.CustomID{Action: interactions.ActionAdminCaseEditModal, EntityID: "CASE_1724900000000_a1b2c3d4e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := interactions.ParseCustomID(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The pagination identifiers start with "report_" but must never be
// mistaken for a report-type submission.
func TestParseCustomIDOverlappingPrefixes(t *testing.T) {
	got, ok := interactions.ParseCustomID("report_check_prev_42_1")
	assert.True(t, ok)
	assert.Equal(t, interactions.ActionReportPagePrev, got.Action)
	assert.Empty(t, got.ReportType)

	// "close_case_select" is an exact id, not close_<reportId>.
	got, ok = interactions.ParseCustomID("close_case_select")
	assert.True(t, ok)
	assert.Equal(t, interactions.ActionCloseCaseMenu, got.Action)
	assert.Empty(t, got.EntityID)
}

func TestParseCustomIDRejectsUnknown(t *testing.T) {
	invalid := []string{
		"",
		"unknown_button",
		"report_",
		"dispatch_",
		"report_check_prev_42",       // missing page
		"report_check_prev_42_abc",   // non-numeric page
		"report_check_prev__3",       // missing user
		"ticket_close_123",
	}

	for _, raw := range invalid {
		got, ok := interactions.ParseCustomID(raw)
		assert.False(t, ok, "raw=%q", raw)
		assert.Equal(t, interactions.CustomID{}, got, "raw=%q", raw)
	}
}
