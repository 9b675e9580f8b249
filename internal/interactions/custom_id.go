package interactions

import (
	"strconv"
	"strings"
)

// Action is the routing tag decoded from a component or modal custom
// id. Decoding happens exactly once, up front; dispatch then switches
// exhaustively on the tag, so no prefix can shadow another.
type Action int

const (
	ActionNone Action = iota

	// Buttons.
	ActionReportSubmit   // report_<type>
	ActionReportPagePrev // report_check_prev_<userId>_<page>
	ActionReportPageNext // report_check_next_<userId>_<page>
	ActionReportPageInfo // report_check_page_<userId>_<page>, inert
	ActionDispatch       // dispatch_<reportId>
	ActionArrive         // arrive_<reportId>
	ActionProcessing     // processing_<reportId>
	ActionCloseReport    // close_<reportId>
	ActionAssignCase     // assign_case_<caseId>

	// Select menus.
	ActionDeleteReportMenu  // delete_report_<userId>
	ActionEditCaseMenu      // edit_case_select
	ActionAdminEditCaseMenu // admin_edit_case_select
	ActionCloseCaseMenu     // close_case_select
	ActionDeleteCaseMenu    // delete_case_select

	// Modal submissions.
	ActionCustomReportModal  // custom_report_modal
	ActionCaseRegisterModal  // case_register_modal
	ActionCaseEditModal      // case_edit_modal_<caseId>
	ActionAdminCaseEditModal // admin_case_edit_modal_<caseId>
)

// CustomID is the structured form of an opaque custom identifier.
// Fields beyond Action are populated per the identifier grammar:
// EntityID for record-addressed actions, ReportType for submissions,
// UserID and Page for paginated and per-user actions.
type CustomID struct {
	Action     Action
	EntityID   string
	ReportType string
	UserID     string
	Page       int
}

// exact custom ids with no embedded arguments.
var exactIDs = map[string]Action{
	"edit_case_select":       ActionEditCaseMenu,
	"admin_edit_case_select": ActionAdminEditCaseMenu,
	"close_case_select":      ActionCloseCaseMenu,
	"delete_case_select":     ActionDeleteCaseMenu,
	"custom_report_modal":    ActionCustomReportModal,
	"case_register_modal":    ActionCaseRegisterModal,
}

// ParseCustomID decodes raw into its tagged form. The second return is
// false for identifiers this system never minted; callers treat those
// as a no-op.
func ParseCustomID(raw string) (CustomID, bool) {
	if action, ok := exactIDs[raw]; ok {
		return CustomID{Action: action}, true
	}

	// Entity-suffixed identifiers, most specific prefix first. The
	// pagination prefixes overlap report_ textually, but they are
	// matched here as whole prefixes so the overlap is harmless.
	type prefixRule struct {
		prefix string
		action Action
		paged  bool
	}
	rules := []prefixRule{
		{"admin_case_edit_modal_", ActionAdminCaseEditModal, false},
		{"case_edit_modal_", ActionCaseEditModal, false},
		{"report_check_prev_", ActionReportPagePrev, true},
		{"report_check_next_", ActionReportPageNext, true},
		{"report_check_page_", ActionReportPageInfo, true},
		{"assign_case_", ActionAssignCase, false},
		{"delete_report_", ActionDeleteReportMenu, false},
		{"dispatch_", ActionDispatch, false},
		{"arrive_", ActionArrive, false},
		{"processing_", ActionProcessing, false},
		{"close_", ActionCloseReport, false},
		{"report_", ActionReportSubmit, false},
	}

	for _, rule := range rules {
		rest, ok := strings.CutPrefix(raw, rule.prefix)
		if !ok || rest == "" {
			continue
		}
		id := CustomID{Action: rule.action}
		switch {
		case rule.paged:
			userID, pageStr, ok := strings.Cut(rest, "_")
			if !ok || userID == "" {
				return CustomID{}, false
			}
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				return CustomID{}, false
			}
			id.UserID = userID
			id.Page = page
		case rule.action == ActionReportSubmit:
			id.ReportType = rest
		case rule.action == ActionDeleteReportMenu:
			id.UserID = rest
		default:
			id.EntityID = rest
		}
		return id, true
	}

	return CustomID{}, false
}
