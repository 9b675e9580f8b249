package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/store"
)

const reportContentMaxLen = 1000

// reportTransitions is the report FSM: each action names the status it
// requires and the status it produces. Strictly linear, no skips, no
// rollback.
var reportTransitions = map[string]struct{ From, To string }{
	"dispatch":   {models.ReportStatusFiled, models.ReportStatusDispatched},
	"arrive":     {models.ReportStatusDispatched, models.ReportStatusArrived},
	"processing": {models.ReportStatusArrived, models.ReportStatusProcessing},
	"close":      {models.ReportStatusProcessing, models.ReportStatusClosed},
}

// ReportService owns the report lifecycle. All mutations go through the
// store's compare-and-swap so two staff members clicking the same
// button race safely: one wins, the other sees ErrInvalidState.
type ReportService struct {
	reports *store.Reports
}

func NewReportService(reports *store.Reports) *ReportService {
	return &ReportService{reports: reports}
}

// File creates a new report in the filed state. Content is only
// meaningful for the "other" type and is bounded.
func (s *ReportService) File(guildID, userID, username, reportType, content string) (*models.Report, error) {
	if !models.ValidReportType(reportType) {
		return nil, fmt.Errorf("%w: unknown report type %q", ErrValidation, reportType)
	}
	content = strings.TrimSpace(content)
	if len(content) > reportContentMaxLen {
		return nil, fmt.Errorf("%w: content exceeds %d characters", ErrValidation, reportContentMaxLen)
	}
	if reportType == models.ReportTypeOther && content == "" {
		return nil, fmt.Errorf("%w: content is required for other reports", ErrValidation)
	}

	report := &models.Report{
		ID:       store.NewReportID(),
		UserID:   userID,
		Username: username,
		GuildID:  guildID,
		Type:     reportType,
		Content:  content,
		Status:   models.ReportStatusFiled,
		FiledAt:  time.Now().UTC(),
	}
	if err := s.reports.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Dispatch advances filed → dispatched and records the acting user as
// responder.
func (s *ReportService) Dispatch(id, responder string) (*models.Report, error) {
	report, err := s.transition(id, "dispatch")
	if err != nil {
		return nil, err
	}
	if err := s.reports.SetResponder(id, responder); err != nil {
		return nil, err
	}
	report.Responder = responder
	return report, nil
}

// Arrive advances dispatched → arrived.
func (s *ReportService) Arrive(id string) (*models.Report, error) {
	return s.transition(id, "arrive")
}

// StartProcessing advances arrived → processing.
func (s *ReportService) StartProcessing(id string) (*models.Report, error) {
	return s.transition(id, "processing")
}

// Close advances processing → closed. Terminal.
func (s *ReportService) Close(id string) (*models.Report, error) {
	return s.transition(id, "close")
}

func (s *ReportService) transition(id, action string) (*models.Report, error) {
	step, ok := reportTransitions[action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}

	moved, err := s.reports.TransitionStatus(id, step.From, step.To)
	if err != nil {
		return nil, err
	}
	if !moved {
		// Distinguish a missing record from an out-of-order click.
		if _, found, err := s.reports.ByID(id); err != nil {
			return nil, err
		} else if !found {
			return nil, ErrNotFound
		}
		return nil, ErrInvalidState
	}

	report, found, err := s.reports.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return report, nil
}

// Get fetches a report by opaque identifier.
func (s *ReportService) Get(id string) (*models.Report, error) {
	report, found, err := s.reports.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return report, nil
}

// History returns the user's own reports, newest first.
func (s *ReportService) History(userID string) ([]models.Report, error) {
	return s.reports.ByUser(userID)
}

// SetMessageID links the posted intake message for later edits.
func (s *ReportService) SetMessageID(id, messageID string) error {
	return s.reports.SetMessageID(id, messageID)
}

// Delete removes a single report. Compensation (removing a mirrored
// message) is the caller's business.
func (s *ReportService) Delete(id string) error {
	return s.reports.Delete(id)
}

// Reset wipes every report record and returns the count removed.
func (s *ReportService) Reset() (int64, error) {
	return s.reports.DeleteAll()
}
