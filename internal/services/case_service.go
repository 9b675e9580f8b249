package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/store"
)

// CaseService owns the case lifecycle: register, assign, edit, close,
// delete. Ownership rules live here, not in the router: close and edit
// require the actor to own the case (edit alternatively accepts an
// elevated actor), assign and delete deliberately do not.
type CaseService struct {
	cases *store.Cases
}

func NewCaseService(cases *store.Cases) *CaseService {
	return &CaseService{cases: cases}
}

// Register validates bounds, allocates a case number, and creates the
// record in the filed state.
func (s *CaseService) Register(guildID, userID, username, title, description string) (*models.Case, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || len(title) > models.CaseTitleMaxLen {
		return nil, fmt.Errorf("%w: title must be 1-%d characters", ErrValidation, models.CaseTitleMaxLen)
	}
	if description == "" || len(description) > models.CaseDescriptionMaxLen {
		return nil, fmt.Errorf("%w: description must be 1-%d characters", ErrValidation, models.CaseDescriptionMaxLen)
	}

	c := &models.Case{
		ID:          store.NewCaseID(),
		UserID:      userID,
		Username:    username,
		GuildID:     guildID,
		Title:       title,
		Description: description,
		Status:      models.CaseStatusFiled,
		FiledAt:     time.Now().UTC(),
	}
	if err := s.cases.CreateWithNumber(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign records the acting user as the case officer. Any actor may
// claim; this is a staff-side action with no ownership check.
func (s *CaseService) Assign(id, officer string) (*models.Case, error) {
	c, found, err := s.cases.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := s.cases.SetOfficer(id, officer); err != nil {
		return nil, err
	}
	c.Officer = officer
	return c, nil
}

// Edit rewrites title and description. Only the owner may edit, unless
// the actor is elevated. Status is untouched.
func (s *CaseService) Edit(id, actorID string, elevated bool, title, description string) (*models.Case, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || len(title) > models.CaseTitleMaxLen {
		return nil, fmt.Errorf("%w: title must be 1-%d characters", ErrValidation, models.CaseTitleMaxLen)
	}
	if description == "" || len(description) > models.CaseDescriptionMaxLen {
		return nil, fmt.Errorf("%w: description must be 1-%d characters", ErrValidation, models.CaseDescriptionMaxLen)
	}

	c, found, err := s.cases.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	if !elevated && c.UserID != actorID {
		return nil, ErrForbidden
	}
	if err := s.cases.Update(id, title, description); err != nil {
		return nil, err
	}
	c.Title = title
	c.Description = description
	return c, nil
}

// Close terminates a case: owner only, sets status and closed-at in a
// single guarded write so a case closes exactly once.
func (s *CaseService) Close(id, actorID string) (*models.Case, error) {
	c, found, err := s.cases.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	if c.UserID != actorID {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	closed, err := s.cases.Close(id, now)
	if err != nil {
		return nil, err
	}
	if !closed {
		return nil, ErrInvalidState
	}
	c.Status = models.CaseStatusClosed
	c.ClosedAt = &now
	return c, nil
}

// Delete removes a case record. The elevated gate sits at the command
// surface; here deletion is unconditional, and mirror-message cleanup
// is the caller's compensation.
func (s *CaseService) Delete(id string) (*models.Case, error) {
	c, found, err := s.cases.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := s.cases.Delete(id); err != nil {
		return nil, err
	}
	return c, nil
}

// Get fetches a case by opaque identifier.
func (s *CaseService) Get(id string) (*models.Case, error) {
	c, found, err := s.cases.ByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return c, nil
}

// ByNumber looks a case up by its human-facing number.
func (s *CaseService) ByNumber(number string) (*models.Case, error) {
	c, found, err := s.cases.ByNumber(number)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return c, nil
}

// ByUser returns a user's cases, newest first.
func (s *CaseService) ByUser(userID string) ([]models.Case, error) {
	return s.cases.ByUser(userID)
}

// ActiveByUser returns the user's cases that are not yet closed.
func (s *CaseService) ActiveByUser(userID string) ([]models.Case, error) {
	cases, err := s.cases.ByUser(userID)
	if err != nil {
		return nil, err
	}
	active := cases[:0]
	for _, c := range cases {
		if c.Status != models.CaseStatusClosed {
			active = append(active, c)
		}
	}
	return active, nil
}

// SetMessageID links the mirrored log message for later edits.
func (s *CaseService) SetMessageID(id, messageID string) error {
	return s.cases.SetMessageID(id, messageID)
}
