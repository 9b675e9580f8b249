package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kyudon/police-intake/internal/models"
	"gorm.io/gorm"
)

// ErrCaseNumberExhausted means all 999 daily sequence slots are taken.
var ErrCaseNumberExhausted = errors.New("daily case number sequence exhausted")

const maxDailySequence = 999

// Cases provides typed CRUD over case records. Case-number allocation
// is a scan-then-insert pair, so CreateWithNumber serializes it behind
// a mutex; the unique index on case_number backstops anything that
// still slips through (another process, for instance).
type Cases struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewCases(db *gorm.DB) *Cases {
	return &Cases{db: db}
}

// CreateWithNumber allocates the first free case number for today and
// inserts the record with it. On a uniqueness violation it re-scans and
// retries once before giving up.
func (s *Cases) CreateWithNumber(c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		number, err := s.nextCaseNumber(time.Now())
		if err != nil {
			return err
		}
		c.CaseNumber = number
		err = s.db.Create(c).Error
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to create case: %w", err)
		}
	}
	return fmt.Errorf("failed to create case: %w", ErrCaseNumberExhausted)
}

// nextCaseNumber scans sequence 001..999 for the given date and
// returns the first number with no existing record.
func (s *Cases) nextCaseNumber(now time.Time) (string, error) {
	for seq := 1; seq <= maxDailySequence; seq++ {
		number := CaseNumberFor(now, seq)
		exists, err := s.NumberExists(number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", ErrCaseNumberExhausted
}

func (s *Cases) NumberExists(number string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Case{}).Where("case_number = ?", number).Count(&count).Error
	return count > 0, err
}

func (s *Cases) ByID(id string) (*models.Case, bool, error) {
	var c models.Case
	err := s.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (s *Cases) ByNumber(number string) (*models.Case, bool, error) {
	var c models.Case
	err := s.db.First(&c, "case_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

// ByUser returns a user's cases, newest first.
func (s *Cases) ByUser(userID string) ([]models.Case, error) {
	var cases []models.Case
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

// List returns cases for the ops API, optionally filtered, newest first.
func (s *Cases) List(guildID, status string, limit, offset int) ([]models.Case, int64, error) {
	var cases []models.Case
	var total int64

	query := s.db.Model(&models.Case{})
	if guildID != "" {
		query = query.Where("guild_id = ?", guildID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&cases).Error; err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

// Update rewrites title and description, nothing else.
func (s *Cases) Update(id, title, description string) error {
	return s.db.Model(&models.Case{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
}

func (s *Cases) SetOfficer(id, officer string) error {
	return s.db.Model(&models.Case{}).
		Where("id = ?", id).
		Update("officer", officer).Error
}

func (s *Cases) SetMessageID(id, messageID string) error {
	return s.db.Model(&models.Case{}).
		Where("id = ?", id).
		Update("message_id", messageID).Error
}

// Close sets status and closed_at in one write, guarded so a case
// closes at most once. Reports false when the case was absent or
// already closed.
func (s *Cases) Close(id string, at time.Time) (bool, error) {
	result := s.db.Model(&models.Case{}).
		Where("id = ? AND status <> ?", id, models.CaseStatusClosed).
		Updates(map[string]interface{}{
			"status":    models.CaseStatusClosed,
			"closed_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Cases) Delete(id string) error {
	return s.db.Delete(&models.Case{}, "id = ?", id).Error
}

// isUniqueViolation matches both the Postgres and sqlite wording for a
// unique-constraint failure; gorm does not normalize these.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
