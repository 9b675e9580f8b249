package store

import (
	"errors"
	"fmt"

	"github.com/kyudon/police-intake/internal/models"
	"gorm.io/gorm"
)

// Reports provides typed CRUD over report records. Lookup misses are
// returned as an explicit false, never an error; errors always mean a
// storage-layer fault.
type Reports struct {
	db *gorm.DB
}

func NewReports(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

func (s *Reports) Create(r *models.Report) error {
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *Reports) ByID(id string) (*models.Report, bool, error) {
	var r models.Report
	err := s.db.First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

// ByUser returns a user's reports, newest first.
func (s *Reports) ByUser(userID string) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// List returns reports for the ops API, optionally filtered by guild
// and status, newest first.
func (s *Reports) List(guildID, status string, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{})
	if guildID != "" {
		query = query.Where("guild_id = ?", guildID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// TransitionStatus moves a report from one status to another as a
// single compare-and-swap. It reports false when the record is absent
// or not in the expected preceding state, which closes the
// double-click window between read and write.
func (s *Reports) TransitionStatus(id, from, to string) (bool, error) {
	result := s.db.Model(&models.Report{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Reports) SetResponder(id, responder string) error {
	return s.db.Model(&models.Report{}).
		Where("id = ?", id).
		Update("responder", responder).Error
}

func (s *Reports) SetMessageID(id, messageID string) error {
	return s.db.Model(&models.Report{}).
		Where("id = ?", id).
		Update("message_id", messageID).Error
}

func (s *Reports) Delete(id string) error {
	return s.db.Delete(&models.Report{}, "id = ?", id).Error
}

// DeleteByUser removes all of a user's reports and returns how many
// rows went away.
func (s *Reports) DeleteByUser(userID string) (int64, error) {
	result := s.db.Delete(&models.Report{}, "user_id = ?", userID)
	return result.RowsAffected, result.Error
}

// DeleteAll removes every report record. Irreversible; callers gate
// this behind the double-confirm flow.
func (s *Reports) DeleteAll() (int64, error) {
	result := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Report{})
	return result.RowsAffected, result.Error
}
