package store

import (
	"errors"

	"github.com/kyudon/police-intake/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings provides per-guild channel bindings. Each setter upserts
// only its own column, so binding one channel never clears the other.
type Settings struct {
	db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

func (s *Settings) Get(guildID string) (*models.GuildSettings, bool, error) {
	var gs models.GuildSettings
	err := s.db.First(&gs, "guild_id = ?", guildID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &gs, true, nil
}

func (s *Settings) SetReportChannel(guildID, channelID string) error {
	return s.upsert(&models.GuildSettings{
		GuildID:         guildID,
		ReportChannelID: channelID,
	}, "report_channel_id")
}

func (s *Settings) SetCaseLogChannel(guildID, channelID string) error {
	return s.upsert(&models.GuildSettings{
		GuildID:          guildID,
		CaseLogChannelID: channelID,
	}, "case_log_channel_id")
}

func (s *Settings) upsert(gs *models.GuildSettings, column string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(gs).Error
}
