package models

import "time"

// GuildSettings holds the two channel bindings for a guild. The record
// is created lazily on first write; each setter coalesces so updating
// one channel never clobbers the other.
type GuildSettings struct {
	GuildID          string    `gorm:"primaryKey;size:32" json:"guild_id"`
	ReportChannelID  string    `gorm:"size:32" json:"report_channel_id,omitempty"`
	CaseLogChannelID string    `gorm:"size:32" json:"case_log_channel_id,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}
