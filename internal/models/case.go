package models

import "time"

// Case statuses. CaseStatusProcessing is a reserved value: no command
// surface currently transitions into it, but the renderer and FSM table
// both accept it so a staff-claim transition can be added without a
// schema change.
const (
	CaseStatusFiled      = "filed"
	CaseStatusProcessing = "processing"
	CaseStatusClosed     = "closed"
)

// Bounds enforced before a case reaches storage.
const (
	CaseTitleMaxLen       = 100
	CaseDescriptionMaxLen = 2000
)

// Case is a registered incident record. CaseNumber is the human-facing
// identifier (C-<YYYYMMDD>-<NNN>), allocated once at creation and
// immutable afterwards. ClosedAt is set exactly once, at closure.
type Case struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	CaseNumber  string     `gorm:"size:20;not null;uniqueIndex" json:"case_number"`
	UserID      string     `gorm:"size:32;not null;index" json:"user_id"`
	Username    string     `gorm:"size:100;not null" json:"username"`
	GuildID     string     `gorm:"size:32;not null;index" json:"guild_id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description string     `gorm:"size:2000;not null" json:"description"`
	Status      string     `gorm:"size:20;not null;index" json:"status"`
	MessageID   string     `gorm:"size:32" json:"message_id,omitempty"`
	Officer     string     `gorm:"size:100" json:"officer,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	FiledAt     time.Time  `gorm:"not null" json:"filed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
