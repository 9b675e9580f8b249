package models

import "time"

// Report statuses, in lifecycle order. Transitions are strictly linear
// and never regress; the only way out of the lifecycle is deletion.
const (
	ReportStatusFiled      = "filed"
	ReportStatusDispatched = "dispatched"
	ReportStatusArrived    = "arrived"
	ReportStatusProcessing = "processing"
	ReportStatusClosed     = "closed"
)

// Report types selectable from the intake picker. ReportTypeOther
// carries free-text content supplied through the modal.
const (
	ReportTypeViolence = "violence"
	ReportTypeTheft    = "theft"
	ReportTypeTraffic  = "traffic"
	ReportTypeMissing  = "missing"
	ReportTypeFraud    = "fraud"
	ReportTypeOther    = "other"
)

// Report is a single emergency intake record. The ID embeds the filing
// time (unix millis) plus a random suffix and doubles as the component
// custom-id argument, so it is never regenerated after creation.
type Report struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:32;not null;index" json:"user_id"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	GuildID   string    `gorm:"size:32;not null;index" json:"guild_id"`
	Type      string    `gorm:"size:32;not null" json:"type"`
	Content   string    `gorm:"size:1000" json:"content,omitempty"`
	Status    string    `gorm:"size:20;not null;index" json:"status"`
	MessageID string    `gorm:"size:32" json:"message_id,omitempty"`
	Responder string    `gorm:"size:100" json:"responder,omitempty"`
	FiledAt   time.Time `gorm:"not null" json:"filed_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShortID is the human-facing tail of the report identifier shown in
// confirmations and select menus.
func (r *Report) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[len(r.ID)-8:]
}

// ValidReportType reports whether t is one of the intake picker types.
func ValidReportType(t string) bool {
	switch t {
	case ReportTypeViolence, ReportTypeTheft, ReportTypeTraffic,
		ReportTypeMissing, ReportTypeFraud, ReportTypeOther:
		return true
	}
	return false
}
