// Package render turns report and case records into structured display
// payloads: embeds with ordered named fields, status colors, and the
// next-action affordances a viewer may press. It is pure; delivery is
// the boundary layer's job.
package render

import (
	"time"

	"github.com/kyudon/police-intake/internal/platform"
)

// Status colors.
const (
	ColorRed   = 0xFF0000
	ColorAmber = 0xFFA500
	ColorBlue  = 0x0099FF
	ColorGreen = 0x00FF00
	ColorGray  = 0x808080
)

const (
	reportFooter = "Emergency Report System"
	caseFooter   = "Case Management System"
	timeLayout   = "Jan 2, 2006 15:04 MST"
)

// FormatTime renders a timestamp the way every embed field does.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// PatchField returns a copy of the embed with the named field's value
// replaced. Unknown names leave the embed untouched; unrelated fields
// keep their order and content.
func PatchField(e platform.Embed, name, value string) platform.Embed {
	fields := make([]platform.EmbedField, len(e.Fields))
	copy(fields, e.Fields)
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Value = value
			break
		}
	}
	e.Fields = fields
	return e
}

// AppendField returns a copy of the embed with one field appended.
func AppendField(e platform.Embed, name, value string, inline bool) platform.Embed {
	fields := make([]platform.EmbedField, len(e.Fields), len(e.Fields)+1)
	copy(fields, e.Fields)
	e.Fields = append(fields, platform.EmbedField{Name: name, Value: value, Inline: inline})
	return e
}
