// Package platform holds the wire contract with the chat platform:
// inbound interaction payloads, callback responses, message components,
// and the channel REST client. Nothing above this package touches raw
// JSON from the boundary.
package platform

import "strconv"

// Interaction kinds delivered to the webhook endpoint.
const (
	KindPing        = 1
	KindCommand     = 2
	KindComponent   = 3
	KindModalSubmit = 5
)

// Component type discriminators on the wire.
const (
	ComponentActionRow  = 1
	ComponentButton     = 2
	ComponentSelectMenu = 3
	ComponentTextInput  = 4
)

// Button styles.
const (
	StylePrimary   = 1
	StyleSecondary = 2
	StyleSuccess   = 3
	StyleDanger    = 4
)

// Text input styles.
const (
	TextInputShort     = 1
	TextInputParagraph = 2
)

// administrator permission bit in the member permissions bitfield.
const permAdministrator = 0x8

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Tag is the display handle used in record fields and officer columns.
func (u User) Tag() string {
	return u.Username
}

type Member struct {
	User        User   `json:"user"`
	Permissions string `json:"permissions"`
}

// HasAdmin reports whether the member's permission bitfield carries the
// administrator bit.
func (m *Member) HasAdmin() bool {
	if m == nil {
		return false
	}
	bits, err := strconv.ParseInt(m.Permissions, 10, 64)
	if err != nil {
		return false
	}
	return bits&permAdministrator != 0
}

type CommandOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type InteractionData struct {
	// Command invocations.
	Name    string          `json:"name,omitempty"`
	Options []CommandOption `json:"options,omitempty"`

	// Components and modal submissions.
	CustomID      string      `json:"custom_id,omitempty"`
	ComponentType int         `json:"component_type,omitempty"`
	Values        []string    `json:"values,omitempty"`
	Components    []ActionRow `json:"components,omitempty"`
}

// Option returns a named command option value, or "".
func (d *InteractionData) Option(name string) string {
	for _, o := range d.Options {
		if o.Name == name {
			return o.Value
		}
	}
	return ""
}

// TextValue returns a submitted modal text-input value by custom id.
func (d *InteractionData) TextValue(customID string) string {
	for _, row := range d.Components {
		for _, c := range row.Components {
			if c.CustomID == customID {
				return c.Value
			}
		}
	}
	return ""
}

// Message is the previously delivered render an interaction references,
// carried so handlers can patch the displayed fields in place.
type Message struct {
	ID     string  `json:"id"`
	Embeds []Embed `json:"embeds,omitempty"`
}

// Interaction is one inbound event from the chat boundary. Exactly one
// Response answers it.
type Interaction struct {
	ID        string          `json:"id"`
	Kind      int             `json:"type"`
	GuildID   string          `json:"guild_id,omitempty"`
	ChannelID string          `json:"channel_id,omitempty"`
	Member    *Member         `json:"member,omitempty"`
	Data      InteractionData `json:"data,omitempty"`
	Message   *Message        `json:"message,omitempty"`
	Token     string          `json:"token,omitempty"`
}

// Actor returns the acting user. Guild interactions carry it inside
// Member.
func (i *Interaction) Actor() User {
	if i.Member != nil {
		return i.Member.User
	}
	return User{}
}
