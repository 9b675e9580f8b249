package platform

// Response callback types.
const (
	RespPong          = 1
	RespMessage       = 4
	RespUpdateMessage = 7
	RespModal         = 9
)

// Message flag marking a reply visible only to the acting user.
const FlagEphemeral = 64

type Emoji struct {
	Name string `json:"name"`
}

type SelectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Emoji       *Emoji `json:"emoji,omitempty"`
}

// Component is a button, select menu, or text input. One struct covers
// all three; the Type discriminator decides which fields apply.
type Component struct {
	Type        int            `json:"type"`
	CustomID    string         `json:"custom_id,omitempty"`
	Label       string         `json:"label,omitempty"`
	Style       int            `json:"style,omitempty"`
	Emoji       *Emoji         `json:"emoji,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
	Value       string         `json:"value,omitempty"`
	MaxLength   int            `json:"max_length,omitempty"`
	Required    bool           `json:"required,omitempty"`
}

type ActionRow struct {
	Type       int         `json:"type"`
	Components []Component `json:"components"`
}

func Row(components ...Component) ActionRow {
	return ActionRow{Type: ComponentActionRow, Components: components}
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed is a structured render: title, color, and an ordered list of
// named fields. Field names are unique within an embed so patches can
// address fields by name.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

type ResponseData struct {
	Content    string      `json:"content,omitempty"`
	Embeds     []Embed     `json:"embeds"`
	Components []ActionRow `json:"components"`
	Flags      int         `json:"flags,omitempty"`

	// Modal responses.
	CustomID string `json:"custom_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Response is the single callback answering an interaction.
type Response struct {
	Type int           `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// Ephemeral builds a user-only text reply.
func Ephemeral(content string) *Response {
	return &Response{
		Type: RespMessage,
		Data: &ResponseData{Content: content, Flags: FlagEphemeral},
	}
}

// UpdateContent replaces the referenced message with bare text,
// stripping embeds and components. Used to collapse pickers and menus
// once a choice lands.
func UpdateContent(content string) *Response {
	return &Response{
		Type: RespUpdateMessage,
		Data: &ResponseData{
			Content:    content,
			Embeds:     []Embed{},
			Components: []ActionRow{},
		},
	}
}
