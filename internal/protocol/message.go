package protocol

// Message represents one protocol message exchanged with the script.
// Use type assertion or type switch to determine the concrete type.
type Message interface {
	MessageType() string
}

// Compile-time verification that all message types implement Message.
var (
	_ Message = (*Arg)(nil)
	_ Message = (*Div)(nil)
	_ Message = (*Submit)(nil)
	_ Message = (*Exit)(nil)
	_ Message = (*Hide)(nil)
	_ Message = (*Browse)(nil)
)

// Choice is one selectable option offered by an Arg prompt.
//
//nolint:tagliatelle // The script protocol uses snake_case
type Choice struct {
	Name        string  `json:"name"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
	SemanticID  *string `json:"semantic_id,omitempty"`
}

// Arg is a script->host request for a user value from a list of choices.
// The ID uniquely identifies this prompt instance; a later Submit carrying
// the same ID is the intended response.
type Arg struct {
	ID          string   `json:"id"`
	Placeholder string   `json:"placeholder"`
	Choices     []Choice `json:"choices"`
}

// MessageType implements the Message interface.
func (m *Arg) MessageType() string { return "arg" }

// Div is a script->host request to display an HTML panel and acknowledge it.
type Div struct {
	ID       string  `json:"id"`
	HTML     string  `json:"html"`
	Tailwind *string `json:"tailwind,omitempty"`
}

// MessageType implements the Message interface.
func (m *Div) MessageType() string { return "div" }

// Submit is a host->script answer to a prompt. A nil Value means the user
// cancelled the prompt. The transport does not check that ID matches a
// still-open prompt; that association is the script's business.
type Submit struct {
	ID    string  `json:"id"`
	Value *string `json:"value,omitempty"`
}

// MessageType implements the Message interface.
func (m *Submit) MessageType() string { return "submit" }

// Exit signals, in either direction, that the session should end.
type Exit struct {
	Code    *int    `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
}

// MessageType implements the Message interface.
func (m *Exit) MessageType() string { return "exit" }

// Hide is a script->host request to hide the window without ending the session.
type Hide struct{}

// MessageType implements the Message interface.
func (m *Hide) MessageType() string { return "hide" }

// Browse is a script->host request to open a URL externally.
type Browse struct {
	URL string `json:"url"`
}

// MessageType implements the Message interface.
func (m *Browse) MessageType() string { return "browse" }
