package protocol

// PromptMessage is the UI-facing projection of a script message, produced
// only by the session's reader worker. The rendering layer drains these via
// SessionController.Poll on each UI tick.
type PromptMessage interface {
	PromptMessageType() string
}

// Compile-time verification that all event types implement PromptMessage.
var (
	_ PromptMessage = (*ShowArg)(nil)
	_ PromptMessage = (*ShowDiv)(nil)
	_ PromptMessage = (*HideWindow)(nil)
	_ PromptMessage = (*OpenBrowser)(nil)
	_ PromptMessage = (*ScriptExit)(nil)
)

// ShowArg asks the UI to display a value prompt.
type ShowArg struct {
	ID          string
	Placeholder string
	Choices     []Choice
}

// PromptMessageType implements the PromptMessage interface.
func (e *ShowArg) PromptMessageType() string { return "show_arg" }

// ShowDiv asks the UI to display an HTML panel.
type ShowDiv struct {
	ID       string
	HTML     string
	Tailwind *string
}

// PromptMessageType implements the PromptMessage interface.
func (e *ShowDiv) PromptMessageType() string { return "show_div" }

// HideWindow asks the UI to hide the window; the session stays alive.
type HideWindow struct{}

// PromptMessageType implements the PromptMessage interface.
func (e *HideWindow) PromptMessageType() string { return "hide_window" }

// OpenBrowser asks the host to open a URL externally.
type OpenBrowser struct {
	URL string
}

// PromptMessageType implements the PromptMessage interface.
func (e *OpenBrowser) PromptMessageType() string { return "open_browser" }

// ScriptExit reports that the session ended. It is emitted exactly once per
// session: either translated from an explicit Exit message, or synthesized by
// the reader when the script closes its output. Code and Stderr carry exit
// diagnostics when the process ended abnormally.
type ScriptExit struct {
	Code    *int
	Message *string
	Stderr  string
}

// PromptMessageType implements the PromptMessage interface.
func (e *ScriptExit) PromptMessageType() string { return "script_exit" }
