package scriptsdk

import "github.com/promptwire/script-sdk-go/internal/protocol"

// Re-export protocol types from internal package

// Message represents one wire message exchanged with the script.
type Message = protocol.Message

// Arg is a script->host request for a user value from a list of choices.
type Arg = protocol.Arg

// Div is a script->host request to display an HTML panel.
type Div = protocol.Div

// Submit is a host->script answer to a prompt.
type Submit = protocol.Submit

// Exit signals, in either direction, that the session should end.
type Exit = protocol.Exit

// Hide is a script->host request to hide the window.
type Hide = protocol.Hide

// Browse is a script->host request to open a URL externally.
type Browse = protocol.Browse

// Choice is one selectable option offered by an Arg prompt.
type Choice = protocol.Choice

// PromptMessage is the UI-facing projection of a script message.
type PromptMessage = protocol.PromptMessage

// ShowArg asks the UI to display a value prompt.
type ShowArg = protocol.ShowArg

// ShowDiv asks the UI to display an HTML panel.
type ShowDiv = protocol.ShowDiv

// HideWindow asks the UI to hide the window; the session stays alive.
type HideWindow = protocol.HideWindow

// OpenBrowser asks the host to open a URL externally.
type OpenBrowser = protocol.OpenBrowser

// ScriptExit reports that the session ended.
type ScriptExit = protocol.ScriptExit
