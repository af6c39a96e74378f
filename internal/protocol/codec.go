package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/promptwire/script-sdk-go/internal/errors"
)

// Encode serializes a message as exactly one line of JSON, tagged with the
// message's type. The result carries no embedded newline (newlines inside
// field values stay escaped in the JSON string) and no trailing newline; the
// writer appends the line terminator.
func Encode(m Message) ([]byte, error) {
	var payload any

	// Embedding the concrete struct flattens its fields next to the tag.
	switch m := m.(type) {
	case *Arg:
		payload = struct {
			Type string `json:"type"`
			*Arg
		}{"arg", m}
	case *Div:
		payload = struct {
			Type string `json:"type"`
			*Div
		}{"div", m}
	case *Submit:
		payload = struct {
			Type string `json:"type"`
			*Submit
		}{"submit", m}
	case *Exit:
		payload = struct {
			Type string `json:"type"`
			*Exit
		}{"exit", m}
	case *Hide:
		payload = struct {
			Type string `json:"type"`
		}{"hide"}
	case *Browse:
		payload = struct {
			Type string `json:"type"`
			*Browse
		}{"browse", m}
	default:
		return nil, fmt.Errorf("encode message: %w: %T", errors.ErrUnknownMessageType, m)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.MessageType(), err)
	}

	return data, nil
}

// Decode parses one line into a typed Message.
//
// Unknown or extra fields in an otherwise valid message are ignored for
// forward compatibility. A line that is not valid JSON, or a valid object
// missing the type tag, yields a *errors.DecodeError. A well-formed object
// with an unrecognized type tag yields errors.ErrUnknownMessageType so the
// reader can skip it; neither case is ever fatal to the read loop.
func Decode(line []byte) (Message, error) {
	var envelope struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(line, &envelope); err != nil {
		return nil, &errors.DecodeError{
			RawLine: string(bytes.TrimSpace(line)),
			Err:     err,
		}
	}

	if envelope.Type == "" {
		return nil, &errors.DecodeError{
			RawLine: string(bytes.TrimSpace(line)),
			Err:     fmt.Errorf("missing or empty 'type' field"),
		}
	}

	var (
		msg Message
		err error
	)

	switch envelope.Type {
	case "arg":
		msg, err = decodeInto(line, &Arg{})
	case "div":
		msg, err = decodeInto(line, &Div{})
	case "submit":
		msg, err = decodeInto(line, &Submit{})
	case "exit":
		msg, err = decodeInto(line, &Exit{})
	case "hide":
		msg, err = decodeInto(line, &Hide{})
	case "browse":
		msg, err = decodeInto(line, &Browse{})
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownMessageType, envelope.Type)
	}

	if err != nil {
		return nil, &errors.DecodeError{
			RawLine: string(bytes.TrimSpace(line)),
			Err:     err,
		}
	}

	return msg, nil
}

// decodeInto unmarshals the full line into the concrete variant.
func decodeInto[T Message](line []byte, msg T) (T, error) {
	if err := json.Unmarshal(line, msg); err != nil {
		return msg, fmt.Errorf("decode %s message: %w", msg.MessageType(), err)
	}

	return msg, nil
}
