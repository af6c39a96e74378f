package protocol

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/promptwire/script-sdk-go/internal/errors"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{
			name: "arg with choices",
			msg: &Arg{
				ID:          "prompt-1",
				Placeholder: "Pick a branch",
				Choices: []Choice{
					{Name: "main", Value: "refs/heads/main"},
					{
						Name:        "dev",
						Value:       "refs/heads/dev",
						Description: strPtr("integration branch"),
						SemanticID:  strPtr("branch-dev"),
					},
				},
			},
		},
		{
			name: "arg with empty choices",
			msg:  &Arg{ID: "1", Placeholder: "Name?", Choices: []Choice{}},
		},
		{
			name: "div with tailwind",
			msg:  &Div{ID: "2", HTML: "<b>done</b>", Tailwind: strPtr("p-4 text-sm")},
		},
		{
			name: "div without tailwind",
			msg:  &Div{ID: "3", HTML: "<i>plain</i>"},
		},
		{
			name: "submit with value",
			msg:  &Submit{ID: "prompt-1", Value: strPtr("refs/heads/dev")},
		},
		{
			name: "submit without value is a cancellation",
			msg:  &Submit{ID: "prompt-1"},
		},
		{
			name: "exit with code and message",
			msg:  &Exit{Code: intPtr(1), Message: strPtr("Cancelled by user")},
		},
		{
			name: "bare exit",
			msg:  &Exit{},
		},
		{
			name: "hide",
			msg:  &Hide{},
		},
		{
			name: "browse",
			msg:  &Browse{URL: "https://example.com/docs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Encode(tt.msg)
			require.NoError(t, err)

			decoded, err := Decode(line)
			require.NoError(t, err)
			require.Equal(t, tt.msg, decoded)
		})
	}
}

func TestEncode_NoEmbeddedNewline(t *testing.T) {
	line, err := Encode(&Div{
		ID:   "panel",
		HTML: "<pre>line one\nline two\r\nline three</pre>",
	})
	require.NoError(t, err)
	require.NotContains(t, string(line), "\n")
	require.NotContains(t, string(line), "\r")

	// The newlines survive the round trip as escaped string content.
	decoded, err := Decode(line)
	require.NoError(t, err)

	div, ok := decoded.(*Div)
	require.True(t, ok)
	require.Equal(t, "<pre>line one\nline two\r\nline three</pre>", div.HTML)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	line := []byte(`{"type":"arg","id":"1","placeholder":"Name?","choices":[],` +
		`"hint":"from a newer script runtime","priority":3}`)

	decoded, err := Decode(line)
	require.NoError(t, err)
	require.Equal(t, &Arg{ID: "1", Placeholder: "Name?", Choices: []Choice{}}, decoded)
}

func TestDecode_MalformedLine(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "not json", line: "not-json"},
		{name: "truncated object", line: `{"type":"arg","id":`},
		{name: "bare array", line: `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.line))
			require.Nil(t, msg)

			var decodeErr *sdkerrors.DecodeError
			require.True(t, stderrors.As(err, &decodeErr))
			require.Equal(t, tt.line, decodeErr.RawLine)
		})
	}
}

func TestDecode_MissingType(t *testing.T) {
	msg, err := Decode([]byte(`{"id":"1","placeholder":"Name?"}`))
	require.Nil(t, msg)

	var decodeErr *sdkerrors.DecodeError
	require.True(t, stderrors.As(err, &decodeErr))
}

func TestDecode_UnknownType(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"hologram","id":"1"}`))
	require.Nil(t, msg)
	require.ErrorIs(t, err, sdkerrors.ErrUnknownMessageType)
}

func TestEncode_OmitsAbsentOptionalFields(t *testing.T) {
	line, err := Encode(&Submit{ID: "1"})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"submit","id":"1"}`, string(line))

	line, err = Encode(&Exit{})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"exit"}`, string(line))

	line, err = Encode(&Hide{})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"hide"}`, string(line))
}
