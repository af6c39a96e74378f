// Package protocol defines the line-delimited JSON protocol spoken with a
// script process, and the UI-facing events it projects to.
//
// The wire format is one JSON object per line, tagged by a "type" field:
//
//	{"type":"arg","id":"1","placeholder":"Name?","choices":[...]}   script->host
//	{"type":"div","id":"2","html":"<b>hi</b>","tailwind":"p-4"}     script->host
//	{"type":"submit","id":"1","value":"x"}                          host->script
//	{"type":"exit","code":0,"message":"done"}                       either way
//	{"type":"hide"}                                                 script->host
//	{"type":"browse","url":"https://example.com"}                   script->host
//
// Encode and Decode round-trip every valid message field-for-field. Decoding
// ignores unknown fields for forward compatibility, and decode failures are
// per-line: a malformed line never ends a session.
package protocol
