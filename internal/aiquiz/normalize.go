package aiquiz

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StripFences removes every ```json and ``` marker and trims the result. It
// does not try to understand markdown beyond those two tokens.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseModelOutput checks that the cleaned text is JSON and returns it
// compacted, keeping key order and values exactly as the model wrote them.
func ParseModelOutput(text string) (json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, &MalformedResponseError{Text: text, Err: err}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return nil, &MalformedResponseError{Text: text, Err: err}
	}
	return json.RawMessage(buf.Bytes()), nil
}
