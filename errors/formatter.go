package errors

import (
	"bytes"
	"encoding/json"
)

// Formatter renders errors for a particular output surface.
type Formatter interface {
	Format(err error) string
	FormatAll(errs []error) string
}

// TextFormatter renders errors one per paragraph, in the style of
// classic bean-check/ledger CLI diagnostics: "file:line:col: message".
type TextFormatter struct {
	// Color, when non-nil, wraps the rendered message (e.g. with a
	// lipgloss style). Kept as a plain func to avoid a hard dependency
	// on a specific styling library here.
	Color func(string) string
}

// NewTextFormatter builds a TextFormatter with no coloring.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (tf *TextFormatter) Format(err error) string {
	msg := err.Error()
	if tf.Color != nil {
		return tf.Color(msg)
	}
	return msg
}

func (tf *TextFormatter) FormatAll(errs []error) string {
	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))
		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

// JSONFormatter renders errors as a JSON array of {kind, position, message}.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type errorJSON struct {
	Kind     string `json:"kind"`
	Position string `json:"position,omitempty"`
	Message  string `json:"message"`
}

func (jf *JSONFormatter) toJSON(err error) errorJSON {
	if je, ok := err.(*JournalError); ok {
		return errorJSON{Kind: je.Kind.String(), Position: je.Pos.String(), Message: je.Error()}
	}
	return errorJSON{Kind: "Unknown", Message: err.Error()}
}

func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

func (jf *JSONFormatter) FormatAll(errs []error) string {
	out := make([]errorJSON, 0, len(errs))
	for _, err := range errs {
		out = append(out, jf.toJSON(err))
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data)
}
