package types

import "context"

// Mode selects which transformation the engine applies.
type Mode string

const (
	ModeIndent Mode = "indent"
	ModeParen  Mode = "paren"
)

// Other returns the opposite transformation mode.
func (m Mode) Other() Mode {
	if m == ModeIndent {
		return ModeParen
	}
	return ModeIndent
}

// Options carries cursor state into a transform call.
// Nil pointer fields mean "not set".
type Options struct {
	CursorX            *int `json:"cursorX,omitempty"`
	CursorLine         *int `json:"cursorLine,omitempty"`
	CursorDx           *int `json:"cursorDx,omitempty"`
	PreviewCursorScope bool `json:"previewCursorScope,omitempty"`
}

// TransformError identifies a structural error reported by the engine,
// e.g. an unclosed quote. LineNo is 0-indexed, X is a 0-indexed column.
type TransformError struct {
	Name   string `json:"name"`
	LineNo int    `json:"lineNo"`
	X      int    `json:"x"`
}

// TabStop is one indentation stop the engine reports for the cursor line.
type TabStop struct {
	Ch     string `json:"ch"`
	LineNo int    `json:"lineNo"`
	X      int    `json:"x"`
}

// TransformResult is the engine's answer for one text+options call.
type TransformResult struct {
	Text     string          `json:"text"`
	CursorX  *int            `json:"cursorX,omitempty"`
	Success  bool            `json:"success"`
	Error    *TransformError `json:"error,omitempty"`
	TabStops []TabStop       `json:"tabStops,omitempty"`
}

// Transformer is the boundary to the external bracket-balancing engine.
type Transformer interface {
	Transform(ctx context.Context, text string, opts *Options, mode Mode) (*TransformResult, error)
}

// Fixture is one test case loaded from a fixture file.
type Fixture struct {
	In  FixtureInput  `json:"in"`
	Out FixtureOutput `json:"out"`
}

// FixtureInput holds the annotated input block and its position in the
// file the fixture was generated from.
type FixtureInput struct {
	FileLineNo int    `json:"fileLineNo"`
	Text       string `json:"text"`
}

// FixtureOutput is the expected outcome of transforming the decoded input.
type FixtureOutput struct {
	Lines    []string        `json:"lines"`
	Cursor   *FixtureCursor  `json:"cursor,omitempty"`
	Error    *TransformError `json:"error,omitempty"`
	TabStops []TabStop       `json:"tabStops,omitempty"`
}

// FixtureCursor is the expected cursor position after transformation.
type FixtureCursor struct {
	CursorX    int `json:"cursorX"`
	CursorLine int `json:"cursorLine"`
}

// TransformerType selects a transformer implementation by name.
type TransformerType string

const (
	TransformerSubprocess TransformerType = "subprocess"
	TransformerNull       TransformerType = "null"
)

// TransformerConfig holds configuration for transformer construction.
type TransformerConfig struct {
	Command   []string // argv for the subprocess transformer
	TimeoutMs int      // per-call timeout in milliseconds (0 = none)
}
