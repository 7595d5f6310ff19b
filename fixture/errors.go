package fixture

import "fmt"

// ErrorCode identifies a class of fixture malformation. A malformed
// fixture means the test data itself is invalid, not the engine under
// test.
type ErrorCode string

const (
	DuplicateCursor          ErrorCode = "DuplicateCursor"
	MultipleCursorsOnLine    ErrorCode = "MultipleCursorsOnLine"
	CursorDxWithoutCursor    ErrorCode = "CursorDxWithoutCursor"
	CursorDxNotAdjacent      ErrorCode = "CursorDxNotAdjacent"
	CursorDxPositionMismatch ErrorCode = "CursorDxPositionMismatch"
	MalformedDiffLine        ErrorCode = "MalformedDiffLine"
	DiffWithoutPrecedingLine ErrorCode = "DiffWithoutPrecedingLine"
	DiffExceedsLineLength    ErrorCode = "DiffExceedsLineLength"
	CursorOverDiff           ErrorCode = "CursorOverDiff"
	ConflictingDiffOrder     ErrorCode = "ConflictingDiffOrder"
	DiffsNotAdjacent         ErrorCode = "DiffsNotAdjacent"
)

// ParseError reports a malformed fixture annotation. LineNo is the
// 1-based raw line number within the fixture's input block.
type ParseError struct {
	Code   ErrorCode
	LineNo int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.LineNo, e.Code, e.Msg)
}

func parseErrorf(code ErrorCode, lineNo int, format string, args ...any) *ParseError {
	return &ParseError{Code: code, LineNo: lineNo, Msg: fmt.Sprintf(format, args...)}
}
