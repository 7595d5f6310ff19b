package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"parintest/assert"
)

func TestDiffDelete(t *testing.T) {
	res, err := Decode("foo\n -")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fo"}, res.Lines, "lines")

	want := []EditRecord{{LineNo: 0, X: 1, OldText: "o", NewText: ""}}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffInsert(t *testing.T) {
	res, err := Decode("fzoo\n +")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fzoo"}, res.Lines, "lines")

	want := []EditRecord{{LineNo: 0, X: 1, OldText: "", NewText: "z"}}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffReplace(t *testing.T) {
	res, err := Decode("faXYr\n -++")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fXYr"}, res.Lines, "lines")

	want := []EditRecord{{LineNo: 0, X: 1, OldText: "a", NewText: "XY"}}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffAtLineStart(t *testing.T) {
	res, err := Decode("xabc\n-")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"abc"}, res.Lines, "lines")
	assert.Equal(t, EditRecord{LineNo: 0, X: 0, OldText: "x", NewText: ""}, res.Edits[0], "edit")
}

func TestMalformedDiffLine(t *testing.T) {
	for _, diffLine := range []string{"+-", "- -", "-+-", " ++- "} {
		perr := decodeErr(t, "foo\n"+diffLine)
		assert.Equal(t, MalformedDiffLine, perr.Code, "code for "+diffLine)
		assert.Equal(t, 2, perr.LineNo, "line for "+diffLine)
	}
}

func TestDiffWithoutPrecedingLine(t *testing.T) {
	perr := decodeErr(t, "--\nfoo")
	assert.Equal(t, DiffWithoutPrecedingLine, perr.Code, "code")
	assert.Equal(t, 1, perr.LineNo, "line")
}

func TestDiffExceedsLineLength(t *testing.T) {
	// x=2, oldLen=1, newLen=1 spans column 4 but "ab" only offers 3
	// columns including the trailing newline position.
	perr := decodeErr(t, "ab\n  -+")
	assert.Equal(t, DiffExceedsLineLength, perr.Code, "code")
	assert.Equal(t, 2, perr.LineNo, "line")
}

func TestDiffMayReachNewlinePosition(t *testing.T) {
	// The column past the line end stands for the trailing newline; an
	// edit ending there records the newline in its old text.
	res, err := Decode("ab\n --")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"a"}, res.Lines, "lines")
	assert.Equal(t, EditRecord{LineNo: 0, X: 1, OldText: "b\n", NewText: ""}, res.Edits[0], "edit")
}

func TestCursorOverDiff(t *testing.T) {
	perr := decodeErr(t, "(ab|c)\n  --")
	assert.Equal(t, CursorOverDiff, perr.Code, "code")
	assert.Equal(t, 2, perr.LineNo, "line")
}

func TestCursorShiftAfterEdit(t *testing.T) {
	res, err := Decode("(ab|c)\n -")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"(bc)"}, res.Lines, "lines")
	assert.Equal(t, 2, res.Cursor.X, "cursor x")
	assert.Equal(t, 0, res.Cursor.Line, "cursor line")
}

func TestCursorAtEditStart(t *testing.T) {
	res, err := Decode("(a|bc)\n  --")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"(a)"}, res.Lines, "lines")
	assert.Equal(t, 1, res.Cursor.X, "cursor x")
}

func TestCursorBeforeEditUntouched(t *testing.T) {
	res, err := Decode("(|abc)\n  --")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"(a)"}, res.Lines, "lines")
	assert.Equal(t, 1, res.Cursor.X, "cursor x")
}
