package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"parintest/assert"
)

func TestNewlineDeletionJoinsNextLine(t *testing.T) {
	res, err := Decode("foo\n  --\nbar")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fobar"}, res.Lines, "lines")

	want := []EditRecord{{LineNo: 0, X: 2, OldText: "o\n", NewText: ""}}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinKeepsTrailingLines(t *testing.T) {
	res, err := Decode("foo\n  --\nbar\nbaz")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fobar", "baz"}, res.Lines, "lines")
}

func TestMergeAdjacentDiffEdits(t *testing.T) {
	// The first diff deletes "o" and the newline, the second continues
	// with "b" on the next line: one output line, one merged edit.
	res, err := Decode("foo\n  --\nbar\n-")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"foar"}, res.Lines, "lines")

	want := []EditRecord{{LineNo: 0, X: 2, OldText: "o\nb", NewText: ""}}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSplicesThreeLines(t *testing.T) {
	res, err := Decode("foo\n  --\nbar\n----\nbaz")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fobaz"}, res.Lines, "lines")

	want := []EditRecord{{LineNo: 0, X: 2, OldText: "o\nbar\n", NewText: ""}}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestConflictingDiffOrder(t *testing.T) {
	perr := decodeErr(t, "fooX\n   +\nbar\n-")
	assert.Equal(t, ConflictingDiffOrder, perr.Code, "code")
	assert.Equal(t, 4, perr.LineNo, "line")
}

func TestDiffsNotAdjacent(t *testing.T) {
	perr := decodeErr(t, "fooX\n   +\naa\nbb\n+")
	assert.Equal(t, DiffsNotAdjacent, perr.Code, "code")
	assert.Equal(t, 5, perr.LineNo, "line")
}

func TestCursorRebasedAcrossJoin(t *testing.T) {
	res, err := Decode("foo\n  --\nb|ar")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"fobar"}, res.Lines, "lines")
	assert.Equal(t, 0, res.Cursor.Line, "cursor line")
	assert.Equal(t, 3, res.Cursor.X, "cursor x")
}

func TestIndependentEditsDoNotFold(t *testing.T) {
	// Neither diff reaches its line's newline position, so the lines
	// stay separate and so do the edits.
	res, err := Decode("ab\n-\ncd\n-")
	assert.NoError(t, err, "Decode")
	assert.Equal(t, []string{"b", "d"}, res.Lines, "lines")

	want := []EditRecord{
		{LineNo: 0, X: 0, OldText: "a", NewText: ""},
		{LineNo: 1, X: 0, OldText: "c", NewText: ""},
	}
	if diff := cmp.Diff(want, res.Edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}
