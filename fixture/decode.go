// Package fixture decodes the annotation language used by parinfer test
// fixtures: plain text lines interleaved with a single inline cursor
// marker, cursorDx directives, and character-level diff lines describing
// an edit to the line above.
package fixture

import "strings"

// Cursor is the resolved cursor position in decoded coordinates. Dx is
// set only when the fixture carried a cursorDx directive.
type Cursor struct {
	X    int
	Line int
	Dx   *int
}

// Result is the decoded form of one fixture input block: clean text
// lines with no annotation artifacts, the cursor if any, and the edits
// described by diff annotations in chronological order.
type Result struct {
	Lines  []string
	Cursor *Cursor
	Edits  []EditRecord
}

// Text joins the decoded lines into newline-separated text.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

type decoder struct {
	ctx      *decoderContext
	lines    []string
	prevDiff *diffFields
}

// Decode parses one fixture input block. Malformed annotations return a
// *ParseError carrying the offending raw line number; decoding state is
// never shared across fixtures.
func Decode(text string) (*Result, error) {
	d := &decoder{ctx: newDecoderContext()}

	inputLineNo := 0
	for _, line := range splitLines(text) {
		inputLineNo++

		skip, err := d.ctx.matchCursorDx(line, inputLineNo, len(d.lines))
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}

		line, err = d.ctx.extractCursor(line, inputLineNo, len(d.lines))
		if err != nil {
			return nil, err
		}

		var prevLine string
		hasPrev := len(d.lines) > 0
		if hasPrev {
			prevLine = d.lines[len(d.lines)-1]
		}
		diff, err := d.ctx.parseDiffLine(line, prevLine, hasPrev, inputLineNo, len(d.lines))
		if err != nil {
			return nil, err
		}
		if diff != nil {
			d.lines[len(d.lines)-1] = diff.code
		} else {
			d.lines = append(d.lines, line)
		}

		if err := d.postprocessDiffs(diff, inputLineNo); err != nil {
			return nil, err
		}
		// Carry the active diff forward only while a continuation is
		// still possible; a stale chain resets instead of merging.
		if diff != nil || d.prevDiff == nil || inputLineNo-d.prevDiff.inputLineNo > 2 {
			d.prevDiff = diff
		}
	}
	// Flush once past the end to catch a trailing join.
	if err := d.postprocessDiffs(nil, inputLineNo+1); err != nil {
		return nil, err
	}

	res := &Result{Lines: d.lines, Edits: d.ctx.edits}
	if d.ctx.hasCursor() {
		cur := &Cursor{X: d.ctx.cursorX, Line: d.ctx.cursorLine}
		if d.ctx.hasDx {
			dx := d.ctx.cursorDx
			cur.Dx = &dx
		}
		res.Cursor = cur
	}
	return res, nil
}

// splitLines splits text by newline and removes the trailing empty
// element left by a final newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
