package fixture

import "regexp"

// diffFields is the parsed metadata of one diff annotation line. It is
// consumed by the merge pass immediately after parsing.
type diffFields struct {
	startChar    byte   // first annotation char, '-' or '+'
	endChar      byte   // last annotation char
	spansNewline bool   // the annotation covers the implicit trailing newline
	codeLineNo   int    // 0-indexed output line the diff edits
	inputLineNo  int    // 1-based raw line of the annotation
	code         string // the previous line with the edit applied
}

// looseDiffRe flags a line that looks like a diff annotation; strictDiffRe
// then enforces the shape: a run of '-' strictly before a run of '+'.
var (
	looseDiffRe  = regexp.MustCompile(`^ *[-+][-+ ]*$`)
	strictDiffRe = regexp.MustCompile(`^( *)(-*)(\+*) *$`)
)

// parseDiffLine recognizes a diff annotation and applies it to prevLine,
// the decoded line directly above. The line above a diff annotation holds
// the replaced and inserted text spliced together: the '-' run marks the
// replaced characters, the '+' run the inserted ones. One column past the
// line end stands for the trailing newline.
//
// Returns nil when the line is not a diff annotation. On a match the
// caller must replace the top decoded line with code; a diff line adds no
// output line of its own.
func (c *decoderContext) parseDiffLine(line, prevLine string, hasPrev bool, inputLineNo, outLineNo int) (*diffFields, error) {
	if !looseDiffRe.MatchString(line) {
		return nil, nil
	}
	m := strictDiffRe.FindStringSubmatch(line)
	if m == nil {
		return nil, parseErrorf(MalformedDiffLine, inputLineNo,
			"diff line must be a run of '-' then a run of '+'")
	}
	if !hasPrev {
		return nil, parseErrorf(DiffWithoutPrecedingLine, inputLineNo,
			"diff line with no line above it")
	}

	x, oldLen, newLen := len(m[1]), len(m[2]), len(m[3])
	end := x + oldLen + newLen
	if end > len(prevLine)+1 {
		return nil, parseErrorf(DiffExceedsLineLength, inputLineNo,
			"diff spans column %d, line above has %d columns", end, len(prevLine))
	}

	prevOutLineNo := outLineNo - 1
	if c.hasCursor() && c.cursorLine == prevOutLineNo {
		switch {
		case c.cursorX > x && c.cursorX < end:
			return nil, parseErrorf(CursorOverDiff, inputLineNo,
				"cursor at column %d is inside the replaced span", c.cursorX)
		case c.cursorX == x:
			c.cursorX--
		case c.cursorX >= end:
			c.cursorX -= oldLen
		}
	}

	spansNewline := end == len(prevLine)+1
	oldEnd := min(x+oldLen, len(prevLine))
	oldText := prevLine[x:oldEnd]
	newText := prevLine[oldEnd:min(end, len(prevLine))]
	if spansNewline {
		if newLen > 0 {
			newText += "\n"
		} else {
			oldText += "\n"
		}
	}

	c.pushEdit(EditRecord{
		LineNo:  prevOutLineNo,
		X:       x,
		OldText: oldText,
		NewText: newText,
	})

	start := byte('-')
	if oldLen == 0 {
		start = '+'
	}
	last := byte('+')
	if newLen == 0 {
		last = '-'
	}
	return &diffFields{
		startChar:    start,
		endChar:      last,
		spansNewline: spansNewline,
		codeLineNo:   prevOutLineNo,
		inputLineNo:  inputLineNo,
		code:         prevLine[:x] + prevLine[oldEnd:],
	}, nil
}
