package fixture

import (
	"regexp"
	"strconv"
	"strings"
)

const cursorMarker = "|"

// extractCursor removes the cursor marker from line, recording its
// position in the context. inputLineNo is the 1-based raw line number
// used for diagnostics; outLineNo is the 0-based decoded line index this
// line will occupy. Columns elsewhere in the pipeline are computed
// against the returned marker-free line.
func (c *decoderContext) extractCursor(line string, inputLineNo, outLineNo int) (string, error) {
	x := strings.Index(line, cursorMarker)
	if x < 0 {
		return line, nil
	}
	if c.hasCursor() {
		return "", parseErrorf(DuplicateCursor, inputLineNo,
			"cursor already recorded on line %d", c.cursorLine)
	}
	stripped := line[:x] + line[x+1:]
	if strings.Contains(stripped, cursorMarker) {
		return "", parseErrorf(MultipleCursorsOnLine, inputLineNo,
			"more than one cursor marker on this line")
	}
	c.cursorX = x
	c.cursorLine = outLineNo
	return stripped, nil
}

var cursorDxRe = regexp.MustCompile(`^( *)cursorDx +(-?\d+) *$`)

// matchCursorDx recognizes a cursorDx directive line asserting the
// expected horizontal cursor displacement. It returns true when the line
// is a directive; directive lines contribute no text. The directive must
// directly follow the cursor line and its indentation must equal the
// cursor column.
func (c *decoderContext) matchCursorDx(line string, inputLineNo, outLineNo int) (bool, error) {
	m := cursorDxRe.FindStringSubmatch(line)
	if m == nil {
		return false, nil
	}
	if !c.hasCursor() {
		return false, parseErrorf(CursorDxWithoutCursor, inputLineNo,
			"cursorDx with no cursor before it")
	}
	if c.cursorLine != outLineNo-1 {
		return false, parseErrorf(CursorDxNotAdjacent, inputLineNo,
			"cursorDx must directly follow the cursor line (cursor on line %d)", c.cursorLine)
	}
	if len(m[1]) != c.cursorX {
		return false, parseErrorf(CursorDxPositionMismatch, inputLineNo,
			"cursorDx indented to column %d, cursor at column %d", len(m[1]), c.cursorX)
	}
	dx, _ := strconv.Atoi(m[2])
	c.cursorDx = dx
	c.hasDx = true
	return true, nil
}
