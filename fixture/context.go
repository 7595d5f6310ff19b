package fixture

// EditRecord describes one contiguous replacement applied to a decoded
// output line. OldText and NewText carry a trailing "\n" when the edit
// consumed the line boundary.
type EditRecord struct {
	LineNo  int // 0-indexed decoded output line
	X       int // 0-indexed column within that line
	OldText string
	NewText string
}

// decoderContext is the shared mutable state for decoding one fixture
// input block. It is owned by a single decode pass and never shared.
// Cursor fields use -1 for "not set".
type decoderContext struct {
	cursorX    int
	cursorLine int
	cursorDx   int
	hasDx      bool
	edits      []EditRecord // chronological, most recent last
}

func newDecoderContext() *decoderContext {
	return &decoderContext{cursorX: -1, cursorLine: -1}
}

func (c *decoderContext) hasCursor() bool { return c.cursorLine >= 0 }

func (c *decoderContext) pushEdit(e EditRecord) {
	c.edits = append(c.edits, e)
}

// mergeLastEdits folds the two most recent edit records into one
// continuous edit, keeping the earlier record's position.
func (c *decoderContext) mergeLastEdits() {
	n := len(c.edits)
	if n < 2 {
		return
	}
	a, b := c.edits[n-2], c.edits[n-1]
	a.OldText += b.OldText
	a.NewText += b.NewText
	c.edits = append(c.edits[:n-2], a)
}
