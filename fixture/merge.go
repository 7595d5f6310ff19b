package fixture

// postprocessDiffs runs after every raw line (and once more after the
// last one) to fold output lines joined by a newline-consuming edit. cur
// is the diff parsed on the current line, nil for plain lines and the
// final flush; inputLineNo is the 1-based raw position of the call.
func (d *decoder) postprocessDiffs(cur *diffFields, inputLineNo int) error {
	prev := d.prevDiff
	if prev == nil {
		return nil
	}

	if cur != nil {
		if prev.endChar == '+' && cur.startChar == '-' {
			return parseErrorf(ConflictingDiffOrder, inputLineNo,
				"'-' run cannot continue a diff that ended with '+'")
		}
		if cur.inputLineNo-prev.inputLineNo > 2 {
			return parseErrorf(DiffsNotAdjacent, inputLineNo,
				"diff edits separated by more than one code line")
		}
		if prev.endChar == '-' && prev.spansNewline && cur.codeLineNo == prev.codeLineNo+1 {
			// The previous edit deleted its trailing newline and this one
			// continues on the next line: splice the lines and merge the
			// two edits into one continuous record.
			d.spliceInto(prev.codeLineNo)
			d.ctx.mergeLastEdits()
			cur.codeLineNo = prev.codeLineNo
		}
		return nil
	}

	// No diff on this line. A newline-deleting edit with no continuation
	// annotation still joins the following line; that is certain once one
	// more raw line (or the end of input) has passed without a diff.
	if prev.endChar == '-' && prev.spansNewline &&
		inputLineNo-prev.inputLineNo == 2 && len(d.lines) >= prev.codeLineNo+2 {
		d.spliceInto(prev.codeLineNo)
		d.prevDiff = nil
	}
	return nil
}

// spliceInto folds output line l+1 into line l, repairing the cursor
// position for the shrunken line count.
func (d *decoder) spliceInto(l int) {
	base := d.lines[l]
	d.lines[l] = base + d.lines[l+1]
	d.lines = append(d.lines[:l+1], d.lines[l+2:]...)

	switch {
	case d.ctx.cursorLine == l+1:
		d.ctx.cursorLine = l
		d.ctx.cursorX += len(base)
	case d.ctx.cursorLine > l+1:
		d.ctx.cursorLine--
	}
}
