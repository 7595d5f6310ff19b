// Package runner drives decoded fixtures through a transformer and
// tallies check failures.
package runner

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sergi/go-diff/diffmatchpatch"

	"parintest/fixture"
	"parintest/types"
)

// Config controls which checks a Runner applies.
type Config struct {
	Mode               types.Mode
	CrossMode          bool // run the other mode on each result and require identical text
	PreviewCursorScope bool
}

// Runner runs fixtures and counts failures. A fixture can fail several
// checks independently; every applicable check always runs.
type Runner struct {
	transformer types.Transformer
	cfg         Config
	log         *log.Logger
	dmp         *diffmatchpatch.DiffMatchPatch

	Runs     int
	Failures int
}

func New(t types.Transformer, cfg Config, logger *log.Logger) *Runner {
	return &Runner{
		transformer: t,
		cfg:         cfg,
		log:         logger,
		dmp:         diffmatchpatch.New(),
	}
}

// RunAll processes every fixture in order and returns the total failure
// count.
func (r *Runner) RunAll(ctx context.Context, fixtures []types.Fixture) int {
	for i := range fixtures {
		r.RunFixture(ctx, &fixtures[i])
	}
	return r.Failures
}

// RunFixture decodes and checks one fixture. A malformed fixture is a
// single hard failure and aborts only this fixture.
func (r *Runner) RunFixture(ctx context.Context, f *types.Fixture) {
	r.Runs++

	decoded, err := fixture.Decode(f.In.Text)
	if err != nil {
		r.fail(f, "decode", err.Error())
		return
	}

	opts := r.options(decoded)
	first, err := r.transformer.Transform(ctx, decoded.Text(), opts, r.cfg.Mode)
	if err != nil {
		r.fail(f, "transform", err.Error())
		return
	}

	r.checkText(f, first)
	r.checkCursor(f, first)
	r.checkError(f, first)
	r.checkTabStops(f, first)
	r.checkIdempotence(ctx, f, first)
	if r.cfg.CrossMode {
		r.checkCrossMode(ctx, f, first)
	}
}

func (r *Runner) options(decoded *fixture.Result) *types.Options {
	opts := &types.Options{PreviewCursorScope: r.cfg.PreviewCursorScope}
	if c := decoded.Cursor; c != nil {
		x, line := c.X, c.Line
		opts.CursorX = &x
		opts.CursorLine = &line
		opts.CursorDx = c.Dx
	}
	return opts
}

func (r *Runner) checkText(f *types.Fixture, result *types.TransformResult) {
	expected := strings.Join(f.Out.Lines, "\n")
	if result.Text == expected {
		return
	}
	r.fail(f, "text", "transformed text does not match expected lines")
	diffs := r.dmp.DiffMain(expected, result.Text, false)
	r.log.Debug("text mismatch", "fileLineNo", f.In.FileLineNo, "diff", r.dmp.DiffPrettyText(diffs))
}

func (r *Runner) checkCursor(f *types.Fixture, result *types.TransformResult) {
	if f.Out.Cursor == nil {
		return
	}
	if result.CursorX == nil {
		r.fail(f, "cursor", "engine reported no cursor position")
		return
	}
	if *result.CursorX != f.Out.Cursor.CursorX {
		r.fail(f, "cursor", "cursorX mismatch")
	}
}

func (r *Runner) checkError(f *types.Fixture, result *types.TransformResult) {
	expected, got := f.Out.Error, result.Error
	switch {
	case expected == nil && got == nil:
	case expected == nil:
		r.fail(f, "error", "unexpected engine error: "+got.Name)
	case got == nil:
		r.fail(f, "error", "expected engine error "+expected.Name+" was not reported")
	case *expected != *got:
		r.fail(f, "error", "engine error does not match expected error")
	}
}

func (r *Runner) checkTabStops(f *types.Fixture, result *types.TransformResult) {
	expected, got := f.Out.TabStops, result.TabStops
	if len(expected) == 0 && len(got) == 0 {
		return
	}
	if len(expected) != len(got) {
		r.fail(f, "tabStops", "tab stop count mismatch")
		return
	}
	for i := range expected {
		if expected[i] != got[i] {
			r.fail(f, "tabStops", "tab stop mismatch")
			return
		}
	}
}

// checkIdempotence re-runs the transform on its own output; the text
// must not change again.
func (r *Runner) checkIdempotence(ctx context.Context, f *types.Fixture, first *types.TransformResult) {
	if !first.Success {
		return
	}
	second, err := r.transformer.Transform(ctx, first.Text, &types.Options{}, r.cfg.Mode)
	if err != nil {
		r.fail(f, "idempotence", err.Error())
		return
	}
	if second.Text != first.Text {
		r.fail(f, "idempotence", "re-running the transform changed the text")
	}
}

// checkCrossMode runs the other mode on the first result; a balanced
// result must survive the other mode untouched.
func (r *Runner) checkCrossMode(ctx context.Context, f *types.Fixture, first *types.TransformResult) {
	if !first.Success {
		return
	}
	other, err := r.transformer.Transform(ctx, first.Text, &types.Options{}, r.cfg.Mode.Other())
	if err != nil {
		r.fail(f, "cross-mode", err.Error())
		return
	}
	if other.Text != first.Text {
		r.fail(f, "cross-mode", "the other mode changed the transformed text")
	}
}

func (r *Runner) fail(f *types.Fixture, check, reason string) {
	r.Failures++
	r.log.Error("fixture check failed", "fileLineNo", f.In.FileLineNo, "check", check, "reason", reason)
}
