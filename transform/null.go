package transform

import (
	"context"

	"parintest/types"
)

// Null echoes input text back unchanged. It stands in for an engine when
// validating fixtures or exercising the comparison loop without one.
type Null struct{}

func NewNull() *Null { return &Null{} }

// Transform implements types.Transformer.
func (n *Null) Transform(_ context.Context, text string, opts *types.Options, _ types.Mode) (*types.TransformResult, error) {
	result := &types.TransformResult{Text: text, Success: true}
	if opts != nil {
		result.CursorX = opts.CursorX
	}
	return result, nil
}
