// Package transform provides implementations of the external engine
// boundary: a subprocess adapter for a real engine binary and a null
// transformer for dry runs.
package transform

import (
	"fmt"

	"parintest/types"
)

// New constructs a transformer by type name.
func New(typ types.TransformerType, cfg *types.TransformerConfig) (types.Transformer, error) {
	switch typ {
	case types.TransformerSubprocess:
		return NewSubprocess(cfg)
	case types.TransformerNull:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unknown transformer type: %s", typ)
	}
}
