package transform

import (
	"context"
	"testing"

	"parintest/assert"
	"parintest/types"
)

func TestNewByType(t *testing.T) {
	tr, err := New(types.TransformerNull, nil)
	assert.NoError(t, err, "null transformer")
	assert.NotNil(t, tr, "null transformer")

	tr, err = New(types.TransformerSubprocess, &types.TransformerConfig{Command: []string{"cat"}})
	assert.NoError(t, err, "subprocess transformer")
	assert.NotNil(t, tr, "subprocess transformer")

	_, err = New(types.TransformerType("bogus"), nil)
	assert.Error(t, err, "unknown transformer type")
}

func TestNewSubprocessRequiresCommand(t *testing.T) {
	_, err := NewSubprocess(nil)
	assert.Error(t, err, "nil config")

	_, err = NewSubprocess(&types.TransformerConfig{})
	assert.Error(t, err, "empty command")
}

func TestNullEchoesText(t *testing.T) {
	x := 3
	result, err := NewNull().Transform(context.Background(), "(foo bar)", &types.Options{CursorX: &x}, types.ModeIndent)
	assert.NoError(t, err, "Transform")
	assert.Equal(t, "(foo bar)", result.Text, "text")
	assert.True(t, result.Success, "success")
	assert.NotNil(t, result.CursorX, "cursorX")
	assert.Equal(t, 3, *result.CursorX, "cursorX")
}

// The request and response both carry a "text" field, so piping the
// request through cat produces a decodable response that echoes the
// input text.
func TestSubprocessRoundTrip(t *testing.T) {
	s, err := NewSubprocess(&types.TransformerConfig{Command: []string{"cat"}, TimeoutMs: 5000})
	assert.NoError(t, err, "NewSubprocess")

	result, err := s.Transform(context.Background(), "(a b)", nil, types.ModeIndent)
	assert.NoError(t, err, "Transform")
	assert.Equal(t, "(a b)", result.Text, "text")
}

func TestSubprocessCommandFailure(t *testing.T) {
	s, err := NewSubprocess(&types.TransformerConfig{Command: []string{"false"}})
	assert.NoError(t, err, "NewSubprocess")

	_, err = s.Transform(context.Background(), "x", nil, types.ModeParen)
	assert.Error(t, err, "Transform should surface the exit status")
}

func TestSubprocessBadResponse(t *testing.T) {
	s, err := NewSubprocess(&types.TransformerConfig{Command: []string{"echo", "not json"}})
	assert.NoError(t, err, "NewSubprocess")

	_, err = s.Transform(context.Background(), "x", nil, types.ModeIndent)
	assert.Error(t, err, "Transform should reject a non-JSON response")
}
