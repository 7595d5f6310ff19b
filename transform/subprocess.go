package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"parintest/types"
)

// engineRequest is the JSON written to the engine process on stdin.
type engineRequest struct {
	Text    string         `json:"text"`
	Options *types.Options `json:"options"`
	Mode    types.Mode     `json:"mode"`
}

// Subprocess runs an external engine binary once per transform call,
// writing an engineRequest to its stdin and decoding a TransformResult
// from its stdout.
type Subprocess struct {
	command []string
	timeout time.Duration
}

func NewSubprocess(cfg *types.TransformerConfig) (*Subprocess, error) {
	if cfg == nil || len(cfg.Command) == 0 {
		return nil, fmt.Errorf("subprocess transformer requires an engine command")
	}
	return &Subprocess{
		command: cfg.Command,
		timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
	}, nil
}

// Transform implements types.Transformer.
func (s *Subprocess) Transform(ctx context.Context, text string, opts *types.Options, mode types.Mode) (*types.TransformResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(&engineRequest{Text: text, Options: opts, Mode: mode})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal engine request: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("engine command failed: %w (stderr: %s)", err, stderr.String())
	}

	var result types.TransformResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode engine response: %w", err)
	}
	return &result, nil
}
