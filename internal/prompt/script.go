package prompt

import (
	"context"
	"fmt"
)

// ScriptDriver replays pre-recorded answers in order. It backs tests
// that exercise interactive flows without a terminal.
type ScriptDriver struct {
	Inputs   []string
	Selects  []int
	Confirms []bool

	// Asked records the messages of prompts in the order they ran.
	Asked []string

	inputIdx   int
	selectIdx  int
	confirmIdx int
}

func (d *ScriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.Asked = append(d.Asked, cfg.Message)
	if d.inputIdx >= len(d.Inputs) {
		return "", fmt.Errorf("no scripted answer for input %q", cfg.Message)
	}
	answer := d.Inputs[d.inputIdx]
	d.inputIdx++

	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *ScriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	d.Asked = append(d.Asked, cfg.Message)
	if d.selectIdx >= len(d.Selects) {
		return 0, fmt.Errorf("no scripted answer for select %q", cfg.Message)
	}
	answer := d.Selects[d.selectIdx]
	d.selectIdx++

	if answer < 0 || answer >= len(cfg.Options) {
		return 0, fmt.Errorf("scripted select index %d out of range for %q", answer, cfg.Message)
	}
	return answer, nil
}

func (d *ScriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	d.Asked = append(d.Asked, cfg.Message)
	if d.confirmIdx >= len(d.Confirms) {
		return false, fmt.Errorf("no scripted answer for confirm %q", cfg.Message)
	}
	answer := d.Confirms[d.confirmIdx]
	d.confirmIdx++
	return answer, nil
}
