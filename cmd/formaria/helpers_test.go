package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

func executeCommand(t *testing.T, driver PromptDriver, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmdWithDriver(driver)
	root.SetArgs(append([]string{"--no-color"}, args...))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// scriptedDriver answers prompts from fixed queues in call order.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	err      error
	messages []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	if len(d.inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", cfg.Message)
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	return value, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", cfg.Message)
	}
	value := d.confirms[0]
	d.confirms = d.confirms[1:]
	return value, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.selects) == 0 {
		return 0, fmt.Errorf("unexpected select prompt %q", cfg.Message)
	}
	value := d.selects[0]
	d.selects = d.selects[1:]
	return value, nil
}
