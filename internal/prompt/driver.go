package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// TextConfig configures a free-text question. Help is shown on '?'.
type TextConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
}

// ChoiceConfig configures a pick-one question. Default indexes Options.
type ChoiceConfig struct {
	Message string
	Options []string
	Default int
}

// ChecklistConfig configures a pick-any question. Selected indexes Options
// and marks the boxes that start ticked.
type ChecklistConfig struct {
	Message  string
	Options  []string
	Selected []int
}

// Driver abstracts the terminal so the runner can be tested with scripted
// answers.
type Driver interface {
	Input(ctx context.Context, cfg TextConfig) (string, error)
	TextArea(ctx context.Context, cfg TextConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Choose(ctx context.Context, cfg ChoiceConfig) (int, error)
	Checklist(ctx context.Context, cfg ChecklistConfig) ([]int, error)
	Info(ctx context.Context, msg string) error
}

// SurveyDriver asks questions with survey/v2 on the process terminal and
// prints Info messages to out.
type SurveyDriver struct {
	out io.Writer
}

func NewSurveyDriver(out io.Writer) *SurveyDriver {
	return &SurveyDriver{out: out}
}

func (d *SurveyDriver) Input(ctx context.Context, cfg TextConfig) (string, error) {
	var answer string
	err := ask(ctx, &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, &answer)
	return answer, err
}

// TextArea opens the multi-line editor; an empty line ends the answer.
func (d *SurveyDriver) TextArea(ctx context.Context, cfg TextConfig) (string, error) {
	var answer string
	err := ask(ctx, &survey.Multiline{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, &answer)
	return answer, err
}

func (d *SurveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var answer bool
	err := ask(ctx, &survey.Confirm{Message: cfg.Message, Default: cfg.Default}, &answer)
	return answer, err
}

func (d *SurveyDriver) Choose(ctx context.Context, cfg ChoiceConfig) (int, error) {
	q := &survey.Select{Message: cfg.Message, Options: cfg.Options}
	if cfg.Default >= 0 && cfg.Default < len(cfg.Options) {
		q.Default = cfg.Options[cfg.Default]
	}
	var answer string
	if err := ask(ctx, q, &answer); err != nil {
		return -1, err
	}
	idx := slices.Index(cfg.Options, answer)
	if idx < 0 {
		return -1, fmt.Errorf("prompt: answer %q is not an option", answer)
	}
	return idx, nil
}

// Checklist shows every option on one page and returns the ticked indices
// in option order.
func (d *SurveyDriver) Checklist(ctx context.Context, cfg ChecklistConfig) ([]int, error) {
	q := &survey.MultiSelect{
		Message:  cfg.Message,
		Options:  cfg.Options,
		PageSize: len(cfg.Options),
	}
	var ticked []string
	for _, idx := range cfg.Selected {
		if idx >= 0 && idx < len(cfg.Options) {
			ticked = append(ticked, cfg.Options[idx])
		}
	}
	if len(ticked) > 0 {
		q.Default = ticked
	}
	var answer []string
	if err := ask(ctx, q, &answer); err != nil {
		return nil, err
	}
	var out []int
	for i, option := range cfg.Options {
		if slices.Contains(answer, option) {
			out = append(out, i)
		}
	}
	return out, nil
}

func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// ask runs one survey question, mapping Ctrl+C to ErrAborted.
func ask(ctx context.Context, q survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(q, answer)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
