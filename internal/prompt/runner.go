// Package prompt runs the submission wizard as a sequence of terminal
// questions instead of the full-screen UI. Answers go through the same store,
// so each one is saved as soon as it is given.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrea/submission-builder/internal/draft"
	"github.com/kingrea/submission-builder/internal/render"
	"github.com/kingrea/submission-builder/internal/store"
	"github.com/kingrea/submission-builder/internal/wizard"
)

// Runner asks every field of steps 1-4 and then prints the document.
type Runner struct {
	store       *store.Store
	driver      Driver
	copy        func(string) error
	destination string
	logger      *zap.Logger
}

// Option customizes a Runner.
type Option func(*Runner)

// WithClipboard enables the copy question at the end of the run.
func WithClipboard(fn func(string) error) Option {
	return func(r *Runner) {
		r.copy = fn
	}
}

// WithDestinationURL sets the consultation link printed with the document.
func WithDestinationURL(url string) Option {
	return func(r *Runner) {
		if url != "" {
			r.destination = url
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner builds a runner over s using driver for all terminal IO.
func NewRunner(s *store.Store, driver Driver, opts ...Option) *Runner {
	r := &Runner{
		store:  s,
		driver: driver,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run walks the steps in order. Current answers are offered as defaults.
// Aborting keeps everything answered so far.
func (r *Runner) Run(ctx context.Context) error {
	for _, info := range wizard.Steps() {
		if info.Preview() {
			return r.preview(ctx, info)
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("\nSTEP %d: %s", info.Step, info.Title)); err != nil {
			return err
		}
		for _, spec := range info.Fields {
			if err := r.ask(ctx, spec); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) ask(ctx context.Context, spec wizard.FieldSpec) error {
	current := r.store.Draft()
	switch spec.Kind {
	case wizard.KindLine:
		value, _ := current.Value(spec.Field)
		answer, err := r.driver.Input(ctx, TextConfig{Message: spec.Label, Default: value, Help: spec.Placeholder})
		if err != nil {
			return err
		}
		return r.apply(ctx, r.store.Update(spec.Field, answer))
	case wizard.KindText:
		value, _ := current.Value(spec.Field)
		answer, err := r.driver.TextArea(ctx, TextConfig{Message: spec.Label, Default: value, Help: spec.Placeholder})
		if err != nil {
			return err
		}
		return r.apply(ctx, r.store.Update(spec.Field, answer))
	case wizard.KindChoice:
		options := []draft.SubmissionType{draft.SubmissionPersonal, draft.SubmissionOrganisation}
		labels := make([]string, len(options))
		defaultIdx := 0
		for i, opt := range options {
			labels[i] = wizard.ChoiceLabel(opt)
			if opt == current.SubmissionType {
				defaultIdx = i
			}
		}
		idx, err := r.driver.Choose(ctx, ChoiceConfig{Message: spec.Label, Options: labels, Default: defaultIdx})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			return fmt.Errorf("prompt: submission type choice %d out of range", idx)
		}
		return r.apply(ctx, r.store.Update(spec.Field, string(options[idx])))
	case wizard.KindChecklist:
		catalog := draft.Concerns()
		var defaults []int
		for i, concern := range catalog {
			if current.HasConcern(concern) {
				defaults = append(defaults, i)
			}
		}
		picked, err := r.driver.Checklist(ctx, ChecklistConfig{Message: spec.Label, Options: catalog, Selected: defaults})
		if err != nil {
			return err
		}
		return r.applySelection(ctx, catalog, picked)
	default:
		return fmt.Errorf("prompt: unsupported field kind %d for %s", spec.Kind, spec.Field)
	}
}

// applySelection toggles concerns until the draft matches picked: dropped
// concerns are removed, new ones appended in catalog order.
func (r *Runner) applySelection(ctx context.Context, catalog []string, picked []int) error {
	wanted := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(catalog) {
			wanted[catalog[idx]] = true
		}
	}
	for _, concern := range r.store.Draft().PrinciplesConcerns {
		if !wanted[concern] {
			if err := r.apply(ctx, r.store.TogglePrincipleConcern(concern)); err != nil {
				return err
			}
		}
	}
	for _, concern := range catalog {
		if wanted[concern] && !r.store.Draft().HasConcern(concern) {
			if err := r.apply(ctx, r.store.TogglePrincipleConcern(concern)); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply turns a persist failure into a printed warning; the run carries on
// with the answer held in memory.
func (r *Runner) apply(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrPersistFailed) {
		return r.driver.Info(ctx, fmt.Sprintf("⚠ answer kept but not saved: %v", err))
	}
	return err
}

func (r *Runner) preview(ctx context.Context, info wizard.StepInfo) error {
	doc := render.Document(r.store.Draft())
	if err := r.driver.Info(ctx, fmt.Sprintf("\n%s\n\n%s\n", info.Title, doc)); err != nil {
		return err
	}
	if r.destination != "" {
		if err := r.driver.Info(ctx, fmt.Sprintf("Copy this text and submit through the official consultation form: %s", r.destination)); err != nil {
			return err
		}
	}
	if r.copy == nil {
		return nil
	}
	ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Copy the submission to the clipboard?", Default: true})
	if err != nil || !ok {
		return err
	}
	if err := r.copy(doc); err != nil {
		r.logger.Warn("clipboard write failed", zap.Error(err))
		return r.driver.Info(ctx, fmt.Sprintf("⚠ could not copy to clipboard: %v", err))
	}
	r.logger.Info("submission copied to clipboard", zap.Int("bytes", len(doc)))
	return r.driver.Info(ctx, "Copied to clipboard.")
}
