// internal/wizard/wizard.go
//
// Step navigation for the submission wizard. The wizard is a five-state
// machine with no terminal state: the user may jump to any step at any time
// and no step is gated on the answers given so far.

package wizard

import (
	"errors"
	"fmt"
)

// Step is a wizard page number in [FirstStep, LastStep].
type Step int

const (
	FirstStep Step = 1
	LastStep  Step = 5
)

// ErrStepOutOfRange is returned by GoTo for steps outside [FirstStep, LastStep].
var ErrStepOutOfRange = errors.New("wizard: step out of range")

// Valid reports whether s names a rendered step.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Navigator tracks the current step. It is volatile: a fresh Navigator
// always starts on step 1.
type Navigator struct {
	current Step
}

// NewNavigator returns a navigator positioned on the first step.
func NewNavigator() *Navigator {
	return &Navigator{current: FirstStep}
}

// Current returns the active step.
func (n *Navigator) Current() Step {
	return n.current
}

// GoTo jumps directly to step. Out-of-range steps leave the position alone.
func (n *Navigator) GoTo(step Step) error {
	if !step.Valid() {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	n.current = step
	return nil
}

// Next advances one step and reports whether the position changed.
func (n *Navigator) Next() bool {
	if n.current >= LastStep {
		return false
	}
	n.current++
	return true
}

// Back moves one step toward the start and reports whether the position changed.
func (n *Navigator) Back() bool {
	if n.current <= FirstStep {
		return false
	}
	n.current--
	return true
}

// IsLast reports whether the preview step is active.
func (n *Navigator) IsLast() bool {
	return n.current == LastStep
}
