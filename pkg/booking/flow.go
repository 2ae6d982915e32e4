package booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// State is a step in the booking draft lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateEditing
	StateValidated
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateEditing:
		return "editing"
	case StateValidated:
		return "validated"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when an operation is not allowed in the
// flow's current state.
var ErrInvalidTransition = errors.New("booking: invalid transition")

// ErrStyleMismatch is returned by EditAs when the draft has another type.
var ErrStyleMismatch = errors.New("booking: draft style mismatch")

// Flow tracks one booking draft from creation to submission. A Flow is owned
// by a single screen and is not safe for concurrent use.
type Flow struct {
	id    uuid.UUID
	state State
	draft Style
}

// NewFlow returns an uninitialized flow with a fresh id.
func NewFlow() *Flow {
	return &Flow{id: uuid.New()}
}

// ID identifies the draft in logs.
func (f *Flow) ID() uuid.UUID { return f.id }

// State returns the current lifecycle state.
func (f *Flow) State() State { return f.state }

// Draft returns a copy of the current draft, or nil before Start.
func (f *Flow) Draft() Style {
	if f.draft == nil {
		return nil
	}
	return f.draft.Clone()
}

// Start takes a private copy of style and enters Editing.
func (f *Flow) Start(style Style) error {
	if f.state != StateUninitialized {
		return f.transitionErr("start")
	}
	if style == nil {
		return errors.New("booking: style is required")
	}
	f.draft = style.Clone()
	f.state = StateEditing
	return nil
}

// Edit mutates the draft. Editing a validated draft returns it to Editing.
func (f *Flow) Edit(fn func(Style)) error {
	if f.state != StateEditing && f.state != StateValidated {
		return f.transitionErr("edit")
	}
	if fn != nil {
		fn(f.draft)
	}
	f.state = StateEditing
	return nil
}

// EditAs mutates the draft when it is a T.
func EditAs[T Style](f *Flow, fn func(T)) error {
	if f.state != StateEditing && f.state != StateValidated {
		return f.transitionErr("edit")
	}
	draft, ok := f.draft.(T)
	if !ok {
		return fmt.Errorf("%w: have %s", ErrStyleMismatch, f.draft.Kind())
	}
	if fn != nil {
		fn(draft)
	}
	f.state = StateEditing
	return nil
}

// Validate checks the draft. On failure the flow stays in Editing and the
// validation.Code is returned.
func (f *Flow) Validate() error {
	if f.state != StateEditing && f.state != StateValidated {
		return f.transitionErr("validate")
	}
	if err := f.draft.Validate(); err != nil {
		f.state = StateEditing
		return err
	}
	f.state = StateValidated
	return nil
}

// Submit returns the submission payload of a validated draft and ends the
// flow.
func (f *Flow) Submit() (map[string]any, error) {
	if f.state != StateValidated {
		return nil, f.transitionErr("submit")
	}
	f.state = StateSubmitted
	return f.draft.Params(), nil
}

func (f *Flow) transitionErr(op string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, f.state)
}
