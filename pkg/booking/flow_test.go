package booking

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-listing/pkg/validation"
)

func TestFlow_HappyPath(t *testing.T) {
	flow := NewFlow()
	assert.NotEqual(t, uuid.Nil, flow.ID())
	assert.Equal(t, StateUninitialized, flow.State())
	assert.Nil(t, flow.Draft())

	source := &StandardStyle{Base: Base{Adult: 1}}
	require.NoError(t, flow.Start(source))
	assert.Equal(t, StateEditing, flow.State())

	err := flow.Validate()
	assert.Equal(t, validation.CodePleaseSelectStartTime, err)
	assert.Equal(t, StateEditing, flow.State())

	require.NoError(t, EditAs(flow, func(s *StandardStyle) {
		s.SetStart(*day(t, "2024-05-01"), "08:00")
	}))
	require.NoError(t, flow.Validate())
	assert.Equal(t, StateValidated, flow.State())

	params, err := flow.Submit()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", params[ParamStartDate])
	assert.Equal(t, StateSubmitted, flow.State())

	assert.Empty(t, source.StartTime, "flow must edit its own copy")
}

func TestFlow_InvalidTransitions(t *testing.T) {
	flow := NewFlow()
	assert.ErrorIs(t, flow.Validate(), ErrInvalidTransition)
	assert.ErrorIs(t, flow.Edit(nil), ErrInvalidTransition)

	_, err := flow.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, flow.Start(&DailyStyle{Base: Base{Adult: 1}}))
	assert.ErrorIs(t, flow.Start(&DailyStyle{}), ErrInvalidTransition)

	_, err = flow.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFlow_EditAfterValidateReturnsToEditing(t *testing.T) {
	flow := NewFlow()
	style := &DailyStyle{Base: Base{Adult: 1}, StartDate: day(t, "2024-05-01"), EndDate: day(t, "2024-05-04")}
	require.NoError(t, flow.Start(style))
	require.NoError(t, flow.Validate())
	assert.Equal(t, StateValidated, flow.State())

	require.NoError(t, flow.Edit(func(s Style) {
		s.(*DailyStyle).EndDate = day(t, "2024-04-30")
	}))
	assert.Equal(t, StateEditing, flow.State())
	assert.ErrorIs(t, flow.Validate(), validation.CodeInvalidEndDate)
	assert.Equal(t, "2024-05-04", style.EndDate.Format(DateLayout))
}

func TestFlow_EditAsMismatch(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Start(&DailyStyle{}))

	err := EditAs(flow, func(*TableStyle) {})
	assert.True(t, errors.Is(err, ErrStyleMismatch))
}

func TestFlow_SubmittedIsTerminal(t *testing.T) {
	flow := NewFlow()
	style := &DailyStyle{Base: Base{Adult: 1}, StartDate: day(t, "2024-05-01"), EndDate: day(t, "2024-05-02")}
	require.NoError(t, flow.Start(style))
	require.NoError(t, flow.Validate())
	_, err := flow.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, flow.Edit(nil), ErrInvalidTransition)
	assert.ErrorIs(t, flow.Validate(), ErrInvalidTransition)
	assert.Equal(t, "submitted", flow.State().String())
}
