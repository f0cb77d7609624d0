package booking

import (
	"testing"

	"hotelbooking/internal/modules/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_HappyPath(t *testing.T) {
	f := NewFlow(deluxe)
	assert.Equal(t, StateBrowsing, f.State())

	require.NoError(t, f.SetCheckOut(day(t, "2023-09-07")))
	assert.Equal(t, StateBrowsing, f.State())

	require.NoError(t, f.SetCheckIn(day(t, "2023-09-05")))
	assert.Equal(t, StateDatesSelected, f.State())

	intent, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateIntentBuilt, f.State())
	assert.Equal(t, 6998, intent.TotalPrice)
	assert.Same(t, intent, f.Intent())
}

func TestFlow_ValidationFailedThenRetry(t *testing.T) {
	f := NewFlow(deluxe)

	_, err := f.Submit()
	assert.ErrorIs(t, err, ErrMissingDates)
	assert.Equal(t, StateValidationFailed, f.State())
	assert.ErrorIs(t, f.Err(), ErrMissingDates)

	require.NoError(t, f.SetCheckIn(day(t, "2023-09-07")))
	assert.Equal(t, StateBrowsing, f.State())
	assert.NoError(t, f.Err())

	require.NoError(t, f.SetCheckOut(day(t, "2023-09-05")))
	_, err = f.Submit()
	assert.ErrorIs(t, err, pricing.ErrInvalidDateRange)
	assert.Equal(t, StateValidationFailed, f.State())

	require.NoError(t, f.SetCheckOut(day(t, "2023-09-09")))
	assert.Equal(t, StateDatesSelected, f.State())

	intent, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, intent.TotalNights)
}

func TestFlow_GuestsChangeKeepsDates(t *testing.T) {
	f := NewFlow(deluxe)
	require.NoError(t, f.SetCheckIn(day(t, "2023-09-05")))
	require.NoError(t, f.SetCheckOut(day(t, "2023-09-07")))

	require.NoError(t, f.SetGuests(0, 0))
	_, err := f.Submit()
	assert.ErrorIs(t, err, ErrInvalidOccupancy)

	require.NoError(t, f.SetGuests(2, 1))
	assert.Equal(t, StateDatesSelected, f.State())
	intent, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, intent.Adults)
	assert.Equal(t, 1, intent.Children)
}

func TestFlow_ClosedAfterIntent(t *testing.T) {
	f := NewFlow(deluxe)
	require.NoError(t, f.SetCheckIn(day(t, "2023-09-05")))
	require.NoError(t, f.SetCheckOut(day(t, "2023-09-07")))
	first, err := f.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, f.SetCheckIn(nil), ErrFlowClosed)
	assert.ErrorIs(t, f.SetCheckOut(nil), ErrFlowClosed)
	assert.ErrorIs(t, f.SetGuests(3, 0), ErrFlowClosed)

	again, err := f.Submit()
	require.NoError(t, err)
	assert.Same(t, first, again)
}
