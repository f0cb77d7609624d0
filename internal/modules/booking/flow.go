package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

type State string

const (
	StateBrowsing         State = "browsing"
	StateDatesSelected    State = "dates_selected"
	StateIntentBuilt      State = "intent_built"
	StateValidationFailed State = "validation_failed"
)

// Flow tracks one room detail session from date selection to a built intent.
// A failed submit keeps the error until the next selection change; retries
// are unlimited. Once an intent is built the flow accepts no further input.
type Flow struct {
	room     domain.Room
	checkIn  *time.Time
	checkOut *time.Time
	adults   int
	children int

	state  State
	err    error
	intent *Intent
}

func NewFlow(room domain.Room) *Flow {
	return &Flow{room: room, adults: 1, state: StateBrowsing}
}

func (f *Flow) State() State    { return f.state }
func (f *Flow) Err() error      { return f.err }
func (f *Flow) Intent() *Intent { return f.intent }

func (f *Flow) SetCheckIn(d *time.Time) error {
	if f.state == StateIntentBuilt {
		return ErrFlowClosed
	}
	f.checkIn = d
	f.reselect()
	return nil
}

func (f *Flow) SetCheckOut(d *time.Time) error {
	if f.state == StateIntentBuilt {
		return ErrFlowClosed
	}
	f.checkOut = d
	f.reselect()
	return nil
}

func (f *Flow) SetGuests(adults, children int) error {
	if f.state == StateIntentBuilt {
		return ErrFlowClosed
	}
	f.adults = adults
	f.children = children
	f.reselect()
	return nil
}

// Submit builds the intent from the current selection.
func (f *Flow) Submit() (*Intent, error) {
	if f.state == StateIntentBuilt {
		return f.intent, nil
	}

	intent, err := BuildIntent(f.room, f.checkIn, f.checkOut, f.adults, f.children)
	if err != nil {
		f.state = StateValidationFailed
		f.err = err
		return nil, err
	}

	f.state = StateIntentBuilt
	f.err = nil
	f.intent = intent
	return intent, nil
}

func (f *Flow) reselect() {
	f.err = nil
	if f.checkIn != nil && f.checkOut != nil {
		f.state = StateDatesSelected
		return
	}
	f.state = StateBrowsing
}
