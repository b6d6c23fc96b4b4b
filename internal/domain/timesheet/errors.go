package timesheet

import "errors"

// Timesheet domain errors
var (
	// Grid session errors
	ErrNoMonthLoaded   = errors.New("no month grid has been loaded yet")
	ErrEntryNotFound   = errors.New("no entry for that date in the loaded month")
	ErrDateNotEditable = errors.New("weekends and holidays are not editable")
	ErrUnknownField    = errors.New("unknown shift entry field")
	ErrStaleLoad       = errors.New("month changed while loading, result discarded")

	// Save errors
	ErrNothingToSave  = errors.New("no working shifts to save")
	ErrSaveInProgress = errors.New("a save is already in progress for this month")
)
