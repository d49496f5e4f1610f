package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Plot catalog errors
	ErrPlotNotFound      = errors.New("plot not found")
	ErrDuplicatePlotName = errors.New("plot name already exists")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrBookingConflict     = errors.New("booking conflict")
	ErrAssignmentNotFound  = errors.New("plot assignment not found")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// Operation errors
	ErrPersistence = errors.New("persistence failure")
)
