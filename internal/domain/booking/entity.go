package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrNoAssignments     = errors.New("reservation needs at least one plot assignment")
)

// Reservation is the aggregate root of the booking engine. It exclusively
// owns its plot assignments, and its total price is always the output of a
// PriceCalculator run, never caller-supplied.
type Reservation struct {
	id           uuid.UUID
	customerName string
	phone        Phone
	stay         StayRange
	totalPrice   Money
	assignments  []PlotAssignment
	createdAt    time.Time
	updatedAt    time.Time
}

func newReservation(
	id uuid.UUID,
	customerName string,
	phone Phone,
	stay StayRange,
	totalPrice Money,
	assignments []PlotAssignment,
) *Reservation {
	owned := make([]PlotAssignment, len(assignments))
	for i, a := range assignments {
		a.reservationID = id
		owned[i] = a
	}

	return &Reservation{
		id:           id,
		customerName: customerName,
		phone:        phone,
		stay:         stay,
		totalPrice:   totalPrice,
		assignments:  owned,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	customerName string,
	phone Phone,
	stay StayRange,
	totalPrice Money,
	assignments []PlotAssignment,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		customerName: customerName,
		phone:        phone,
		stay:         stay,
		totalPrice:   totalPrice,
		assignments:  assignments,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// PlotIDs returns the distinct plots this reservation occupies, in
// assignment order.
func (r *Reservation) PlotIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.assignments))
	for i, a := range r.assignments {
		ids[i] = a.PlotID()
	}
	return ids
}

func (r *Reservation) AssignmentFor(plotID uuid.UUID) (PlotAssignment, bool) {
	for _, a := range r.assignments {
		if a.PlotID() == plotID {
			return a, true
		}
	}
	return PlotAssignment{}, false
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) CustomerName() string          { return r.customerName }
func (r *Reservation) Phone() Phone                  { return r.phone }
func (r *Reservation) Stay() StayRange               { return r.stay }
func (r *Reservation) TotalPrice() Money             { return r.totalPrice }
func (r *Reservation) Assignments() []PlotAssignment { return r.assignments }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
