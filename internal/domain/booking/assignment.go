package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidOccupantCount = errors.New("occupant count must be at least 1")
)

// PlotAssignment states that a reservation occupies one plot with a number
// of occupants. It never outlives its owning reservation.
type PlotAssignment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	plotID        uuid.UUID
	occupantCount int
}

func NewPlotAssignment(plotID uuid.UUID, occupantCount int) (PlotAssignment, error) {
	if occupantCount < 1 {
		return PlotAssignment{}, ErrInvalidOccupantCount
	}

	return PlotAssignment{
		id:            uuid.New(),
		plotID:        plotID,
		occupantCount: occupantCount,
	}, nil
}

func ReconstructPlotAssignment(id, reservationID, plotID uuid.UUID, occupantCount int) PlotAssignment {
	return PlotAssignment{
		id:            id,
		reservationID: reservationID,
		plotID:        plotID,
		occupantCount: occupantCount,
	}
}

func (a PlotAssignment) ID() uuid.UUID            { return a.id }
func (a PlotAssignment) ReservationID() uuid.UUID { return a.reservationID }
func (a PlotAssignment) PlotID() uuid.UUID        { return a.plotID }
func (a PlotAssignment) OccupantCount() int       { return a.occupantCount }
