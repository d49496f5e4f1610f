package booking

import (
	"errors"

	"campsite-booking/internal/domain/plot"

	"github.com/google/uuid"
)

// ErrUnknownPlot means an assignment references a plot the lookup cannot
// resolve. The engine treats this as a data-integrity fault.
var ErrUnknownPlot = errors.New("assignment references unknown plot")

// PlotLookup resolves a plot id to its catalog record.
type PlotLookup func(id uuid.UUID) (*plot.Plot, bool)

// PriceCalculator turns a stay and a set of assignments into a total price.
// Implementations must be pure: same inputs, same price, no I/O beyond the
// supplied lookup.
type PriceCalculator interface {
	ComputeTotal(stay StayRange, assignments []PlotAssignment, lookup PlotLookup) (Money, error)
}

// PerPersonPerNightCalculator charges each assignment its plot's per-person
// price for every occupant and every night of the stay.
type PerPersonPerNightCalculator struct{}

func NewPerPersonPerNightCalculator() *PerPersonPerNightCalculator {
	return &PerPersonPerNightCalculator{}
}

func (c *PerPersonPerNightCalculator) ComputeTotal(stay StayRange, assignments []PlotAssignment, lookup PlotLookup) (Money, error) {
	nights := int64(stay.Nights())

	var totalCents int64
	for _, a := range assignments {
		p, ok := lookup(a.PlotID())
		if !ok {
			return Money{}, ErrUnknownPlot
		}
		totalCents += p.PricePerPersonCents() * int64(a.OccupantCount()) * nights
	}

	return NewMoney(totalCents)
}
