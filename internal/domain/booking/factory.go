package booking

import (
	"errors"
	"strings"

	"campsite-booking/internal/domain/plot"

	"github.com/google/uuid"
)

var (
	ErrDuplicatePlot     = errors.New("reservation references the same plot twice")
	ErrOccupancyOverflow = errors.New("occupant count exceeds plot capacity")
)

// AssignmentSpec is the caller's requested occupancy of one plot.
type AssignmentSpec struct {
	PlotID        uuid.UUID
	OccupantCount int
}

// Factory assembles a fully validated, priced Reservation. Every code path
// that produces a persistable reservation goes through here, which is what
// keeps totalPrice consistent with dates and assignments.
type Factory struct {
	calculator PriceCalculator
}

func NewFactory(calculator PriceCalculator) *Factory {
	return &Factory{calculator: calculator}
}

// NewReservation validates customer data, the stay range, and every
// assignment against its plot, then prices the whole set. plots must hold
// the catalog record of every referenced plot id.
func (f *Factory) NewReservation(
	customerName string,
	phone Phone,
	stay StayRange,
	specs []AssignmentSpec,
	plots map[uuid.UUID]*plot.Plot,
) (*Reservation, error) {
	return f.build(uuid.New(), customerName, phone, stay, specs, plots)
}

// RebuildReservation revalidates and reprices an existing reservation under
// new dates or a new assignment set, keeping its identity.
func (f *Factory) RebuildReservation(
	id uuid.UUID,
	customerName string,
	phone Phone,
	stay StayRange,
	specs []AssignmentSpec,
	plots map[uuid.UUID]*plot.Plot,
) (*Reservation, error) {
	return f.build(id, customerName, phone, stay, specs, plots)
}

func (f *Factory) build(
	id uuid.UUID,
	customerName string,
	phone Phone,
	stay StayRange,
	specs []AssignmentSpec,
	plots map[uuid.UUID]*plot.Plot,
) (*Reservation, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if len(specs) == 0 {
		return nil, ErrNoAssignments
	}

	seen := make(map[uuid.UUID]struct{}, len(specs))
	assignments := make([]PlotAssignment, 0, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.PlotID]; dup {
			return nil, ErrDuplicatePlot
		}
		seen[spec.PlotID] = struct{}{}

		p, ok := plots[spec.PlotID]
		if !ok {
			return nil, ErrUnknownPlot
		}
		if !p.CanAccommodate(spec.OccupantCount) {
			if spec.OccupantCount < 1 {
				return nil, ErrInvalidOccupantCount
			}
			return nil, ErrOccupancyOverflow
		}

		a, err := NewPlotAssignment(spec.PlotID, spec.OccupantCount)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	total, err := f.calculator.ComputeTotal(stay, assignments, func(plotID uuid.UUID) (*plot.Plot, bool) {
		p, ok := plots[plotID]
		return p, ok
	})
	if err != nil {
		return nil, err
	}

	return newReservation(id, customerName, phone, stay, total, assignments), nil
}
