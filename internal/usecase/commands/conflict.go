package commands

import (
	"context"
	"fmt"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConflictError carries the reservations and plots that collide with a
// candidate stay so callers can offer alternatives.
type ConflictError struct {
	ReservationIDs []uuid.UUID
	PlotIDs        []uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict with %d reservation(s) on %d plot(s)", len(e.ReservationIDs), len(e.PlotIDs))
}

// checkOverlap fetches every assignment competing for the candidate plots
// and tests half-open date overlap against the owning reservations.
// excludeReservationID keeps an edited reservation from conflicting with
// its own prior assignments; pass uuid.Nil on create.
//
// Must run inside the same serializable transaction as the subsequent
// write. Check-then-act across transactions is the classic double-booking
// race.
func checkOverlap(
	ctx context.Context,
	tx shared.Tx,
	stay booking.StayRange,
	plotIDs []uuid.UUID,
	excludeReservationID uuid.UUID,
) error {
	competing, err := tx.Assignments().ListForPlots(ctx, plotIDs, excludeReservationID)
	if err != nil {
		return err
	}

	var (
		reservationIDs []uuid.UUID
		conflictPlots  []uuid.UUID
		seenRes        = map[uuid.UUID]struct{}{}
		seenPlot       = map[uuid.UUID]struct{}{}
	)
	for _, c := range competing {
		existing, err := booking.NewStayRange(c.CheckIn, c.CheckOut)
		if err != nil {
			return errs.Wrap(err, "stored reservation has invalid date range")
		}
		if !stay.Overlaps(existing) {
			continue
		}
		if _, ok := seenRes[c.ReservationID]; !ok {
			seenRes[c.ReservationID] = struct{}{}
			reservationIDs = append(reservationIDs, c.ReservationID)
		}
		if _, ok := seenPlot[c.PlotID]; !ok {
			seenPlot[c.PlotID] = struct{}{}
			conflictPlots = append(conflictPlots, c.PlotID)
		}
	}

	if len(reservationIDs) > 0 {
		return errs.Mark(&ConflictError{
			ReservationIDs: reservationIDs,
			PlotIDs:        conflictPlots,
		}, errs.ErrBookingConflict)
	}
	return nil
}
