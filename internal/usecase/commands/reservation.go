package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/domain/plot"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKindSMS = "sms"

type AssignmentInput struct {
	PlotID        uuid.UUID
	OccupantCount int
}

type CreateReservationCommand struct {
	CustomerName  string
	CustomerPhone string
	CheckIn       time.Time
	CheckOut      time.Time
	Assignments   []AssignmentInput
}

type UpdateReservationCommand struct {
	CustomerName  string
	CustomerPhone string
	CheckIn       time.Time
	CheckOut      time.Time
	Assignments   []AssignmentInput
}

// BookingResult is the success payload of every engine write.
type BookingResult struct {
	ReservationID   uuid.UUID
	TotalPriceCents int64
}

// BookingCommands is the booking engine. Every operation validates, checks
// plot availability, reprices, and commits as one serializable unit; on any
// error the reservation is left exactly as it was.
type BookingCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*BookingResult, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, cmd UpdateReservationCommand) (*BookingResult, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) (int64, error)
	AddPlotAssignment(ctx context.Context, reservationID uuid.UUID, input AssignmentInput) (*BookingResult, error)
	RemovePlotAssignment(ctx context.Context, reservationID, plotID uuid.UUID) (*BookingResult, error)
	ResizePlotAssignment(ctx context.Context, reservationID, plotID uuid.UUID, occupantCount int) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
	timeout time.Duration
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock, cfg config.Config) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
		timeout: cfg.Booking.OperationTimeout,
	}
}

func (b *bookingCommandsImpl) CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*BookingResult, error) {
	phone, stay, specs, err := parseBookingInput(cmd.CustomerPhone, cmd.CheckIn, cmd.CheckOut, cmd.Assignments)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var result *BookingResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plots, err := loadPlots(ctx, tx, plotIDsOf(specs))
		if err != nil {
			return err
		}

		res, err := b.factory.NewReservation(cmd.CustomerName, phone, stay, specs, plots)
		if err != nil {
			return markFactoryError(err)
		}

		if err := checkOverlap(ctx, tx, stay, res.PlotIDs(), uuid.Nil); err != nil {
			return err
		}

		if err := tx.Reservations().Insert(ctx, res); err != nil {
			return err
		}
		for _, a := range res.Assignments() {
			if err := tx.Assignments().Insert(ctx, a); err != nil {
				return err
			}
		}

		if err := b.enqueueNotification(ctx, tx, "reservation_confirmed", res); err != nil {
			return err
		}

		result = &BookingResult{ReservationID: res.ID(), TotalPriceCents: res.TotalPrice().Cents()}
		return nil
	})
	if err != nil {
		return nil, classifyTxError(err)
	}
	return result, nil
}

func (b *bookingCommandsImpl) UpdateReservation(ctx context.Context, id uuid.UUID, cmd UpdateReservationCommand) (*BookingResult, error) {
	phone, stay, specs, err := parseBookingInput(cmd.CustomerPhone, cmd.CheckIn, cmd.CheckOut, cmd.Assignments)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var result *BookingResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := findReservation(ctx, tx, id); err != nil {
			return err
		}
		result, err = b.applyReservationChange(ctx, tx, id, cmd.CustomerName, phone, stay, specs)
		return err
	})
	if err != nil {
		return nil, classifyTxError(err)
	}
	return result, nil
}

func (b *bookingCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var rows int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Deleting a missing reservation is "0 rows affected", not an error.
				rows = 0
				return nil
			}
			return err
		}

		// The FK cascade removes the assignments with the reservation row,
		// so a crash can never leave them orphaned.
		rows, err = tx.Reservations().Delete(ctx, id)
		if err != nil {
			return err
		}

		if rows > 0 {
			payload, err := json.Marshal(map[string]any{
				"reservation_id": snap.ID,
				"customer_phone": snap.CustomerPhone,
			})
			if err != nil {
				return errs.Wrap(err, "failed to encode notification payload")
			}
			if err := tx.Notifications().CreateJob(ctx, notificationKindSMS, "reservation_canceled", payload, b.clock.Now()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, classifyTxError(err)
	}
	return rows, nil
}

func (b *bookingCommandsImpl) AddPlotAssignment(ctx context.Context, reservationID uuid.UUID, input AssignmentInput) (*BookingResult, error) {
	return b.editAssignments(ctx, reservationID, func(current []AssignmentInput) ([]AssignmentInput, error) {
		for _, a := range current {
			if a.PlotID == input.PlotID {
				return nil, errs.Mark(booking.ErrDuplicatePlot, errs.ErrValidation)
			}
		}
		return append(current, input), nil
	})
}

func (b *bookingCommandsImpl) RemovePlotAssignment(ctx context.Context, reservationID, plotID uuid.UUID) (*BookingResult, error) {
	return b.editAssignments(ctx, reservationID, func(current []AssignmentInput) ([]AssignmentInput, error) {
		next := make([]AssignmentInput, 0, len(current))
		found := false
		for _, a := range current {
			if a.PlotID == plotID {
				found = true
				continue
			}
			next = append(next, a)
		}
		if !found {
			return nil, errs.ErrAssignmentNotFound
		}
		return next, nil
	})
}

func (b *bookingCommandsImpl) ResizePlotAssignment(ctx context.Context, reservationID, plotID uuid.UUID, occupantCount int) (*BookingResult, error) {
	return b.editAssignments(ctx, reservationID, func(current []AssignmentInput) ([]AssignmentInput, error) {
		next := make([]AssignmentInput, len(current))
		found := false
		for i, a := range current {
			if a.PlotID == plotID {
				a.OccupantCount = occupantCount
				found = true
			}
			next[i] = a
		}
		if !found {
			return nil, errs.ErrAssignmentNotFound
		}
		return next, nil
	})
}

// editAssignments routes the single-assignment convenience operations
// through the same validate-then-commit path as a full update, so the
// persisted assignment set and the recomputed price can never diverge.
func (b *bookingCommandsImpl) editAssignments(
	ctx context.Context,
	reservationID uuid.UUID,
	mutate func(current []AssignmentInput) ([]AssignmentInput, error),
) (*BookingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var result *BookingResult
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := findReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		current, err := tx.Assignments().ListForReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		inputs := make([]AssignmentInput, len(current))
		for i, a := range current {
			inputs[i] = AssignmentInput{PlotID: a.PlotID, OccupantCount: a.OccupantCount}
		}

		next, err := mutate(inputs)
		if err != nil {
			return err
		}

		phone, stay, specs, err := parseBookingInput(snap.CustomerPhone, snap.CheckIn, snap.CheckOut, next)
		if err != nil {
			return err
		}

		result, err = b.applyReservationChange(ctx, tx, reservationID, snap.CustomerName, phone, stay, specs)
		return err
	})
	if err != nil {
		return nil, classifyTxError(err)
	}
	return result, nil
}

// applyReservationChange is the shared core of every reservation edit:
// rebuild the aggregate from the desired state, re-run overlap validation
// excluding the reservation itself, then persist the assignment diff and
// the repriced reservation row.
func (b *bookingCommandsImpl) applyReservationChange(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	customerName string,
	phone booking.Phone,
	stay booking.StayRange,
	specs []booking.AssignmentSpec,
) (*BookingResult, error) {
	plots, err := loadPlots(ctx, tx, plotIDsOf(specs))
	if err != nil {
		return nil, err
	}

	res, err := b.factory.RebuildReservation(id, customerName, phone, stay, specs, plots)
	if err != nil {
		return nil, markFactoryError(err)
	}

	if err := checkOverlap(ctx, tx, stay, res.PlotIDs(), id); err != nil {
		return nil, err
	}

	current, err := tx.Assignments().ListForReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.applyAssignmentDiff(ctx, tx, res, current); err != nil {
		return nil, err
	}

	if _, err := tx.Reservations().Update(ctx, res); err != nil {
		return nil, err
	}

	if err := b.enqueueNotification(ctx, tx, "reservation_updated", res); err != nil {
		return nil, err
	}

	return &BookingResult{ReservationID: res.ID(), TotalPriceCents: res.TotalPrice().Cents()}, nil
}

// applyAssignmentDiff reconciles the stored assignment rows with the
// rebuilt aggregate: delete removed plots, resize changed ones, insert
// additions.
func (b *bookingCommandsImpl) applyAssignmentDiff(
	ctx context.Context,
	tx shared.Tx,
	res *booking.Reservation,
	current []shared.AssignmentSnapshot,
) error {
	existing := make(map[uuid.UUID]shared.AssignmentSnapshot, len(current))
	for _, a := range current {
		existing[a.PlotID] = a
	}

	for _, a := range res.Assignments() {
		prev, ok := existing[a.PlotID()]
		if !ok {
			if err := tx.Assignments().Insert(ctx, a); err != nil {
				return err
			}
			continue
		}
		delete(existing, a.PlotID())
		if prev.OccupantCount != a.OccupantCount() {
			if _, err := tx.Assignments().UpdateOccupants(ctx, res.ID(), a.PlotID(), a.OccupantCount()); err != nil {
				return err
			}
		}
	}

	for plotID := range existing {
		if _, err := tx.Assignments().Delete(ctx, res.ID(), plotID); err != nil {
			return err
		}
	}
	return nil
}

func (b *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, res *booking.Reservation) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id":    res.ID(),
		"customer_phone":    res.Phone().String(),
		"check_in":          res.Stay().CheckIn().Format("2006-01-02"),
		"check_out":         res.Stay().CheckOut().Format("2006-01-02"),
		"total_price_cents": res.TotalPrice().Cents(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, notificationKindSMS, topic, payload, b.clock.Now())
}

func parseBookingInput(phoneStr string, checkIn, checkOut time.Time, inputs []AssignmentInput) (booking.Phone, booking.StayRange, []booking.AssignmentSpec, error) {
	phone, err := booking.NewPhone(phoneStr)
	if err != nil {
		return booking.Phone{}, booking.StayRange{}, nil, errs.Mark(err, errs.ErrValidation)
	}
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return booking.Phone{}, booking.StayRange{}, nil, errs.Mark(err, errs.ErrValidation)
	}
	specs := make([]booking.AssignmentSpec, len(inputs))
	for i, in := range inputs {
		specs[i] = booking.AssignmentSpec{PlotID: in.PlotID, OccupantCount: in.OccupantCount}
	}
	return phone, stay, specs, nil
}

func plotIDsOf(specs []booking.AssignmentSpec) []uuid.UUID {
	ids := make([]uuid.UUID, len(specs))
	for i, s := range specs {
		ids[i] = s.PlotID
	}
	return ids
}

// loadPlots resolves every referenced plot id through the catalog inside
// the current transaction. Any unresolved id is a data-integrity fault.
func loadPlots(ctx context.Context, tx shared.Tx, ids []uuid.UUID) (map[uuid.UUID]*plot.Plot, error) {
	snaps, err := tx.Plots().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	plots := make(map[uuid.UUID]*plot.Plot, len(snaps))
	for _, s := range snaps {
		plots[s.ID] = plot.ReconstructPlot(s.ID, s.Name, s.Capacity, s.PricePerPersonCents, s.Description, time.Time{}, time.Time{})
	}
	for _, id := range ids {
		if _, ok := plots[id]; !ok {
			return nil, errs.Mark(errs.New("plot "+id.String()+" does not exist"), errs.ErrPlotNotFound)
		}
	}
	return plots, nil
}

func findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return snap, nil
}

// markFactoryError maps domain construction failures onto the engine's
// error taxonomy: an unresolvable plot is a data-integrity fault, anything
// else is caller input.
func markFactoryError(err error) error {
	if errors.Is(err, booking.ErrUnknownPlot) {
		return errs.Mark(err, errs.ErrPlotNotFound)
	}
	return errs.Mark(err, errs.ErrValidation)
}

// classifyTxError keeps domain errors intact and folds everything else
// (tx begin/commit failures, retry exhaustion, raw repository errors) into
// the retryable persistence category.
func classifyTxError(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		errs.ErrValidation,
		errs.ErrBookingConflict,
		errs.ErrPlotNotFound,
		errs.ErrReservationNotFound,
		errs.ErrAssignmentNotFound,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrPersistence)
}
