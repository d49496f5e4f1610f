//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory unit of work. Within clones the store before running the
// closure and restores the clone on error, mirroring transaction rollback.

type jobRecord struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type fakeStore struct {
	plots        map[uuid.UUID]shared.PlotSnapshot
	reservations map[uuid.UUID]shared.ReservationSnapshot
	assignments  []shared.AssignmentSnapshot
	jobs         []jobRecord

	failInsert error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		plots:        make(map[uuid.UUID]shared.PlotSnapshot),
		reservations: make(map[uuid.UUID]shared.ReservationSnapshot),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.plots {
		c.plots[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	c.assignments = append([]shared.AssignmentSnapshot(nil), s.assignments...)
	c.jobs = append([]jobRecord(nil), s.jobs...)
	c.failInsert = s.failInsert
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.plots = from.plots
	s.reservations = from.reservations
	s.assignments = from.assignments
	s.jobs = from.jobs
}

func (s *fakeStore) addPlot(capacity int, priceCents int64) uuid.UUID {
	id := uuid.New()
	s.plots[id] = shared.PlotSnapshot{
		ID:                  id,
		Name:                "Plot " + id.String()[:8],
		Capacity:            capacity,
		PricePerPersonCents: priceCents,
	}
	return id
}

// ReservationRepository

func (s *fakeStore) Insert(ctx context.Context, res *booking.Reservation) error {
	if s.failInsert != nil {
		return s.failInsert
	}
	s.reservations[res.ID()] = snapshotOf(res)
	return nil
}

func (s *fakeStore) Update(ctx context.Context, res *booking.Reservation) (int64, error) {
	if _, ok := s.reservations[res.ID()]; !ok {
		return 0, nil
	}
	s.reservations[res.ID()] = snapshotOf(res)
	return 1, nil
}

func (s *fakeStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := s.reservations[id]; !ok {
		return 0, nil
	}
	delete(s.reservations, id)

	// FK cascade
	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.ReservationID != id {
			kept = append(kept, a)
		}
	}
	s.assignments = kept
	return 1, nil
}

func (s *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, ok := s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func snapshotOf(res *booking.Reservation) shared.ReservationSnapshot {
	return shared.ReservationSnapshot{
		ID:              res.ID(),
		CustomerName:    res.CustomerName(),
		CustomerPhone:   res.Phone().String(),
		CheckIn:         res.Stay().CheckIn(),
		CheckOut:        res.Stay().CheckOut(),
		TotalPriceCents: res.TotalPrice().Cents(),
	}
}

// AssignmentRepository

type fakeAssignments struct{ store *fakeStore }

func (f fakeAssignments) Insert(ctx context.Context, a booking.PlotAssignment) error {
	f.store.assignments = append(f.store.assignments, shared.AssignmentSnapshot{
		ID:            a.ID(),
		ReservationID: a.ReservationID(),
		PlotID:        a.PlotID(),
		OccupantCount: a.OccupantCount(),
	})
	return nil
}

func (f fakeAssignments) UpdateOccupants(ctx context.Context, reservationID, plotID uuid.UUID, occupantCount int) (int64, error) {
	for i, a := range f.store.assignments {
		if a.ReservationID == reservationID && a.PlotID == plotID {
			f.store.assignments[i].OccupantCount = occupantCount
			return 1, nil
		}
	}
	return 0, nil
}

func (f fakeAssignments) Delete(ctx context.Context, reservationID, plotID uuid.UUID) (int64, error) {
	for i, a := range f.store.assignments {
		if a.ReservationID == reservationID && a.PlotID == plotID {
			f.store.assignments = append(f.store.assignments[:i], f.store.assignments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f fakeAssignments) ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]shared.AssignmentSnapshot, error) {
	var out []shared.AssignmentSnapshot
	for _, a := range f.store.assignments {
		if a.ReservationID == reservationID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeAssignments) ListForPlots(ctx context.Context, plotIDs []uuid.UUID, excludeReservationID uuid.UUID) ([]shared.CompetingAssignment, error) {
	wanted := make(map[uuid.UUID]struct{}, len(plotIDs))
	for _, id := range plotIDs {
		wanted[id] = struct{}{}
	}

	var out []shared.CompetingAssignment
	for _, a := range f.store.assignments {
		if a.ReservationID == excludeReservationID {
			continue
		}
		if _, ok := wanted[a.PlotID]; !ok {
			continue
		}
		res := f.store.reservations[a.ReservationID]
		out = append(out, shared.CompetingAssignment{
			AssignmentID:  a.ID,
			ReservationID: a.ReservationID,
			PlotID:        a.PlotID,
			OccupantCount: a.OccupantCount,
			CheckIn:       res.CheckIn,
			CheckOut:      res.CheckOut,
		})
	}
	return out, nil
}

// PlotReader

type fakePlots struct{ store *fakeStore }

func (f fakePlots) FindByID(ctx context.Context, id uuid.UUID) (*shared.PlotSnapshot, error) {
	snap, ok := f.store.plots[id]
	if !ok {
		return nil, infra.WrapRepoErr("plot not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (f fakePlots) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.PlotSnapshot, error) {
	var out []shared.PlotSnapshot
	for _, id := range ids {
		if snap, ok := f.store.plots[id]; ok {
			out = append(out, snap)
		}
	}
	return out, nil
}

// NotificationRepository

type fakeNotifications struct{ store *fakeStore }

func (f fakeNotifications) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	f.store.jobs = append(f.store.jobs, jobRecord{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// Tx / UnitOfWork

type fakeTx struct{ store *fakeStore }

func (t fakeTx) Reservations() shared.ReservationRepository   { return t.store }
func (t fakeTx) Assignments() shared.AssignmentRepository     { return fakeAssignments{t.store} }
func (t fakeTx) Plots() shared.PlotReader                     { return fakePlots{t.store} }
func (t fakeTx) Notifications() shared.NotificationRepository { return fakeNotifications{t.store} }

type fakeUoW struct{ store *fakeStore }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	before := u.store.clone()
	if err := fn(ctx, fakeTx{u.store}); err != nil {
		u.store.restore(before)
		return err
	}
	return nil
}

func (u fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	panic("not used")
}

func (u fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	panic("not used")
}

func newEngine(store *fakeStore) commands.BookingCommands {
	factory := booking.NewFactory(booking.NewPerPersonPerNightCalculator())
	cfg := config.Config{Booking: config.BookingConfig{OperationTimeout: 5 * time.Second}}
	fixed := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewBookingCommands(fakeUoW{store}, factory, fixed, cfg)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createCmd(plotID uuid.UUID, occupants int, checkIn, checkOut time.Time) commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		CustomerName:  "John Smith",
		CustomerPhone: "600123456",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Assignments:   []commands.AssignmentInput{{PlotID: plotID, OccupantCount: occupants}},
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("persists reservation, assignments and notification atomically", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1700)
		engine := newEngine(store)

		result, err := engine.CreateReservation(context.Background(), createCmd(plotID, 3, date(2026, 7, 10), date(2026, 7, 14)))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, int64(20400), result.TotalPriceCents)
		assert.Len(t, store.reservations, 1)
		assert.Len(t, store.assignments, 1)
		require.Len(t, store.jobs, 1)
		assert.Equal(t, "sms", store.jobs[0].Kind)
		assert.Equal(t, "reservation_confirmed", store.jobs[0].Topic)
	})

	t.Run("rejects overlap on a booked plot", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		_, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 14)))
		require.NoError(t, err)

		_, err = engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 12), date(2026, 7, 16)))
		require.ErrorIs(t, err, errs.ErrBookingConflict)

		var conflict *commands.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Len(t, conflict.ReservationIDs, 1)
		assert.Equal(t, []uuid.UUID{plotID}, conflict.PlotIDs)

		assert.Len(t, store.reservations, 1, "failed booking must leave no state behind")
		assert.Len(t, store.assignments, 1)
	})

	t.Run("back-to-back stays on the same plot do not conflict", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		_, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 14)))
		require.NoError(t, err)

		_, err = engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 14), date(2026, 7, 16)))
		require.NoError(t, err)

		assert.Len(t, store.reservations, 2)
	})

	t.Run("unknown plot fails with not found", func(t *testing.T) {
		store := newFakeStore()
		engine := newEngine(store)

		_, err := engine.CreateReservation(context.Background(), createCmd(uuid.New(), 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.ErrorIs(t, err, errs.ErrPlotNotFound)
		assert.Empty(t, store.reservations)
	})

	t.Run("same-day stay fails validation and never occupies the plot", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		_, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 10)))
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Empty(t, store.reservations)

		// The rejected stay left no assignment behind; the plot is still bookable.
		_, err = engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.NoError(t, err)
	})

	t.Run("invalid phone fails validation before any write", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		cmd := createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 12))
		cmd.CustomerPhone = "not-a-phone"

		_, err := engine.CreateReservation(context.Background(), cmd)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Empty(t, store.reservations)
	})

	t.Run("repository failure is classified as persistence error", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		store.failInsert = infra.WrapRepoErr("insert failed", assert.AnError)
		engine := newEngine(store)

		_, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.ErrorIs(t, err, errs.ErrPersistence)
		assert.Empty(t, store.reservations)
	})
}

func TestUpdateReservation(t *testing.T) {
	t.Run("missing reservation fails with not found", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		_, err := engine.UpdateReservation(context.Background(), uuid.New(), commands.UpdateReservationCommand{
			CustomerName:  "John Smith",
			CustomerPhone: "600123456",
			CheckIn:       date(2026, 7, 10),
			CheckOut:      date(2026, 7, 12),
			Assignments:   []commands.AssignmentInput{{PlotID: plotID, OccupantCount: 2}},
		})
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("does not conflict with its own previous dates", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		created, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 14)))
		require.NoError(t, err)

		result, err := engine.UpdateReservation(context.Background(), created.ReservationID, commands.UpdateReservationCommand{
			CustomerName:  "John Smith",
			CustomerPhone: "600123456",
			CheckIn:       date(2026, 7, 12),
			CheckOut:      date(2026, 7, 16),
			Assignments:   []commands.AssignmentInput{{PlotID: plotID, OccupantCount: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1500*2*4), result.TotalPriceCents)
	})

	t.Run("replaces assignment set and reprices", func(t *testing.T) {
		store := newFakeStore()
		plotA := store.addPlot(4, 1500)
		plotB := store.addPlot(6, 1200)
		engine := newEngine(store)

		created, err := engine.CreateReservation(context.Background(), createCmd(plotA, 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.NoError(t, err)

		result, err := engine.UpdateReservation(context.Background(), created.ReservationID, commands.UpdateReservationCommand{
			CustomerName:  "John Smith",
			CustomerPhone: "600123456",
			CheckIn:       date(2026, 7, 10),
			CheckOut:      date(2026, 7, 12),
			Assignments: []commands.AssignmentInput{
				{PlotID: plotA, OccupantCount: 3},
				{PlotID: plotB, OccupantCount: 5},
			},
		})
		require.NoError(t, err)

		// (1500x3 + 1200x5) x 2 nights
		assert.Equal(t, int64(21000), result.TotalPriceCents)

		want := []shared.AssignmentSnapshot{
			{ReservationID: created.ReservationID, PlotID: plotA, OccupantCount: 3},
			{ReservationID: created.ReservationID, PlotID: plotB, OccupantCount: 5},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(shared.AssignmentSnapshot{}, "ID"),
			cmpopts.SortSlices(func(a, b shared.AssignmentSnapshot) bool {
				return a.PlotID.String() < b.PlotID.String()
			}),
		}
		if diff := cmp.Diff(want, store.assignments, opts...); diff != "" {
			t.Errorf("assignments mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(21000), store.reservations[created.ReservationID].TotalPriceCents)

		require.Len(t, store.jobs, 2)
		assert.Equal(t, "reservation_updated", store.jobs[1].Topic)
	})

	t.Run("conflicting move rolls back entirely", func(t *testing.T) {
		store := newFakeStore()
		plotA := store.addPlot(4, 1500)
		plotB := store.addPlot(4, 1500)
		engine := newEngine(store)

		_, err := engine.CreateReservation(context.Background(), createCmd(plotB, 2, date(2026, 7, 10), date(2026, 7, 14)))
		require.NoError(t, err)

		created, err := engine.CreateReservation(context.Background(), createCmd(plotA, 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.NoError(t, err)

		_, err = engine.UpdateReservation(context.Background(), created.ReservationID, commands.UpdateReservationCommand{
			CustomerName:  "John Smith",
			CustomerPhone: "600123456",
			CheckIn:       date(2026, 7, 10),
			CheckOut:      date(2026, 7, 12),
			Assignments:   []commands.AssignmentInput{{PlotID: plotB, OccupantCount: 2}},
		})
		require.ErrorIs(t, err, errs.ErrBookingConflict)

		var snap shared.AssignmentSnapshot
		for _, a := range store.assignments {
			if a.ReservationID == created.ReservationID {
				snap = a
			}
		}
		assert.Equal(t, plotA, snap.PlotID, "original assignment must survive a failed update")
		assert.Equal(t, int64(6000), store.reservations[created.ReservationID].TotalPriceCents)
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("removes reservation and cascades assignments", func(t *testing.T) {
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		created, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.NoError(t, err)

		rows, err := engine.DeleteReservation(context.Background(), created.ReservationID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
		assert.Empty(t, store.reservations)
		assert.Empty(t, store.assignments)

		require.Len(t, store.jobs, 2)
		assert.Equal(t, "reservation_canceled", store.jobs[1].Topic)
	})

	t.Run("missing reservation is a zero-row no-op", func(t *testing.T) {
		store := newFakeStore()
		engine := newEngine(store)

		rows, err := engine.DeleteReservation(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Zero(t, rows)
		assert.Empty(t, store.jobs)
	})
}

func TestAssignmentOperations(t *testing.T) {
	setup := func(t *testing.T) (*fakeStore, commands.BookingCommands, uuid.UUID, uuid.UUID) {
		t.Helper()
		store := newFakeStore()
		plotID := store.addPlot(4, 1500)
		engine := newEngine(store)

		created, err := engine.CreateReservation(context.Background(), createCmd(plotID, 2, date(2026, 7, 10), date(2026, 7, 12)))
		require.NoError(t, err)
		return store, engine, created.ReservationID, plotID
	}

	t.Run("add reprices with the new plot", func(t *testing.T) {
		store, engine, reservationID, _ := setup(t)
		plotB := store.addPlot(6, 1200)

		result, err := engine.AddPlotAssignment(context.Background(), reservationID, commands.AssignmentInput{PlotID: plotB, OccupantCount: 4})
		require.NoError(t, err)

		// (1500x2 + 1200x4) x 2 nights
		assert.Equal(t, int64(15600), result.TotalPriceCents)
		assert.Len(t, store.assignments, 2)
	})

	t.Run("add rejects a plot already assigned", func(t *testing.T) {
		_, engine, reservationID, plotID := setup(t)

		_, err := engine.AddPlotAssignment(context.Background(), reservationID, commands.AssignmentInput{PlotID: plotID, OccupantCount: 1})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("add rejects an occupied plot for the same dates", func(t *testing.T) {
		store, engine, reservationID, _ := setup(t)
		plotB := store.addPlot(4, 1500)

		_, err := engine.CreateReservation(context.Background(), createCmd(plotB, 2, date(2026, 7, 11), date(2026, 7, 13)))
		require.NoError(t, err)

		_, err = engine.AddPlotAssignment(context.Background(), reservationID, commands.AssignmentInput{PlotID: plotB, OccupantCount: 2})
		require.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("resize reprices", func(t *testing.T) {
		store, engine, reservationID, plotID := setup(t)

		result, err := engine.ResizePlotAssignment(context.Background(), reservationID, plotID, 4)
		require.NoError(t, err)

		assert.Equal(t, int64(1500*4*2), result.TotalPriceCents)
		assert.Equal(t, 4, store.assignments[0].OccupantCount)
	})

	t.Run("resize beyond capacity fails validation", func(t *testing.T) {
		store, engine, reservationID, plotID := setup(t)

		_, err := engine.ResizePlotAssignment(context.Background(), reservationID, plotID, 5)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 2, store.assignments[0].OccupantCount)
	})

	t.Run("resize unknown plot fails with assignment not found", func(t *testing.T) {
		_, engine, reservationID, _ := setup(t)

		_, err := engine.ResizePlotAssignment(context.Background(), reservationID, uuid.New(), 2)
		require.ErrorIs(t, err, errs.ErrAssignmentNotFound)
	})

	t.Run("remove reprices without the plot", func(t *testing.T) {
		store, engine, reservationID, plotID := setup(t)
		plotB := store.addPlot(6, 1200)

		_, err := engine.AddPlotAssignment(context.Background(), reservationID, commands.AssignmentInput{PlotID: plotB, OccupantCount: 4})
		require.NoError(t, err)

		result, err := engine.RemovePlotAssignment(context.Background(), reservationID, plotID)
		require.NoError(t, err)

		// 1200x4 x 2 nights
		assert.Equal(t, int64(9600), result.TotalPriceCents)
		require.Len(t, store.assignments, 1)
		assert.Equal(t, plotB, store.assignments[0].PlotID)
	})

	t.Run("removing the last assignment fails validation", func(t *testing.T) {
		store, engine, reservationID, plotID := setup(t)

		_, err := engine.RemovePlotAssignment(context.Background(), reservationID, plotID)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Len(t, store.assignments, 1)
	})
}
