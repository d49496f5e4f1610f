package shared

import (
	"context"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serializable transaction for write operations with retry on
	// serialization aborts. The conflict check and the commit of a booking
	// must share one of these, or two callers can double-book a plot.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Assignments() AssignmentRepository
	Plots() PlotReader
	Notifications() NotificationRepository
}

// ReservationRepository writes reservation rows. Update and Delete report
// rows affected so callers can treat a missing id as a no-op.
type ReservationRepository interface {
	Insert(ctx context.Context, res *booking.Reservation) error
	Update(ctx context.Context, res *booking.Reservation) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type AssignmentRepository interface {
	Insert(ctx context.Context, a booking.PlotAssignment) error
	UpdateOccupants(ctx context.Context, reservationID, plotID uuid.UUID, occupantCount int) (int64, error)
	Delete(ctx context.Context, reservationID, plotID uuid.UUID) (int64, error)
	ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]AssignmentSnapshot, error)
	// ListForPlots is the overlap validator's query: every assignment on one
	// of the given plots joined with its owning reservation's date range,
	// excluding the reservation being edited.
	ListForPlots(ctx context.Context, plotIDs []uuid.UUID, excludeReservationID uuid.UUID) ([]CompetingAssignment, error)
}

type PlotReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlotSnapshot, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]PlotSnapshot, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
