package queries

import (
	"context"
	"time"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AssignmentLine struct {
	PlotID              uuid.UUID `json:"plot_id"`
	PlotName            string    `json:"plot_name"`
	OccupantCount       int       `json:"occupant_count"`
	PricePerPersonCents int64     `json:"price_per_person_cents"`
}

type ReservationView struct {
	ID              uuid.UUID        `json:"id"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CheckIn         time.Time        `json:"check_in"`
	CheckOut        time.Time        `json:"check_out"`
	TotalPriceCents int64            `json:"total_price_cents"`
	Assignments     []AssignmentLine `json:"assignments"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	TotalPriceCents int64     `json:"total_price_cents"`
	PlotCount       int       `json:"plot_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationListItem, error) {
	return q.store.FindAll(ctx)
}
