package queries

import (
	"context"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type PlotView struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Capacity            int       `json:"capacity"`
	PricePerPersonCents int64     `json:"price_per_person_cents"`
	Description         string    `json:"description"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PlotView, error)
	List(ctx context.Context) ([]*PlotView, error)
	// ListAvailable returns plots with zero assignments overlapping the
	// given stay.
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*PlotView, error)
}

type PlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlotView, error)
	FindAll(ctx context.Context) ([]*PlotView, error)
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*PlotView, error)
}

type plotQueriesImpl struct {
	store PlotReadStore
}

func NewPlotQueries(store PlotReadStore) PlotQueries {
	return &plotQueriesImpl{store: store}
}

func (q *plotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPlotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *plotQueriesImpl) List(ctx context.Context) ([]*PlotView, error) {
	return q.store.FindAll(ctx)
}

func (q *plotQueriesImpl) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*PlotView, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return q.store.FindAvailable(ctx, stay.CheckIn(), stay.CheckOut())
}
