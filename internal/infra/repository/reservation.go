package repository

import (
	"context"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *booking.Reservation) error {
	const query = `
		INSERT INTO reservations (id, customer_name, customer_phone, check_in, check_out, total_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.CustomerName(),
		res.Phone().String(),
		pgconv.DateToPgtype(res.Stay().CheckIn()),
		pgconv.DateToPgtype(res.Stay().CheckOut()),
		res.TotalPrice().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *booking.Reservation) (int64, error) {
	const query = `
		UPDATE reservations
		SET customer_name = $2, customer_phone = $3, check_in = $4, check_out = $5,
		    total_price_cents = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		res.ID(),
		res.CustomerName(),
		res.Phone().String(),
		pgconv.DateToPgtype(res.Stay().CheckIn()),
		pgconv.DateToPgtype(res.Stay().CheckOut()),
		res.TotalPrice().Cents(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update reservation", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the reservation row; plot_assignments go with it via the
// FK cascade. Zero rows affected is not an error.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, customer_name, customer_phone, check_in, check_out, total_price_cents, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	var snap shared.ReservationSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.CustomerName,
		&snap.CustomerPhone,
		&snap.CheckIn,
		&snap.CheckOut,
		&snap.TotalPriceCents,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &snap, nil
}
