package repository

import (
	"context"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(dbtx db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: dbtx}
}

func (r *AssignmentRepository) Insert(ctx context.Context, a booking.PlotAssignment) error {
	const query = `
		INSERT INTO plot_assignments (id, reservation_id, plot_id, occupant_count)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, a.ID(), a.ReservationID(), a.PlotID(), a.OccupantCount())
	if err != nil {
		return infra.WrapRepoErr("failed to insert plot assignment", err)
	}
	return nil
}

func (r *AssignmentRepository) UpdateOccupants(ctx context.Context, reservationID, plotID uuid.UUID, occupantCount int) (int64, error) {
	const query = `
		UPDATE plot_assignments
		SET occupant_count = $3
		WHERE reservation_id = $1 AND plot_id = $2`

	tag, err := r.db.Exec(ctx, query, reservationID, plotID, occupantCount)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update plot assignment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, reservationID, plotID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM plot_assignments
		WHERE reservation_id = $1 AND plot_id = $2`

	tag, err := r.db.Exec(ctx, query, reservationID, plotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete plot assignment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AssignmentRepository) ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]shared.AssignmentSnapshot, error) {
	const query = `
		SELECT id, reservation_id, plot_id, occupant_count
		FROM plot_assignments
		WHERE reservation_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments for reservation", err)
	}
	defer rows.Close()

	var result []shared.AssignmentSnapshot
	for rows.Next() {
		var snap shared.AssignmentSnapshot
		if err := rows.Scan(&snap.ID, &snap.ReservationID, &snap.PlotID, &snap.OccupantCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plot assignment", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read plot assignments", err)
	}
	return result, nil
}

// ListForPlots joins each competing assignment with its owning
// reservation's dates. Overlap itself is decided in the domain layer, off
// the returned ranges.
func (r *AssignmentRepository) ListForPlots(ctx context.Context, plotIDs []uuid.UUID, excludeReservationID uuid.UUID) ([]shared.CompetingAssignment, error) {
	const query = `
		SELECT pa.id, pa.reservation_id, pa.plot_id, pa.occupant_count, res.check_in, res.check_out
		FROM plot_assignments pa
		JOIN reservations res ON res.id = pa.reservation_id
		WHERE pa.plot_id = ANY($1) AND pa.reservation_id <> $2
		ORDER BY res.check_in`

	rows, err := r.db.Query(ctx, query, plotIDs, excludeReservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list competing assignments", err)
	}
	defer rows.Close()

	var result []shared.CompetingAssignment
	for rows.Next() {
		var (
			c                 shared.CompetingAssignment
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&c.AssignmentID, &c.ReservationID, &c.PlotID, &c.OccupantCount, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan competing assignment", err)
		}
		c.CheckIn = pgconv.DateFromPgtype(checkIn)
		c.CheckOut = pgconv.DateFromPgtype(checkOut)
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read competing assignments", err)
	}
	return result, nil
}
