package readstore

import (
	"context"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT id, customer_name, customer_phone, check_in, check_out, total_price_cents, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.CustomerName,
		&view.CustomerPhone,
		&view.CheckIn,
		&view.CheckOut,
		&view.TotalPriceCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	lines, err := r.assignmentLines(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Assignments = lines

	return &view, nil
}

func (r *ReservationReadStore) assignmentLines(ctx context.Context, reservationID uuid.UUID) ([]queries.AssignmentLine, error) {
	const query = `
		SELECT pa.plot_id, p.name, pa.occupant_count, p.price_per_person_cents
		FROM plot_assignments pa
		JOIN plots p ON p.id = pa.plot_id
		WHERE pa.reservation_id = $1
		ORDER BY p.name`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation assignments", err)
	}
	defer rows.Close()

	var lines []queries.AssignmentLine
	for rows.Next() {
		var line queries.AssignmentLine
		if err := rows.Scan(&line.PlotID, &line.PlotName, &line.OccupantCount, &line.PricePerPersonCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read assignment lines", err)
	}
	return lines, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT res.id, res.customer_name, res.check_in, res.check_out, res.total_price_cents,
		       count(pa.id) AS plot_count, res.created_at
		FROM reservations res
		LEFT JOIN plot_assignments pa ON pa.reservation_id = res.id
		GROUP BY res.id
		ORDER BY res.check_in, res.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(&item.ID, &item.CustomerName, &item.CheckIn, &item.CheckOut, &item.TotalPriceCents, &item.PlotCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return result, nil
}
