package readstore

import (
	"context"
	"time"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PlotReadStore struct {
	db db.DBTX
}

func NewPlotReadStore(dbtx db.DBTX) *PlotReadStore {
	return &PlotReadStore{db: dbtx}
}

const plotColumns = `id, name, capacity, price_per_person_cents, description, created_at, updated_at`

func (r *PlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PlotView, error) {
	query := `SELECT ` + plotColumns + ` FROM plots WHERE id = $1`

	var view queries.PlotView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Name,
		&view.Capacity,
		&view.PricePerPersonCents,
		&view.Description,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plot by ID", err)
	}
	return &view, nil
}

func (r *PlotReadStore) FindAll(ctx context.Context) ([]*queries.PlotView, error) {
	query := `SELECT ` + plotColumns + ` FROM plots ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plots", err)
	}
	defer rows.Close()

	return scanPlotViews(rows)
}

func scanPlotViews(rows pgx.Rows) ([]*queries.PlotView, error) {
	var result []*queries.PlotView
	for rows.Next() {
		var view queries.PlotView
		if err := rows.Scan(&view.ID, &view.Name, &view.Capacity, &view.PricePerPersonCents, &view.Description, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plot", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read plots", err)
	}
	return result, nil
}

// FindAvailable returns plots with no assignment whose owning reservation
// overlaps [checkIn, checkOut). Same half-open comparison as the overlap
// validator, pushed into SQL for the per-plot scan.
func (r *PlotReadStore) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*queries.PlotView, error) {
	query := `
		SELECT ` + plotColumns + `
		FROM plots p
		WHERE NOT EXISTS (
			SELECT 1
			FROM plot_assignments pa
			JOIN reservations res ON res.id = pa.reservation_id
			WHERE pa.plot_id = p.id
			  AND res.check_in < $2
			  AND $1 < res.check_out
		)
		ORDER BY p.name`

	rows, err := r.db.Query(ctx, query, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available plots", err)
	}
	defer rows.Close()

	return scanPlotViews(rows)
}
