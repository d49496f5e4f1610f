package repository

import (
	"context"

	"campsite-booking/internal/domain/plot"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// PlotRepository serves both sides of the catalog contract: snapshot reads
// for the booking engine and attribute writes for the catalog itself.
type PlotRepository struct {
	db db.DBTX
}

func NewPlotRepository(dbtx db.DBTX) *PlotRepository {
	return &PlotRepository{db: dbtx}
}

func (r *PlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.PlotSnapshot, error) {
	const query = `
		SELECT id, name, capacity, price_per_person_cents, description
		FROM plots
		WHERE id = $1`

	var snap shared.PlotSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Capacity,
		&snap.PricePerPersonCents,
		&snap.Description,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plot by ID", err)
	}
	return &snap, nil
}

func (r *PlotRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.PlotSnapshot, error) {
	const query = `
		SELECT id, name, capacity, price_per_person_cents, description
		FROM plots
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find plots by IDs", err)
	}
	defer rows.Close()

	var result []shared.PlotSnapshot
	for rows.Next() {
		var snap shared.PlotSnapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Capacity, &snap.PricePerPersonCents, &snap.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plot", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read plots", err)
	}
	return result, nil
}

func (r *PlotRepository) Insert(ctx context.Context, p *plot.Plot) error {
	const query = `
		INSERT INTO plots (id, name, capacity, price_per_person_cents, description)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, p.ID(), p.Name(), p.Capacity(), p.PricePerPersonCents(), p.Description())
	if err != nil {
		return infra.WrapRepoErr("failed to insert plot", err)
	}
	return nil
}

func (r *PlotRepository) Update(ctx context.Context, p *plot.Plot) (int64, error) {
	const query = `
		UPDATE plots
		SET name = $2, capacity = $3, price_per_person_cents = $4, description = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, p.ID(), p.Name(), p.Capacity(), p.PricePerPersonCents(), p.Description())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update plot", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PlotRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM plots WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete plot", err)
	}
	return tag.RowsAffected(), nil
}
