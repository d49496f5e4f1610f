package commands

import (
	"context"

	"campsite-booking/internal/domain/plot"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// The plot catalog is a thin attribute store next to the booking engine;
// its writes need no overlap validation, only name uniqueness.

type CreatePlotCommand struct {
	Name                string
	Capacity            int
	PricePerPersonCents int64
	Description         string
}

type UpdatePlotCommand struct {
	Name                string
	Capacity            int
	PricePerPersonCents int64
	Description         string
}

type PlotWriteRepository interface {
	Insert(ctx context.Context, p *plot.Plot) error
	Update(ctx context.Context, p *plot.Plot) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type PlotCommands interface {
	CreatePlot(ctx context.Context, cmd CreatePlotCommand) (uuid.UUID, error)
	UpdatePlot(ctx context.Context, id uuid.UUID, cmd UpdatePlotCommand) error
	DeletePlot(ctx context.Context, id uuid.UUID) (int64, error)
}

type plotCommandsImpl struct {
	repo PlotWriteRepository
}

func NewPlotCommands(repo PlotWriteRepository) PlotCommands {
	return &plotCommandsImpl{repo: repo}
}

func (p *plotCommandsImpl) CreatePlot(ctx context.Context, cmd CreatePlotCommand) (uuid.UUID, error) {
	entity, err := plot.NewPlot(uuid.New(), cmd.Name, cmd.Capacity, cmd.PricePerPersonCents, cmd.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := p.repo.Insert(ctx, entity); err != nil {
		return uuid.Nil, classifyPlotRepoError(err)
	}
	return entity.ID(), nil
}

func (p *plotCommandsImpl) UpdatePlot(ctx context.Context, id uuid.UUID, cmd UpdatePlotCommand) error {
	entity, err := plot.NewPlot(id, cmd.Name, cmd.Capacity, cmd.PricePerPersonCents, cmd.Description)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	rows, err := p.repo.Update(ctx, entity)
	if err != nil {
		return classifyPlotRepoError(err)
	}
	if rows == 0 {
		return errs.ErrPlotNotFound
	}
	return nil
}

func (p *plotCommandsImpl) DeletePlot(ctx context.Context, id uuid.UUID) (int64, error) {
	rows, err := p.repo.Delete(ctx, id)
	if err != nil {
		return 0, classifyPlotRepoError(err)
	}
	return rows, nil
}

func classifyPlotRepoError(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicatePlotName)
	}
	return errs.Mark(err, errs.ErrPersistence)
}
