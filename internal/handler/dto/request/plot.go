package request

import (
	"strings"

	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePlotRequest struct {
	Name                string `json:"name" binding:"required"`
	Capacity            int    `json:"capacity" binding:"required,min=1"`
	PricePerPersonCents int64  `json:"price_per_person_cents" binding:"required,min=0"`
	Description         string `json:"description"`
}

type UpdatePlotRequest struct {
	Name                string `json:"name" binding:"required"`
	Capacity            int    `json:"capacity" binding:"required,min=1"`
	PricePerPersonCents int64  `json:"price_per_person_cents" binding:"required,min=0"`
	Description         string `json:"description"`
}

func (r CreatePlotRequest) ToCommand() commands.CreatePlotCommand {
	return commands.CreatePlotCommand{
		Name:                strings.TrimSpace(r.Name),
		Capacity:            r.Capacity,
		PricePerPersonCents: r.PricePerPersonCents,
		Description:         strings.TrimSpace(r.Description),
	}
}

func (r UpdatePlotRequest) ToCommand() commands.UpdatePlotCommand {
	return commands.UpdatePlotCommand{
		Name:                strings.TrimSpace(r.Name),
		Capacity:            r.Capacity,
		PricePerPersonCents: r.PricePerPersonCents,
		Description:         strings.TrimSpace(r.Description),
	}
}

func parsePlotID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "invalid plot id"), errs.ErrValidation)
	}
	return id, nil
}
