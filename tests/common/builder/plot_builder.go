//go:build unit || e2e

package builder

import (
	"campsite-booking/internal/domain/plot"

	"github.com/google/uuid"
)

type PlotBuilder struct {
	ID                  uuid.UUID
	Name                string
	Capacity            int
	PricePerPersonCents int64
	Description         string
}

func NewPlotBuilder() *PlotBuilder {
	return &PlotBuilder{
		ID:                  uuid.New(),
		Name:                "Riverside",
		Capacity:            4,
		PricePerPersonCents: 1500,
		Description:         "Next to the river",
	}
}

func (b *PlotBuilder) With(mutate func(*PlotBuilder)) *PlotBuilder {
	mutate(b)
	return b
}

func (b *PlotBuilder) WithName(name string) *PlotBuilder {
	b.Name = name
	return b
}

func (b *PlotBuilder) WithCapacity(capacity int) *PlotBuilder {
	b.Capacity = capacity
	return b
}

func (b *PlotBuilder) WithPrice(cents int64) *PlotBuilder {
	b.PricePerPersonCents = cents
	return b
}

func (b *PlotBuilder) BuildDomain() (*plot.Plot, error) {
	return plot.NewPlot(b.ID, b.Name, b.Capacity, b.PricePerPersonCents, b.Description)
}
