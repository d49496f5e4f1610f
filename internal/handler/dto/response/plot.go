package response

import (
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlotResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Capacity            int       `json:"capacity"`
	PricePerPersonCents int64     `json:"pricePerPersonCents"`
	Description         string    `json:"description"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromPlotView(v *queries.PlotView) *PlotResponse {
	return &PlotResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Capacity:            v.Capacity,
		PricePerPersonCents: v.PricePerPersonCents,
		Description:         v.Description,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func FromPlotViews(views []*queries.PlotView) []*PlotResponse {
	responses := make([]*PlotResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromPlotView(v))
	}
	return responses
}
