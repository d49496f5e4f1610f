package response

import (
	"time"

	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResultResponse struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	TotalPriceCents int64     `json:"totalPriceCents"`
}

type AssignmentResponse struct {
	PlotID              uuid.UUID `json:"plotId"`
	PlotName            string    `json:"plotName"`
	OccupantCount       int       `json:"occupantCount"`
	PricePerPersonCents int64     `json:"pricePerPersonCents"`
}

type ReservationResponse struct {
	ID              uuid.UUID            `json:"id"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CheckIn         string               `json:"checkIn"`
	CheckOut        string               `json:"checkOut"`
	TotalPriceCents int64                `json:"totalPriceCents"`
	Assignments     []AssignmentResponse `json:"assignments"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	PlotCount       int       `json:"plotCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

const dateLayout = "2006-01-02"

func FromBookingResult(r *commands.BookingResult) *BookingResultResponse {
	return &BookingResultResponse{
		ReservationID:   r.ReservationID,
		TotalPriceCents: r.TotalPriceCents,
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	assignments := make([]AssignmentResponse, 0, len(v.Assignments))
	for _, a := range v.Assignments {
		assignments = append(assignments, AssignmentResponse{
			PlotID:              a.PlotID,
			PlotName:            a.PlotName,
			OccupantCount:       a.OccupantCount,
			PricePerPersonCents: a.PricePerPersonCents,
		})
	}
	return &ReservationResponse{
		ID:              v.ID,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		CheckIn:         v.CheckIn.Format(dateLayout),
		CheckOut:        v.CheckOut.Format(dateLayout),
		TotalPriceCents: v.TotalPriceCents,
		Assignments:     assignments,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:              v.ID,
		CustomerName:    v.CustomerName,
		CheckIn:         v.CheckIn.Format(dateLayout),
		CheckOut:        v.CheckOut.Format(dateLayout),
		TotalPriceCents: v.TotalPriceCents,
		PlotCount:       v.PlotCount,
		CreatedAt:       v.CreatedAt,
	}
}

func FromReservationListItems(items []*queries.ReservationListItem) []*ReservationListResponse {
	responses := make([]*ReservationListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromReservationListItem(item))
	}
	return responses
}
