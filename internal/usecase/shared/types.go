package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads

type PlotSnapshot struct {
	ID                  uuid.UUID
	Name                string
	Capacity            int
	PricePerPersonCents int64
	Description         string
}

type ReservationSnapshot struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CheckIn         time.Time
	CheckOut        time.Time
	TotalPriceCents int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AssignmentSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	PlotID        uuid.UUID
	OccupantCount int
}

// CompetingAssignment is an assignment on a contended plot together with
// its owner's date range, as returned by the overlap query.
type CompetingAssignment struct {
	AssignmentID  uuid.UUID
	ReservationID uuid.UUID
	PlotID        uuid.UUID
	OccupantCount int
	CheckIn       time.Time
	CheckOut      time.Time
}
