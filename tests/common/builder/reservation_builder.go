//go:build unit || e2e

package builder

import (
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/domain/plot"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	CustomerName string
	Phone        string
	CheckIn      time.Time
	CheckOut     time.Time
	Specs        []booking.AssignmentSpec
	Plots        map[uuid.UUID]*plot.Plot
}

func NewReservationBuilder() *ReservationBuilder {
	p, _ := NewPlotBuilder().BuildDomain()
	checkIn := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	return &ReservationBuilder{
		CustomerName: "John Smith",
		Phone:        "600123456",
		CheckIn:      checkIn,
		CheckOut:     checkIn.AddDate(0, 0, 2),
		Specs: []booking.AssignmentSpec{
			{PlotID: p.ID(), OccupantCount: 2},
		},
		Plots: map[uuid.UUID]*plot.Plot{p.ID(): p},
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithCustomerName(name string) *ReservationBuilder {
	b.CustomerName = name
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.Phone = phone
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

// WithPlot registers the plot in the lookup and replaces the assignment
// specs with a single assignment on it.
func (b *ReservationBuilder) WithPlot(p *plot.Plot, occupants int) *ReservationBuilder {
	b.Plots = map[uuid.UUID]*plot.Plot{p.ID(): p}
	b.Specs = []booking.AssignmentSpec{{PlotID: p.ID(), OccupantCount: occupants}}
	return b
}

// AddPlot registers an additional plot and appends an assignment on it.
func (b *ReservationBuilder) AddPlot(p *plot.Plot, occupants int) *ReservationBuilder {
	b.Plots[p.ID()] = p
	b.Specs = append(b.Specs, booking.AssignmentSpec{PlotID: p.ID(), OccupantCount: occupants})
	return b
}

func (b *ReservationBuilder) WithSpecs(specs []booking.AssignmentSpec) *ReservationBuilder {
	b.Specs = specs
	return b
}

func (b *ReservationBuilder) BuildDomain() (*booking.Reservation, error) {
	phone, err := booking.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}

	factory := booking.NewFactory(booking.NewPerPersonPerNightCalculator())
	return factory.NewReservation(b.CustomerName, phone, stay, b.Specs, b.Plots)
}
