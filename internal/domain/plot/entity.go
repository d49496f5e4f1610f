package plot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlotName    = errors.New("plot name cannot be empty")
	ErrPlotNameTooLong  = errors.New("plot name is too long (max 255 characters)")
	ErrInvalidCapacity  = errors.New("plot capacity must be greater than zero")
	ErrInvalidUnitPrice = errors.New("price per person must be greater than zero")
)

const (
	MaxPlotNameLength = 255
)

// Plot is a bookable campsite site. The booking engine only ever reads it;
// lifecycle belongs to the catalog.
type Plot struct {
	id                  uuid.UUID
	name                string
	capacity            int
	pricePerPersonCents int64
	description         string
	createdAt           time.Time
	updatedAt           time.Time
}

func NewPlot(id uuid.UUID, name string, capacity int, pricePerPersonCents int64, description string) (*Plot, error) {
	if err := validatePlotName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if pricePerPersonCents <= 0 {
		return nil, ErrInvalidUnitPrice
	}

	return &Plot{
		id:                  id,
		name:                strings.TrimSpace(name),
		capacity:            capacity,
		pricePerPersonCents: pricePerPersonCents,
		description:         description,
	}, nil
}

func ReconstructPlot(id uuid.UUID, name string, capacity int, pricePerPersonCents int64, description string, createdAt, updatedAt time.Time) *Plot {
	return &Plot{
		id:                  id,
		name:                name,
		capacity:            capacity,
		pricePerPersonCents: pricePerPersonCents,
		description:         description,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (p *Plot) CanAccommodate(occupants int) bool {
	return occupants >= 1 && occupants <= p.capacity
}

func validatePlotName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPlotName
	}
	if len(name) > MaxPlotNameLength {
		return ErrPlotNameTooLong
	}
	return nil
}

func (p *Plot) ID() uuid.UUID              { return p.id }
func (p *Plot) Name() string               { return p.name }
func (p *Plot) Capacity() int              { return p.capacity }
func (p *Plot) PricePerPersonCents() int64 { return p.pricePerPersonCents }
func (p *Plot) Description() string        { return p.description }
func (p *Plot) CreatedAt() time.Time       { return p.createdAt }
func (p *Plot) UpdatedAt() time.Time       { return p.updatedAt }
