package booking

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")
	ErrInvalidPhone     = errors.New("customer phone must be 9 to 15 digits")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// StayRange is a half-open [checkIn, checkOut) date interval. Both endpoints
// are normalized to UTC midnight so night counts are exact whole days.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange requires checkOut strictly after checkIn: every stay spans
// at least one night, so every charged night blocks its plot.
func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := toUTCDate(checkIn)
	out := toUTCDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

// Nights is the whole-day span; construction guarantees at least one.
func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / (24 * time.Hour))
}

// Overlaps reports whether the two half-open intervals share at least one
// night. A stay checking in on another's check-out day does not overlap.
func (s StayRange) Overlaps(other StayRange) bool {
	return other.checkIn.Before(s.checkOut) && s.checkIn.Before(other.checkOut)
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format("2006-01-02"), s.checkOut.Format("2006-01-02"))
}

func toUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var phonePattern = regexp.MustCompile(`^\d{9,15}$`)

// Phone is a purely numeric contact number, 9 to 15 digits.
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	if !phonePattern.MatchString(value) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Multiply(factor int64) Money {
	return Money{cents: m.cents * factor}
}
