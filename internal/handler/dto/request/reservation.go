package request

import (
	"strings"
	"time"

	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

type AssignmentRequest struct {
	PlotID        string `json:"plot_id" binding:"required,uuid"`
	OccupantCount int    `json:"occupant_count" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required"`
	CustomerPhone string              `json:"customer_phone" binding:"required"`
	CheckIn       string              `json:"check_in" binding:"required"`
	CheckOut      string              `json:"check_out" binding:"required"`
	Assignments   []AssignmentRequest `json:"assignments" binding:"required,min=1,dive"`
}

type UpdateReservationRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required"`
	CustomerPhone string              `json:"customer_phone" binding:"required"`
	CheckIn       string              `json:"check_in" binding:"required"`
	CheckOut      string              `json:"check_out" binding:"required"`
	Assignments   []AssignmentRequest `json:"assignments" binding:"required,min=1,dive"`
}

type AddAssignmentRequest struct {
	PlotID        string `json:"plot_id" binding:"required,uuid"`
	OccupantCount int    `json:"occupant_count" binding:"required,min=1"`
}

type ResizeAssignmentRequest struct {
	OccupantCount int `json:"occupant_count" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToCommand() (commands.CreateReservationCommand, error) {
	checkIn, checkOut, err := parseStayDates(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CreateReservationCommand{}, err
	}
	assignments, err := toAssignmentInputs(r.Assignments)
	if err != nil {
		return commands.CreateReservationCommand{}, err
	}
	return commands.CreateReservationCommand{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Assignments:   assignments,
	}, nil
}

func (r UpdateReservationRequest) ToCommand() (commands.UpdateReservationCommand, error) {
	checkIn, checkOut, err := parseStayDates(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.UpdateReservationCommand{}, err
	}
	assignments, err := toAssignmentInputs(r.Assignments)
	if err != nil {
		return commands.UpdateReservationCommand{}, err
	}
	return commands.UpdateReservationCommand{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Assignments:   assignments,
	}, nil
}

func (r AddAssignmentRequest) ToInput() (commands.AssignmentInput, error) {
	plotID, err := parsePlotID(r.PlotID)
	if err != nil {
		return commands.AssignmentInput{}, err
	}
	return commands.AssignmentInput{PlotID: plotID, OccupantCount: r.OccupantCount}, nil
}

func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	return parseStayDates(checkIn, checkOut)
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.ParseInLocation(dateLayout, checkIn, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(errs.Wrap(err, "invalid check_in date"), errs.ErrValidation)
	}
	out, err := time.ParseInLocation(dateLayout, checkOut, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(errs.Wrap(err, "invalid check_out date"), errs.ErrValidation)
	}
	return in, out, nil
}

func toAssignmentInputs(reqs []AssignmentRequest) ([]commands.AssignmentInput, error) {
	inputs := make([]commands.AssignmentInput, 0, len(reqs))
	for _, a := range reqs {
		plotID, err := parsePlotID(a.PlotID)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.AssignmentInput{PlotID: plotID, OccupantCount: a.OccupantCount})
	}
	return inputs, nil
}
