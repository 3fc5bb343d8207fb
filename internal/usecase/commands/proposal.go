package commands

//go:generate mockgen -source=proposal.go -destination=../../../tests/mock/commands/proposal.go -package=commandsmock

import (
	"context"
	"strings"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/pkg/clock"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
)

// ProposeIntervalRequest carries the picker state as typed by the client.
// EndTime is only read for same-day bookings.
type ProposeIntervalRequest struct {
	StartDate  string
	EndDate    string
	StartTime  string
	EndTime    *string
	ReturnSlot string
	CouponCode *string
}

// CreateBookingPayload mirrors the booking API's create-booking request.
type CreateBookingPayload struct {
	CarID      uuid.UUID
	StartDate  string
	EndDate    string
	StartTime  string
	EndTime    string
	CouponCode *string
}

type ProposeIntervalResult struct {
	Proposal booking.Proposal
	Payload  CreateBookingPayload
}

type ProposalCommands interface {
	ProposeInterval(ctx context.Context, carID uuid.UUID, req ProposeIntervalRequest) (*ProposeIntervalResult, error)
}

type proposalUseCaseImpl struct {
	cars     shared.CarReader
	provider shared.BookedRangeProvider
	clock    clock.Clock
	loc      *time.Location
	months   int
}

func NewProposalUseCase(cars shared.CarReader, provider shared.BookedRangeProvider, clk clock.Clock, loc *time.Location, windowMonths int) ProposalCommands {
	return &proposalUseCaseImpl{
		cars:     cars,
		provider: provider,
		clock:    clk,
		loc:      loc,
		months:   windowMonths,
	}
}

func (uc *proposalUseCaseImpl) ProposeInterval(ctx context.Context, carID uuid.UUID, req ProposeIntervalRequest) (*ProposeIntervalResult, error) {
	in, err := uc.parseInput(req)
	if err != nil {
		return nil, err
	}

	window := booking.NewDateWindow(booking.DateOf(uc.clock.Now(), uc.loc), uc.months)
	if !window.Contains(in.StartDate) || !window.Contains(in.EndDate) {
		return nil, booking.ErrOutsideWindow
	}

	if _, err := shared.LoadCar(ctx, uc.cars, carID); err != nil {
		return nil, err
	}

	proposal, err := booking.ProposeInterval(in, uc.provider.Snapshot(ctx, carID))
	if err != nil {
		return nil, err
	}

	return &ProposeIntervalResult{
		Proposal: proposal,
		Payload: CreateBookingPayload{
			CarID:      carID,
			StartDate:  booking.DateOf(proposal.Interval.Start(), uc.loc).String(),
			EndDate:    booking.DateOf(proposal.Interval.End(), uc.loc).String(),
			StartTime:  proposal.StartClock,
			EndTime:    proposal.EndClock,
			CouponCode: normalizeCoupon(req.CouponCode),
		},
	}, nil
}

func (uc *proposalUseCaseImpl) parseInput(req ProposeIntervalRequest) (booking.ProposalInput, error) {
	startDate, err := booking.ParseDate(req.StartDate)
	if err != nil {
		return booking.ProposalInput{}, err
	}
	endDate, err := booking.ParseDate(req.EndDate)
	if err != nil {
		return booking.ProposalInput{}, err
	}
	startTime, err := booking.ParseClockTime(req.StartTime)
	if err != nil {
		return booking.ProposalInput{}, err
	}
	slot, err := booking.ParseReturnSlot(req.ReturnSlot)
	if err != nil {
		return booking.ProposalInput{}, err
	}

	in := booking.ProposalInput{
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  startTime,
		ReturnSlot: slot,
		Location:   uc.loc,
	}

	if req.EndTime != nil && strings.TrimSpace(*req.EndTime) != "" {
		endTime, err := booking.ParseClockTime(*req.EndTime)
		if err != nil {
			return booking.ProposalInput{}, err
		}
		customEnd := endDate.At(endTime, uc.loc)
		in.CustomEnd = &customEnd
	}
	return in, nil
}

func normalizeCoupon(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
