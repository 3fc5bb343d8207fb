package response

import (
	"time"

	"booking-calculator/internal/usecase/commands"
)

type CreateBookingPayload struct {
	CarID      string  `json:"carId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	CouponCode *string `json:"couponCode,omitempty"`
}

type IntervalProposalResponse struct {
	Start         string               `json:"start"`
	End           string               `json:"end"`
	DurationHours float64              `json:"durationHours"`
	SameDay       bool                 `json:"sameDay"`
	Booking       CreateBookingPayload `json:"booking"`
}

func FromProposeIntervalResult(r *commands.ProposeIntervalResult) *IntervalProposalResponse {
	iv := r.Proposal.Interval
	return &IntervalProposalResponse{
		Start:         iv.Start().Format(time.RFC3339),
		End:           iv.End().Format(time.RFC3339),
		DurationHours: iv.Duration().Hours(),
		SameDay:       r.Proposal.SameDay,
		Booking: CreateBookingPayload{
			CarID:      r.Payload.CarID.String(),
			StartDate:  r.Payload.StartDate,
			EndDate:    r.Payload.EndDate,
			StartTime:  r.Payload.StartTime,
			EndTime:    r.Payload.EndTime,
			CouponCode: r.Payload.CouponCode,
		},
	}
}
