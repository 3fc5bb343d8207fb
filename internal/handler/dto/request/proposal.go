package request

import (
	"booking-calculator/internal/usecase/commands"
)

// ProposeIntervalRequest is the date/time picker state. endTime is only
// read when startDate and endDate are the same day.
type ProposeIntervalRequest struct {
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    string  `json:"endDate" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    *string `json:"endTime"`
	ReturnSlot string  `json:"returnSlot"`
	CouponCode *string `json:"couponCode" binding:"omitempty,max=64"`
}

func (r *ProposeIntervalRequest) ToCommand() commands.ProposeIntervalRequest {
	return commands.ProposeIntervalRequest{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		ReturnSlot: r.ReturnSlot,
		CouponCode: r.CouponCode,
	}
}
