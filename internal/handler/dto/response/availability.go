package response

import (
	"time"

	"booking-calculator/internal/usecase/queries"
)

type BookedDateResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BookedDatesResponse keeps the booking API's {data: [...]} envelope.
type BookedDatesResponse struct {
	Data []BookedDateResponse `json:"data"`
}

func FromBookedRanges(views []queries.BookedRangeView) *BookedDatesResponse {
	res := &BookedDatesResponse{Data: make([]BookedDateResponse, len(views))}
	for i, v := range views {
		res.Data[i] = BookedDateResponse{
			StartDate: v.StartAt.Format(time.RFC3339),
			EndDate:   v.EndAt.Format(time.RFC3339),
		}
	}
	return res
}

type CalendarResponse struct {
	CarID         string   `json:"carId"`
	MinDate       string   `json:"minDate"`
	MaxDate       string   `json:"maxDate"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	DisabledDates []string `json:"disabledDates"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		CarID:         v.CarID.String(),
		MinDate:       v.MinDate,
		MaxDate:       v.MaxDate,
		From:          v.From,
		To:            v.To,
		DisabledDates: v.DisabledDates,
	}
}
