package response

import (
	"time"

	"booking-calculator/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RatesResponse struct {
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	HalfDayPrice  *float64 `json:"halfDayPrice,omitempty"`
	DailyRate     float64  `json:"dailyRate"`
	HalfDayRate   float64  `json:"halfDayRate"`
}

type BookingResponse struct {
	ID        string        `json:"id" copier:"-"`
	CarID     string        `json:"carId" copier:"-"`
	CarName   string        `json:"carName"`
	CarNumber string        `json:"carNumber"`
	StartAt   string        `json:"startAt" copier:"-"`
	EndAt     string        `json:"endAt" copier:"-"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Status    string        `json:"status"`
	CanExtend bool          `json:"canExtend"`
	Rates     RatesResponse `json:"rates" copier:"-"`
	CreatedAt int64         `json:"createdAt" copier:"-"`
}

// FromBookingView copies the same-named fields. Ids and timestamps are
// rendered by hand.
func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Rates, &v.Rates); err != nil {
		return nil, err
	}
	res.ID = v.ID.String()
	res.CarID = v.CarID.String()
	res.StartAt = v.StartAt.Format(time.RFC3339)
	res.EndAt = v.EndAt.Format(time.RFC3339)
	res.CreatedAt = v.CreatedAt.Unix()
	return res, nil
}
