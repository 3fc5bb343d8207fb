package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookedRangeView struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

type CalendarView struct {
	CarID         uuid.UUID `json:"carId"`
	MinDate       string    `json:"minDate"`
	MaxDate       string    `json:"maxDate"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	DisabledDates []string  `json:"disabledDates"`
}

type RatesView struct {
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	HalfDayPrice  *float64 `json:"halfDayPrice,omitempty"`
	DailyRate     float64  `json:"dailyRate"`
	HalfDayRate   float64  `json:"halfDayRate"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"carId"`
	CarName   string    `json:"carName"`
	CarNumber string    `json:"carNumber"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    string    `json:"status"`
	CanExtend bool      `json:"canExtend"`
	Rates     RatesView `json:"rates"`
	CreatedAt time.Time `json:"createdAt"`
}
