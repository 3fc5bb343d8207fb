package response

import (
	"time"

	"booking-calculator/internal/usecase/commands"
)

// TopUpPayload mirrors the booking API's apply-top-up request.
type TopUpPayload struct {
	BookingID          string `json:"bookingId"`
	ExtensionTime      int    `json:"extensionTime"`
	PaymentReferenceID string `json:"paymentReferenceId"`
}

type ExtensionQuoteResponse struct {
	BookingID       string        `json:"bookingId"`
	Kind            string        `json:"kind"`
	Days            int           `json:"days,omitempty"`
	CurrentEnd      string        `json:"currentEnd"`
	NewEnd          string        `json:"newEnd"`
	AdditionalHours int           `json:"additionalHours"`
	AdditionalPrice float64       `json:"additionalPrice"`
	HalfDayRate     float64       `json:"halfDayRate"`
	DailyRate       float64       `json:"dailyRate"`
	Submittable     bool          `json:"submittable"`
	TopUp           *TopUpPayload `json:"topUp,omitempty"`
}

func FromQuoteExtensionResult(r *commands.QuoteExtensionResult) *ExtensionQuoteResponse {
	res := &ExtensionQuoteResponse{
		BookingID:       r.BookingID.String(),
		Kind:            r.Kind.String(),
		Days:            r.Days,
		CurrentEnd:      r.CurrentEnd.Format(time.RFC3339),
		NewEnd:          r.Quote.NewEnd.Format(time.RFC3339),
		AdditionalHours: r.Quote.AdditionalHours,
		AdditionalPrice: r.Quote.AdditionalPrice.Amount(),
		HalfDayRate:     r.HalfDayRate.Amount(),
		DailyRate:       r.DailyRate.Amount(),
		Submittable:     r.Quote.Submittable(),
	}
	if r.TopUp != nil {
		res.TopUp = &TopUpPayload{
			BookingID:          r.TopUp.BookingID.String(),
			ExtensionTime:      r.TopUp.ExtensionTime,
			PaymentReferenceID: r.TopUp.PaymentReferenceID,
		}
	}
	return res
}
