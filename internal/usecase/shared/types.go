package shared

import (
	"time"

	"booking-calculator/internal/domain/car"

	"github.com/google/uuid"
)

// Rates are in minor units. Nil optional rates are absent.
type RateSnapshot struct {
	PriceMinor         int64
	DiscountPriceMinor *int64
	HalfDayPriceMinor  *int64
}

func (r RateSnapshot) RateCard() (car.RateCard, error) {
	return car.NewRateCard(car.NewMoney(r.PriceMinor), moneyPtr(r.DiscountPriceMinor), moneyPtr(r.HalfDayPriceMinor))
}

type CarSnapshot struct {
	ID     uuid.UUID
	Name   string
	Number string
	Rates  RateSnapshot
}

type BookingSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CarID     uuid.UUID
	CarName   string
	CarNumber string
	StartAt   time.Time
	EndAt     time.Time
	Status    string
	Rates     RateSnapshot
	CreatedAt time.Time
}

type BookedRangeSnapshot struct {
	BookingID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
}

func moneyPtr(minor *int64) *car.Money {
	if minor == nil {
		return nil
	}
	m := car.NewMoney(*minor)
	return &m
}
