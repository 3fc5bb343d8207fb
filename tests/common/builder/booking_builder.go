//go:build unit || e2e

package builder

import (
	"time"

	"booking-calculator/internal/domain/booking"
	reqdto "booking-calculator/internal/handler/dto/request"
	"booking-calculator/internal/usecase/queries"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CarID        uuid.UUID
	CarName      string
	CarNumber    string
	StartAt      time.Time
	EndAt        time.Time
	Status       booking.Status
	PriceMinor   int64
	DiscountMin  *int64
	HalfDayMinor *int64
	CreatedAt    time.Time
}

// NewBookingBuilder returns an active two-day booking of a car priced at
// 1000 with an 800 discount and no stored half-day rate.
func NewBookingBuilder() *BookingBuilder {
	discount := int64(80000)
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CarID:       uuid.New(),
		CarName:     "Swift Dzire",
		CarNumber:   "KA-01-AB-1234",
		StartAt:     time.Date(2025, 1, 8, 18, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC),
		Status:      booking.StatusActive,
		PriceMinor:  100000,
		DiscountMin: &discount,
		CreatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithOwner(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) rates() shared.RateSnapshot {
	return shared.RateSnapshot{
		PriceMinor:         b.PriceMinor,
		DiscountPriceMinor: b.DiscountMin,
		HalfDayPriceMinor:  b.HalfDayMinor,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:        b.ID,
		UserID:    b.UserID,
		CarID:     b.CarID,
		CarName:   b.CarName,
		CarNumber: b.CarNumber,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		Status:    b.Status.String(),
		Rates:     b.rates(),
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCarSnapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		ID:     b.CarID,
		Name:   b.CarName,
		Number: b.CarNumber,
		Rates:  b.rates(),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		CarID:     b.CarID,
		CarName:   b.CarName,
		CarNumber: b.CarNumber,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		StartDate: booking.DateOf(b.StartAt, time.UTC).String(),
		EndDate:   booking.DateOf(b.EndAt, time.UTC).String(),
		StartTime: booking.FormatClock(b.StartAt),
		EndTime:   booking.FormatClock(b.EndAt),
		Status:    b.Status.String(),
		CanExtend: b.Status.CanExtend(),
		Rates: queries.RatesView{
			Price:       float64(b.PriceMinor) / 100,
			DailyRate:   800,
			HalfDayRate: 400,
		},
		CreatedAt: b.CreatedAt,
	}
}

type ProposalBuilder struct {
	StartDate  string
	EndDate    string
	StartTime  string
	EndTime    *string
	ReturnSlot string
	CouponCode *string
}

// NewProposalBuilder returns a two-day pick starting 2025-01-01 10:00 with
// the half slot.
func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-03",
		StartTime:  "10:00",
		ReturnSlot: booking.ReturnSlotHalf.String(),
	}
}

func (p *ProposalBuilder) With(mutate func(*ProposalBuilder)) *ProposalBuilder {
	mutate(p)
	return p
}

func (p *ProposalBuilder) BuildRequestDTO() *reqdto.ProposeIntervalRequest {
	return &reqdto.ProposeIntervalRequest{
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		ReturnSlot: p.ReturnSlot,
		CouponCode: p.CouponCode,
	}
}
