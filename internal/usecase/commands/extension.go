package commands

//go:generate mockgen -source=extension.go -destination=../../../tests/mock/commands/extension.go -package=commandsmock

import (
	"context"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/domain/car"
	"booking-calculator/internal/domain/extension"
	"booking-calculator/internal/infra/snapshot"
	"booking-calculator/internal/pkg/errs"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
)

const paymentReferencePrefix = "pay_"

type QuoteExtensionRequest struct {
	Kind       string
	CustomDays string
}

// TopUpPayload mirrors the booking API's apply-top-up request.
type TopUpPayload struct {
	BookingID          uuid.UUID
	ExtensionTime      int
	PaymentReferenceID string
}

type QuoteExtensionResult struct {
	BookingID   uuid.UUID
	Kind        extension.Kind
	Days        int
	CurrentEnd  time.Time
	Quote       extension.Quote
	HalfDayRate car.Money
	DailyRate   car.Money
	TopUp       *TopUpPayload
}

type ExtensionCommands interface {
	QuoteExtension(ctx context.Context, actor uuid.UUID, bookingID uuid.UUID, req QuoteExtensionRequest) (*QuoteExtensionResult, error)
	// SweepMemos drops quote memos of bookings that were not quoted recently.
	SweepMemos() int
}

type extensionUseCaseImpl struct {
	bookings shared.BookingReader
	memos    snapshot.Storage[uuid.UUID, *extension.Memo]
	loc      *time.Location
	newRef   func() string
}

func NewExtensionUseCase(bookings shared.BookingReader, memos snapshot.Storage[uuid.UUID, *extension.Memo], loc *time.Location) ExtensionCommands {
	return &extensionUseCaseImpl{
		bookings: bookings,
		memos:    memos,
		loc:      loc,
		newRef:   newPaymentReference,
	}
}

func (uc *extensionUseCaseImpl) QuoteExtension(ctx context.Context, actor uuid.UUID, bookingID uuid.UUID, req QuoteExtensionRequest) (*QuoteExtensionResult, error) {
	snap, err := shared.LoadOwnedBooking(ctx, uc.bookings, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status(snap.Status).CanExtend() {
		return nil, errs.ErrExtensionNotOffered
	}

	extReq, err := extension.ParseRequest(req.Kind, req.CustomDays)
	if err != nil {
		return nil, err
	}

	rates, err := snap.Rates.RateCard()
	if err != nil {
		return nil, errs.Wrap(err, "booking car has an invalid rate card")
	}

	b := extension.Booking{EndDate: snap.EndAt.In(uc.loc), Rate: rates}
	quote := uc.memoFor(snap.ID).Quote(b, extReq)

	result := &QuoteExtensionResult{
		BookingID:   snap.ID,
		Kind:        extReq.Kind(),
		Days:        extReq.Days(),
		CurrentEnd:  b.EndDate,
		Quote:       quote,
		HalfDayRate: rates.HalfDayRate(),
		DailyRate:   rates.DailyRate(),
	}
	if quote.Submittable() {
		result.TopUp = &TopUpPayload{
			BookingID:          snap.ID,
			ExtensionTime:      quote.AdditionalHours,
			PaymentReferenceID: uc.newRef(),
		}
	}
	return result, nil
}

func (uc *extensionUseCaseImpl) SweepMemos() int {
	return uc.memos.Sweep()
}

// memoFor touches the memo so it outlives the sweep while the user keeps
// editing the extension form.
func (uc *extensionUseCaseImpl) memoFor(bookingID uuid.UUID) *extension.Memo {
	return uc.memos.GetOrSet(bookingID, extension.NewMemo)
}

func newPaymentReference() string {
	return paymentReferencePrefix + uuid.NewString()
}
