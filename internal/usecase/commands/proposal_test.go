//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/infra"
	"booking-calculator/internal/pkg/clock"
	"booking-calculator/internal/pkg/errs"
	"booking-calculator/internal/usecase/commands"
	"booking-calculator/tests/common/builder"
	sharedmock "booking-calculator/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	today = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	errDBConnectionLost = errors.New("database connection lost")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func mustInterval(t *testing.T, start, end time.Time) booking.TimeInterval {
	t.Helper()
	iv, err := booking.NewTimeInterval(start, end)
	require.NoError(t, err)
	return iv
}

type proposalFixture struct {
	cars     *sharedmock.MockCarReader
	provider *sharedmock.MockBookedRangeProvider
	useCase  commands.ProposalCommands
}

func newProposalFixture(t *testing.T) proposalFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := proposalFixture{
		cars:     sharedmock.NewMockCarReader(ctrl),
		provider: sharedmock.NewMockBookedRangeProvider(ctrl),
	}
	f.useCase = commands.NewProposalUseCase(f.cars, f.provider, clock.NewMockClock(today), time.UTC, 3)
	return f
}

func TestProposalUseCase_ProposeInterval(t *testing.T) {
	ctx := context.Background()
	carSnap := builder.NewBookingBuilder().BuildCarSnapshot()
	carID := carSnap.ID

	t.Run("success: multi-day with half slot", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(carSnap, nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.CouponCode = strPtr("  SAVE10 ")
		}).BuildRequestDTO().ToCommand()

		res, err := f.useCase.ProposeInterval(ctx, carID, req)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), res.Proposal.Interval.Start())
		assert.Equal(t, time.Date(2025, 1, 3, 22, 0, 0, 0, time.UTC), res.Proposal.Interval.End())
		assert.False(t, res.Proposal.SameDay)
		assert.Equal(t, commands.CreateBookingPayload{
			CarID:      carID,
			StartDate:  "2025-01-01",
			EndDate:    "2025-01-03",
			StartTime:  "10:00",
			EndTime:    "22:00",
			CouponCode: strPtr("SAVE10"),
		}, res.Payload)
	})

	t.Run("success: full slot keeps the start time of day", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(carSnap, nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.ReturnSlot = "full"
			p.CouponCode = strPtr("   ")
		}).BuildRequestDTO().ToCommand()

		res, err := f.useCase.ProposeInterval(ctx, carID, req)

		require.NoError(t, err)
		assert.Equal(t, "2025-01-03", res.Payload.EndDate)
		assert.Equal(t, "10:00", res.Payload.EndTime)
		assert.Nil(t, res.Payload.CouponCode)
	})

	t.Run("success: same day uses the end time", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(carSnap, nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.EndDate = "2025-01-01"
			p.EndTime = strPtr("18:30")
		}).BuildRequestDTO().ToCommand()

		res, err := f.useCase.ProposeInterval(ctx, carID, req)

		require.NoError(t, err)
		assert.True(t, res.Proposal.SameDay)
		assert.Equal(t, 8*time.Hour+30*time.Minute, res.Proposal.Interval.Duration())
	})

	t.Run("error: overlap reports the conflict", func(t *testing.T) {
		f := newProposalFixture(t)
		conflict := mustInterval(t,
			time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 2, 18, 0, 0, 0, time.UTC))
		f.cars.EXPECT().FindByID(ctx, carID).Return(carSnap, nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet([]booking.TimeInterval{conflict}))

		res, err := f.useCase.ProposeInterval(ctx, carID, builder.NewProposalBuilder().BuildRequestDTO().ToCommand())

		assert.Nil(t, res)
		require.ErrorIs(t, err, booking.ErrOverlap)
		var overlap *booking.OverlapError
		require.True(t, errors.As(err, &overlap))
		assert.Equal(t, conflict.Start(), overlap.Conflict.Start())
	})

	t.Run("error: outside window is rejected before the car lookup", func(t *testing.T) {
		f := newProposalFixture(t)

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.StartDate = "2025-04-02"
			p.EndDate = "2025-04-03"
		}).BuildRequestDTO().ToCommand()

		_, err := f.useCase.ProposeInterval(ctx, carID, req)
		assert.ErrorIs(t, err, booking.ErrOutsideWindow)
	})

	t.Run("error: end date beyond the window", func(t *testing.T) {
		f := newProposalFixture(t)

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.StartDate = "2025-01-02"
			p.EndDate = "2030-06-01"
		}).BuildRequestDTO().ToCommand()

		res, err := f.useCase.ProposeInterval(ctx, carID, req)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, booking.ErrOutsideWindow)
	})

	t.Run("success: end date on the last day of the window", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(carSnap, nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.StartDate = "2025-03-30"
			p.EndDate = "2025-04-01"
			p.ReturnSlot = "none"
		}).BuildRequestDTO().ToCommand()

		res, err := f.useCase.ProposeInterval(ctx, carID, req)
		require.NoError(t, err)
		assert.Equal(t, "2025-04-01", res.Payload.EndDate)
	})

	t.Run("error: past start date", func(t *testing.T) {
		f := newProposalFixture(t)

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.StartDate = "2024-12-31"
		}).BuildRequestDTO().ToCommand()

		_, err := f.useCase.ProposeInterval(ctx, carID, req)
		assert.ErrorIs(t, err, booking.ErrOutsideWindow)
	})

	t.Run("error: car not found", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).
			Return(nil, infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "car not found", nil))

		_, err := f.useCase.ProposeInterval(ctx, carID, builder.NewProposalBuilder().BuildRequestDTO().ToCommand())
		assert.ErrorIs(t, err, errs.ErrCarNotFound)
	})

	t.Run("success: snapshot failure degrades to no conflicts", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(carSnap, nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		_, err := f.useCase.ProposeInterval(ctx, carID, builder.NewProposalBuilder().BuildRequestDTO().ToCommand())
		assert.NoError(t, err)
	})
}

func TestProposalUseCase_ProposeInterval_Validation(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()

	testCases := []struct {
		name        string
		mutate      func(*builder.ProposalBuilder)
		expectedErr error
	}{
		{
			name:        "malformed start date",
			mutate:      func(p *builder.ProposalBuilder) { p.StartDate = "01/01/2025" },
			expectedErr: booking.ErrInvalidDate,
		},
		{
			name:        "malformed start time",
			mutate:      func(p *builder.ProposalBuilder) { p.StartTime = "25:00" },
			expectedErr: booking.ErrInvalidClockTime,
		},
		{
			name:        "unknown slot",
			mutate:      func(p *builder.ProposalBuilder) { p.ReturnSlot = "evening" },
			expectedErr: booking.ErrUnknownReturnSlot,
		},
		{
			name:        "malformed end time",
			mutate:      func(p *builder.ProposalBuilder) { p.EndTime = strPtr("6pm") },
			expectedErr: booking.ErrInvalidClockTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newProposalFixture(t)
			req := builder.NewProposalBuilder().With(tc.mutate).BuildRequestDTO().ToCommand()

			res, err := f.useCase.ProposeInterval(ctx, carID, req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorIs(t, err, booking.ErrValidation)
		})
	}

	t.Run("end before start reaches the proposer", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(builder.NewBookingBuilder().BuildCarSnapshot(), nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.StartDate = "2025-01-05"
			p.EndDate = "2025-01-03"
		}).BuildRequestDTO().ToCommand()

		_, err := f.useCase.ProposeInterval(ctx, carID, req)
		assert.ErrorIs(t, err, booking.ErrEndBeforeStart)
	})

	t.Run("same day without end time", func(t *testing.T) {
		f := newProposalFixture(t)
		f.cars.EXPECT().FindByID(ctx, carID).Return(builder.NewBookingBuilder().BuildCarSnapshot(), nil)
		f.provider.EXPECT().Snapshot(ctx, carID).Return(booking.NewBookedRangeSet(nil))

		req := builder.NewProposalBuilder().With(func(p *builder.ProposalBuilder) {
			p.EndDate = p.StartDate
		}).BuildRequestDTO().ToCommand()

		_, err := f.useCase.ProposeInterval(ctx, carID, req)
		assert.ErrorIs(t, err, booking.ErrMinimumDuration)
	})
}
