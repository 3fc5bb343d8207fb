//go:build unit

package shared_test

import (
	"context"
	"errors"
	"testing"

	"booking-calculator/internal/infra"
	"booking-calculator/internal/pkg/errs"
	"booking-calculator/internal/usecase/shared"
	"booking-calculator/tests/common/builder"
	sharedmock "booking-calculator/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "not found", nil)
}

func dbFailure() error {
	return infra.WrapRepoErr(discardLogger(), infra.KindDBFailure, "query failed", errDBConnectionLost)
}

func TestLoadOwnedBooking(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	snap := builder.NewBookingBuilder().WithOwner(owner).BuildSnapshot()

	testCases := []struct {
		name        string
		actor       uuid.UUID
		readerErr   error
		expectedErr error
	}{
		{name: "success: owner", actor: owner},
		{name: "error: other user", actor: uuid.New(), expectedErr: errs.ErrBookingNotFound},
		{name: "error: missing", actor: owner, readerErr: notFound(), expectedErr: errs.ErrBookingNotFound},
		{name: "error: database", actor: owner, readerErr: dbFailure()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := sharedmock.NewMockBookingReader(ctrl)
			if tc.readerErr != nil {
				reader.EXPECT().FindByID(ctx, snap.ID).Return(nil, tc.readerErr)
			} else {
				reader.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
			}

			got, err := shared.LoadOwnedBooking(ctx, reader, tc.actor, snap.ID)

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, got)
			case tc.readerErr != nil:
				require.Error(t, err)
				assert.False(t, errors.Is(err, errs.ErrBookingNotFound))
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			default:
				require.NoError(t, err)
				assert.Equal(t, snap, got)
			}
		})
	}
}

func TestLoadCar(t *testing.T) {
	ctx := context.Background()
	carSnap := builder.NewBookingBuilder().BuildCarSnapshot()

	t.Run("success", func(t *testing.T) {
		reader := sharedmock.NewMockCarReader(gomock.NewController(t))
		reader.EXPECT().FindByID(ctx, carSnap.ID).Return(carSnap, nil)

		got, err := shared.LoadCar(ctx, reader, carSnap.ID)
		require.NoError(t, err)
		assert.Equal(t, carSnap, got)
	})

	t.Run("error: missing", func(t *testing.T) {
		reader := sharedmock.NewMockCarReader(gomock.NewController(t))
		reader.EXPECT().FindByID(ctx, carSnap.ID).Return(nil, notFound())

		_, err := shared.LoadCar(ctx, reader, carSnap.ID)
		assert.ErrorIs(t, err, errs.ErrCarNotFound)
	})

	t.Run("error: database", func(t *testing.T) {
		reader := sharedmock.NewMockCarReader(gomock.NewController(t))
		reader.EXPECT().FindByID(ctx, carSnap.ID).Return(nil, dbFailure())

		_, err := shared.LoadCar(ctx, reader, carSnap.ID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrCarNotFound)
	})
}

func TestRateSnapshot_RateCard(t *testing.T) {
	half := int64(45000)
	card, err := shared.RateSnapshot{PriceMinor: 100000, HalfDayPriceMinor: &half}.RateCard()
	require.NoError(t, err)
	assert.Equal(t, int64(100000), card.DailyRate().Minor())
	assert.Equal(t, int64(45000), card.HalfDayRate().Minor())

	zero := int64(0)
	card, err = shared.RateSnapshot{PriceMinor: 100000, DiscountPriceMinor: &zero}.RateCard()
	require.NoError(t, err)
	_, ok := card.DiscountedRate()
	assert.False(t, ok)
}
