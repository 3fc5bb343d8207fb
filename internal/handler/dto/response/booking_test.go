//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "booking-calculator/internal/handler/dto/response"
	"booking-calculator/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	discount := 800.0
	view := &queries.BookingView{
		ID:        uuid.MustParse("6f1c1f34-52a1-4a3b-9a55-1f2e3d4c5b6a"),
		CarID:     uuid.MustParse("0c6b6d7e-8f90-4a1b-8c2d-3e4f5a6b7c8d"),
		CarName:   "Swift Dzire",
		CarNumber: "KA-01-AB-1234",
		StartAt:   time.Date(2025, 1, 8, 18, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC),
		StartDate: "2025-01-08",
		EndDate:   "2025-01-10",
		StartTime: "18:00",
		EndTime:   "18:00",
		Status:    "active",
		CanExtend: true,
		Rates: queries.RatesView{
			Price:         1000,
			DiscountPrice: &discount,
			DailyRate:     800,
			HalfDayRate:   400,
		},
		CreatedAt: time.Unix(1735722000, 0),
	}

	got, err := resdto.FromBookingView(view)
	require.NoError(t, err)

	want := &resdto.BookingResponse{
		ID:        "6f1c1f34-52a1-4a3b-9a55-1f2e3d4c5b6a",
		CarID:     "0c6b6d7e-8f90-4a1b-8c2d-3e4f5a6b7c8d",
		CarName:   "Swift Dzire",
		CarNumber: "KA-01-AB-1234",
		StartAt:   "2025-01-08T18:00:00Z",
		EndAt:     "2025-01-10T18:00:00Z",
		StartDate: "2025-01-08",
		EndDate:   "2025-01-10",
		StartTime: "18:00",
		EndTime:   "18:00",
		Status:    "active",
		CanExtend: true,
		Rates: resdto.RatesResponse{
			Price:         1000,
			DiscountPrice: &discount,
			DailyRate:     800,
			HalfDayRate:   400,
		},
		CreatedAt: 1735722000,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromBookingView mismatch (-want +got):\n%s", diff)
	}
}
