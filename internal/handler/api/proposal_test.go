//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/handler/api"
	resdto "booking-calculator/internal/handler/dto/response"
	"booking-calculator/internal/handler/httperr"
	"booking-calculator/internal/pkg/errs"
	"booking-calculator/internal/usecase/commands"
	"booking-calculator/tests/common/builder"
	"booking-calculator/tests/common/httptest"
	"booking-calculator/tests/common/testutil"
	commandsmock "booking-calculator/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProposalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProposalCommands
	handler      *api.ProposalHandler
}

func (s *ProposalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProposalCommands(s.mockCtrl)
	s.handler = api.NewProposalHandler(s.mockCommands)

	s.router.POST("/cars/:id/interval-proposals", s.handler.Propose)
}

func (s *ProposalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProposalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProposalHandlerTestSuite))
}

type testCaseProposal struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func mustInterval(t *testing.T, start, end time.Time) booking.TimeInterval {
	t.Helper()
	iv, err := booking.NewTimeInterval(start, end)
	if err != nil {
		t.Fatal(err)
	}
	return iv
}

// ================================================================================
// TestPropose
// ================================================================================

func (s *ProposalHandlerTestSuite) TestPropose() {
	carID := uuid.New()
	url := "/cars/" + carID.String() + "/interval-proposals"

	reqBody := builder.NewProposalBuilder().BuildRequestDTO()
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	result := &commands.ProposeIntervalResult{
		Proposal: booking.Proposal{
			Interval:   mustInterval(s.T(), start, start.Add(60*time.Hour)),
			StartClock: "10:00",
			EndClock:   "22:00",
		},
		Payload: commands.CreateBookingPayload{
			CarID:     carID,
			StartDate: "2025-01-01",
			EndDate:   "2025-01-03",
			StartTime: "10:00",
			EndTime:   "22:00",
		},
	}

	s.Run("success: returns the interval and booking payload", func() {
		s.mockCommands.EXPECT().ProposeInterval(gomock.Any(), carID, reqBody.ToCommand()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.IntervalProposalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-01-01T10:00:00Z", response.Start)
		s.Equal("2025-01-03T22:00:00Z", response.End)
		s.Equal(60.0, response.DurationHours)
		s.False(response.SameDay)
		s.Equal(carID.String(), response.Booking.CarID)
		s.Equal("22:00", response.Booking.EndTime)
		s.Nil(response.Booking.CouponCode)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseProposal{
			{name: "missing field: startDate (required)", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: endDate (required)", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startTime (required)", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
			{name: "coupon length invalid (65 chars)", mutate: testutil.Field("couponCode", strings.Repeat("a", 65)), expectCode: http.StatusBadRequest},
			{name: "coupon length OK (64 chars)", mutate: testutil.Field("couponCode", strings.Repeat("a", 64)), expectCode: http.StatusOK},
			{name: "returnSlot omitted", mutate: testutil.Field("returnSlot", nil), expectCode: http.StatusOK},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().ProposeInterval(gomock.Any(), carID, gomock.Any()).
						Return(result, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 400 Bad Request for malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"startDate":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars/xyz/interval-proposals", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car id")
	})

	s.Run("error: 409 Conflict carries the conflicting interval", func() {
		conflict := mustInterval(s.T(), start.Add(24*time.Hour), start.Add(32*time.Hour))
		s.mockCommands.EXPECT().ProposeInterval(gomock.Any(), carID, gomock.Any()).
			Return(nil, &booking.OverlapError{Proposed: result.Proposal.Interval, Conflict: conflict}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Selected time overlaps an existing booking")
		var body struct {
			Detail httperr.ConflictDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("2025-01-02T10:00:00Z", body.Detail.ConflictStart)
		s.Equal("2025-01-02T18:00:00Z", body.Detail.ConflictEnd)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "outside booking window",
				commandsError:  booking.ErrOutsideWindow,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid booking selection",
			},
			{
				name:           "minimum duration",
				commandsError:  booking.ErrMinimumDuration,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid booking selection",
			},
			{
				name:           "car not found",
				commandsError:  errs.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to propose interval",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ProposeInterval(gomock.Any(), carID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
