package api

import (
	"net/http"

	reqdto "booking-calculator/internal/handler/dto/request"
	resdto "booking-calculator/internal/handler/dto/response"
	"booking-calculator/internal/handler/httperr"
	"booking-calculator/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Booked dates
// @Description Reload and return the reserved intervals of a car
// @Tags availability
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.BookedDatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id}/booked-dates [get]
func (h *AvailabilityHandler) BookedDates(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car id", nil)
		return
	}

	views, err := h.q.BookedRanges(c.Request.Context(), carID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load booked dates")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedRanges(views))
}

// @Summary Booking calendar
// @Description Booking window and fully or partly reserved days of a car
// @Tags availability
// @Produce json
// @Param id path string true "Car ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cars/{id}/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car id", nil)
		return
	}

	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rng, err := query.ToRange()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Invalid request")
		return
	}

	view, err := h.q.Calendar(c.Request.Context(), carID, rng)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load calendar")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}
