package api

import (
	"errors"
	"net/http"

	reqdto "booking-calculator/internal/handler/dto/request"
	resdto "booking-calculator/internal/handler/dto/response"
	"booking-calculator/internal/handler/httperr"
	"booking-calculator/internal/handler/middleware"
	"booking-calculator/internal/usecase/commands"
	"booking-calculator/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoUserInContext = errors.New("authenticated user missing from context")

type BookingHandler struct {
	cmds commands.ExtensionCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.ExtensionCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Get booking
// @Description Booking schedule, status and whether an extension is offered
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load booking")
		return
	}

	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote extension
// @Description Price an extension of an active booking and build the top-up payload
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.QuoteExtensionRequest true "Extension option"
// @Success 200 {object} resdto.ExtensionQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/extension-quotes [post]
func (h *BookingHandler) QuoteExtension(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	var req reqdto.QuoteExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.QuoteExtension(c.Request.Context(), userID, id, req.ToCommand())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to quote extension")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteExtensionResult(result))
}
