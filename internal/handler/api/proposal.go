package api

import (
	"net/http"

	reqdto "booking-calculator/internal/handler/dto/request"
	resdto "booking-calculator/internal/handler/dto/response"
	"booking-calculator/internal/handler/httperr"
	"booking-calculator/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProposalHandler struct {
	cmds commands.ProposalCommands
}

func NewProposalHandler(cmds commands.ProposalCommands) *ProposalHandler {
	return &ProposalHandler{cmds: cmds}
}

// @Summary Propose interval
// @Description Turn the picker state into a booking interval and check it against reserved intervals
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body reqdto.ProposeIntervalRequest true "Picker state"
// @Success 200 {object} resdto.IntervalProposalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cars/{id}/interval-proposals [post]
func (h *ProposalHandler) Propose(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car id", nil)
		return
	}

	var req reqdto.ProposeIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ProposeInterval(c.Request.Context(), carID, req.ToCommand())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to propose interval")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposeIntervalResult(result))
}
