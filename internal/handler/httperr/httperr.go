package httperr

import (
	"errors"
	"net/http"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/domain/extension"
	"booking-calculator/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	ConflictStart string `json:"conflictStart"`
	ConflictEnd   string `json:"conflictEnd"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUsecaseError maps a command or query error onto a status code.
// fallbackMsg is shown for unexpected failures.
func AbortWithUsecaseError(c *gin.Context, err error, fallbackMsg string) {
	var overlap *booking.OverlapError
	switch {
	case errors.As(err, &overlap):
		AbortWithError(c, http.StatusConflict, err, "Selected time overlaps an existing booking", ConflictDetail{
			ConflictStart: overlap.Conflict.Start().Format(time.RFC3339),
			ConflictEnd:   overlap.Conflict.End().Format(time.RFC3339),
		})
	case errors.Is(err, booking.ErrValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking selection", err.Error())
	case errors.Is(err, extension.ErrUnknownKind), errors.Is(err, extension.ErrTooManyDays):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid extension option", err.Error())
	case errors.Is(err, errs.ErrExtensionNotOffered):
		AbortWithError(c, http.StatusConflict, err, "Extension is not available for this booking", nil)
	case errors.Is(err, errs.ErrCarNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
