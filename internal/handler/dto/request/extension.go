package request

import (
	"booking-calculator/internal/usecase/commands"
)

// customDays is free text like the client's input field.
type QuoteExtensionRequest struct {
	Kind       string `json:"kind" binding:"required"`
	CustomDays string `json:"customDays"`
}

func (r *QuoteExtensionRequest) ToCommand() commands.QuoteExtensionRequest {
	return commands.QuoteExtensionRequest{
		Kind:       r.Kind,
		CustomDays: r.CustomDays,
	}
}
