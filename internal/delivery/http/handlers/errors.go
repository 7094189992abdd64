package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	escrowResponse "github.com/sambashop/escrow-service/internal/delivery/http/dto/escrow/response"
	"github.com/sambashop/escrow-service/internal/domain"
)

// writeDomainError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body so persistence details never
// leak to the caller.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrDisputeNotFound):
		c.JSON(http.StatusNotFound, escrowResponse.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, escrowResponse.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrOverPayment):
		c.JSON(http.StatusUnprocessableEntity, escrowResponse.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrTooManyAttachments):
		c.JSON(http.StatusBadRequest, escrowResponse.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, escrowResponse.ErrorResponse{Error: "internal error"})
	}
}

func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, escrowResponse.ErrorResponse{Error: err.Error()})
}
