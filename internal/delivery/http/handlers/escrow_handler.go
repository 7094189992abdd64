package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	escrowRequest "github.com/sambashop/escrow-service/internal/delivery/http/dto/escrow/request"
	escrowResponse "github.com/sambashop/escrow-service/internal/delivery/http/dto/escrow/response"
	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/presentation"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
	usecase "github.com/sambashop/escrow-service/internal/usecase/escrow"
)

type EscrowHandler struct {
	escrowUsecase usecase.EscrowUsecase
}

func NewEscrowHandler(escrowUsecase usecase.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{escrowUsecase: escrowUsecase}
}

func (h *EscrowHandler) CreateTransaction(c *gin.Context) {
	var payload escrowRequest.CreateTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	tx, err := h.escrowUsecase.CreateTransaction(&escrowdto.CreateTransactionInput{
		Amount:      payload.Amount,
		Currency:    payload.Currency,
		ClientName:  payload.Client.Name,
		ClientPhone: payload.Client.Phone,
		Guarantees:  payload.Guarantees,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, escrowResponse.FromTransaction(tx))
}

// RecordPayment is the payment provider webhook. Replayed event ids return
// 200 with the current state so the provider stops retrying.
func (h *EscrowHandler) RecordPayment(c *gin.Context) {
	var payload escrowRequest.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	tx, err := h.escrowUsecase.RecordPayment(&escrowdto.RecordPaymentInput{
		Reference: c.Param("reference"),
		EventID:   payload.EventID,
		Amount:    payload.Amount,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, escrowResponse.FromTransaction(tx))
}

func (h *EscrowHandler) AdvanceFulfillment(c *gin.Context) {
	var payload escrowRequest.AdvanceFulfillmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	input := escrowdto.AdvanceFulfillmentInput{
		Reference:    c.Param("reference"),
		TargetStatus: domain.TransactionStatus(payload.TargetStatus),
	}
	if payload.Delivery != nil {
		delivery := escrowdto.DeliveryInput{
			Method:         payload.Delivery.Method,
			TrackingNumber: payload.Delivery.TrackingNumber,
			Carrier:        payload.Delivery.Carrier,
		}
		if payload.Delivery.EstimatedDate != nil {
			delivery.EstimatedDate = *payload.Delivery.EstimatedDate
		}
		input.Delivery = &delivery
	}

	if err := h.escrowUsecase.AdvanceFulfillment(&input); err != nil {
		writeDomainError(c, err)
		return
	}

	h.respondWithTransaction(c, input.Reference)
}

func (h *EscrowHandler) ConfirmDelivery(c *gin.Context) {
	var payload escrowRequest.ConfirmDeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	input := escrowdto.ConfirmDeliveryInput{Reference: c.Param("reference")}
	if payload.DeliveredAt != nil {
		input.DeliveredAt = *payload.DeliveredAt
	}

	if err := h.escrowUsecase.ConfirmDelivery(&input); err != nil {
		writeDomainError(c, err)
		return
	}

	h.respondWithTransaction(c, input.Reference)
}

// ConfirmReceipt is the buyer's explicit acceptance inside the
// verification window.
func (h *EscrowHandler) ConfirmReceipt(c *gin.Context) {
	reference := c.Param("reference")
	if err := h.escrowUsecase.ConfirmReceipt(reference); err != nil {
		writeDomainError(c, err)
		return
	}

	h.respondWithTransaction(c, reference)
}

func (h *EscrowHandler) GetTransaction(c *gin.Context) {
	tx, err := h.escrowUsecase.GetByReference(c.Param("reference"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, escrowResponse.FromTransaction(tx))
}

// GetPublicTransaction serves unauthenticated reference lookups with the
// masked projection.
func (h *EscrowHandler) GetPublicTransaction(c *gin.Context) {
	tx, err := h.escrowUsecase.GetByReference(c.Param("reference"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentation.ToPublicView(tx))
}

func (h *EscrowHandler) respondWithTransaction(c *gin.Context, reference string) {
	tx, err := h.escrowUsecase.GetByReference(reference)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, escrowResponse.FromTransaction(tx))
}
