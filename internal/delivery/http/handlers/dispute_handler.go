package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	disputeRequest "github.com/sambashop/escrow-service/internal/delivery/http/dto/dispute/request"
	disputeResponse "github.com/sambashop/escrow-service/internal/delivery/http/dto/dispute/response"
	"github.com/sambashop/escrow-service/internal/domain"
	usecase "github.com/sambashop/escrow-service/internal/usecase/dispute"
	disputedto "github.com/sambashop/escrow-service/internal/usecase/dto/dispute"
)

type DisputeHandler struct {
	disputeUsecase usecase.DisputeUsecase
}

func NewDisputeHandler(disputeUsecase usecase.DisputeUsecase) *DisputeHandler {
	return &DisputeHandler{disputeUsecase: disputeUsecase}
}

func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	var payload disputeRequest.OpenDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	dispute, err := h.disputeUsecase.OpenDispute(&disputedto.OpenDisputeInput{
		Reference:   c.Param("reference"),
		Reason:      payload.Reason,
		Description: payload.Description,
		Evidence:    payload.Evidence,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, disputeResponse.FromDispute(dispute))
}

func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	var payload disputeRequest.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	reference := c.Param("reference")
	if err := h.disputeUsecase.ResolveDispute(reference, domain.DisputeOutcome(payload.Outcome)); err != nil {
		writeDomainError(c, err)
		return
	}

	dispute, err := h.disputeUsecase.GetDisputeByReference(reference)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, disputeResponse.FromDispute(dispute))
}

func (h *DisputeHandler) GetDispute(c *gin.Context) {
	dispute, err := h.disputeUsecase.GetDisputeByReference(c.Param("reference"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, disputeResponse.FromDispute(dispute))
}

func (h *DisputeHandler) ListDisputes(c *gin.Context) {
	input := disputedto.ListDisputesInput{}

	if reference := c.Query("reference"); reference != "" {
		input.Reference = &reference
	}
	if rawActive := c.Query("active"); rawActive != "" {
		active, err := strconv.ParseBool(rawActive)
		if err != nil {
			writeBadRequest(c, err)
			return
		}
		input.Active = &active
	}
	input.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	input.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	disputes, total, err := h.disputeUsecase.ListDisputes(&input)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := disputeResponse.DisputeListResponse{
		Disputes: make([]disputeResponse.DisputeResponse, len(disputes)),
		Total:    total,
		Page:     input.Page,
		Limit:    input.Limit,
	}
	for i, dispute := range disputes {
		resp.Disputes[i] = disputeResponse.FromDispute(dispute)
	}

	c.JSON(http.StatusOK, resp)
}
