package usecase

import (
	"github.com/sambashop/escrow-service/internal/domain"
	disputedto "github.com/sambashop/escrow-service/internal/usecase/dto/dispute"
)

func (disputeUc *DefaultDisputeUsecase) GetDisputeByReference(reference string) (*domain.Dispute, error) {
	return disputeUc.DisputeRepo.GetDisputeByReference(reference)
}

func (disputeUc *DefaultDisputeUsecase) ListDisputes(input *disputedto.ListDisputesInput) ([]*domain.Dispute, int64, error) {
	return disputeUc.DisputeRepo.ListDisputes(domain.DisputeFilter{
		Reference: input.Reference,
		Active:    input.Active,
		Page:      input.Page,
		Limit:     input.Limit,
	})
}
