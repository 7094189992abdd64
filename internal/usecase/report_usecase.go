package usecase

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

// ReportUsecase is the read-only rollup surface for the admin console. It
// never mutates transaction state.
type ReportUsecase interface {
	GetSummary() (domain.EscrowSummary, error)
	GetStatistics(dateFrom, dateTo time.Time) (*domain.EscrowStatistics, error)
}

type DefaultReportUsecase struct {
	TransactionRepo domain.TransactionRepository
}

func NewDefaultReportUsecase(transactionRepo domain.TransactionRepository) *DefaultReportUsecase {
	return &DefaultReportUsecase{TransactionRepo: transactionRepo}
}

func (uc *DefaultReportUsecase) GetSummary() (domain.EscrowSummary, error) {
	transactions, err := uc.TransactionRepo.ListTransactions()
	if err != nil {
		return domain.EscrowSummary{}, err
	}
	return domain.Summarize(transactions), nil
}

func (uc *DefaultReportUsecase) GetStatistics(dateFrom, dateTo time.Time) (*domain.EscrowStatistics, error) {
	return uc.TransactionRepo.GetStatistics(dateFrom, dateTo)
}
