package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	escrowResponse "github.com/sambashop/escrow-service/internal/delivery/http/dto/escrow/response"
	"github.com/sambashop/escrow-service/internal/usecase"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

type summaryResponse struct {
	Pending         int64   `json:"pending"`
	Secured         int64   `json:"secured"`
	InTransit       int64   `json:"in_transit"`
	Delivered       int64   `json:"delivered"`
	Completed       int64   `json:"completed"`
	Disputed        int64   `json:"disputed"`
	Refunded        int64   `json:"refunded"`
	TotalAmount     float64 `json:"total_amount"`
	TotalPaidAmount float64 `json:"total_paid_amount"`
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportUsecase.GetSummary()
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		Pending:         summary.Pending,
		Secured:         summary.Secured,
		InTransit:       summary.InTransit,
		Delivered:       summary.Delivered,
		Completed:       summary.Completed,
		Disputed:        summary.Disputed,
		Refunded:        summary.Refunded,
		TotalAmount:     summary.TotalAmount,
		TotalPaidAmount: summary.TotalPaidAmount,
	})
}

type statisticsResponse struct {
	TotalTransactions     int64   `json:"total_transactions"`
	CompletedTransactions int64   `json:"completed_transactions"`
	DisputedTransactions  int64   `json:"disputed_transactions"`
	RefundedTransactions  int64   `json:"refunded_transactions"`
	TotalAmount           float64 `json:"total_amount"`
	TotalPaidAmount       float64 `json:"total_paid_amount"`
}

// GetStatistics serves the date-bounded rollup. Bounds default to the last
// 30 days when omitted.
func (h *ReportHandler) GetStatistics(c *gin.Context) {
	now := time.Now()
	dateFrom := now.AddDate(0, 0, -30)
	dateTo := now

	if raw := c.Query("date_from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, escrowResponse.ErrorResponse{Error: "invalid date_from"})
			return
		}
		dateFrom = parsed
	}
	if raw := c.Query("date_to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, escrowResponse.ErrorResponse{Error: "invalid date_to"})
			return
		}
		dateTo = parsed
	}

	stats, err := h.reportUsecase.GetStatistics(dateFrom, dateTo)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, statisticsResponse{
		TotalTransactions:     stats.TotalTransactions,
		CompletedTransactions: stats.CompletedTransactions,
		DisputedTransactions:  stats.DisputedTransactions,
		RefundedTransactions:  stats.RefundedTransactions,
		TotalAmount:           stats.TotalAmount,
		TotalPaidAmount:       stats.TotalPaidAmount,
	})
}
