package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sambashop/escrow-service/internal/delivery/http/handlers"
)

// NewRouter wires every HTTP surface: merchant API under /v1/escrow, the
// unauthenticated public lookup, admin reports and Prometheus scraping.
func NewRouter(
	escrowHandler *handlers.EscrowHandler,
	disputeHandler *handlers.DisputeHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	escrow := v1.Group("/escrow")
	{
		escrow.POST("", escrowHandler.CreateTransaction)
		escrow.GET("/:reference", escrowHandler.GetTransaction)
		escrow.POST("/:reference/payments", escrowHandler.RecordPayment)
		escrow.POST("/:reference/fulfillment", escrowHandler.AdvanceFulfillment)
		escrow.POST("/:reference/delivery", escrowHandler.ConfirmDelivery)
		escrow.POST("/:reference/receipt", escrowHandler.ConfirmReceipt)
		escrow.POST("/:reference/disputes", disputeHandler.OpenDispute)
		escrow.POST("/:reference/disputes/resolve", disputeHandler.ResolveDispute)
		escrow.GET("/:reference/disputes", disputeHandler.GetDispute)
	}

	v1.GET("/public/escrow/:reference", escrowHandler.GetPublicTransaction)

	v1.GET("/disputes", disputeHandler.ListDisputes)

	reports := v1.Group("/reports")
	{
		reports.GET("/escrow/summary", reportHandler.GetSummary)
		reports.GET("/escrow/statistics", reportHandler.GetStatistics)
	}

	return router
}
