package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/sambashop/escrow-service/internal/app/background"
	"github.com/sambashop/escrow-service/internal/config"
	httpapi "github.com/sambashop/escrow-service/internal/delivery/http"
	"github.com/sambashop/escrow-service/internal/delivery/http/handlers"
	publisher "github.com/sambashop/escrow-service/internal/infrastructure/kafka"
	"github.com/sambashop/escrow-service/internal/infrastructure/metrics"
	"github.com/sambashop/escrow-service/internal/infrastructure/migrate"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sambashop/escrow-service/internal/usecase"
	disputeUsecase "github.com/sambashop/escrow-service/internal/usecase/dispute"
	escrowUsecase "github.com/sambashop/escrow-service/internal/usecase/escrow"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init transition publisher
	transitionPublisher, err := publisher.NewKafkaPublisher(publisher.KafkaConfig{
		Host:       cfg.KafkaService.Host,
		Port:       cfg.KafkaService.Port,
		Topic:      cfg.KafkaService.Topic,
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	})
	if err != nil {
		log.Fatalf("failed to init kafka transition publisher: %v", err)
	}
	defer transitionPublisher.Close()

	escrowMetrics := metrics.NewEscrowMetrics()

	// Init repos
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)

	// Init usecases
	escrowUc := escrowUsecase.NewDefaultEscrowUsecase(
		transactionRepo,
		transitionPublisher,
		escrowMetrics,
		cfg.Escrow.VerificationWindow,
	)
	disputeUc := disputeUsecase.NewDefaultDisputeUsecase(
		transactionRepo,
		disputeRepo,
		transitionPublisher,
		escrowMetrics,
		cfg.Escrow.MaxEvidence,
	)
	reportUc := usecase.NewDefaultReportUsecase(transactionRepo)

	// Background verification sweep
	tasks := background.NewBackgroundTasks(escrowUc, cfg.Escrow.SweepInterval)
	tasks.StartAll(context.Background())

	router := httpapi.NewRouter(
		handlers.NewEscrowHandler(escrowUc),
		handlers.NewDisputeHandler(disputeUc),
		handlers.NewReportHandler(reportUc),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
