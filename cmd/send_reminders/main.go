package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/jvz16/SalonBookingService/internal/config"
	appointmentRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/appointment"
	whatsappClient "github.com/jvz16/SalonBookingService/internal/integrations/whatsapp"
	sendRemindersUC "github.com/jvz16/SalonBookingService/internal/usecase/send_reminders"
	"github.com/jvz16/SalonBookingService/pkg/logger"
)

// Команда рассылки напоминаний о завтрашних записях.
// Запускается по расписанию (cron), один прогон на запуск.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reminder run...")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	notifier := whatsappClient.NewClient(whatsappClient.Config{
		Enabled:        cfg.WhatsApp.Enabled,
		BaseURL:        cfg.WhatsApp.BaseURL,
		From:           cfg.WhatsApp.From,
		OwnerNumber:    cfg.WhatsApp.OwnerNumber,
		SalonName:      cfg.WhatsApp.SalonName,
		DefaultCountry: cfg.WhatsApp.DefaultCountry,
		Timeout:        time.Duration(cfg.WhatsApp.Timeout) * time.Second,
	}, log)

	useCase := sendRemindersUC.NewUseCase(
		appointmentRepo.NewRepository(db),
		notifier,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := useCase.Execute(ctx)
	if err != nil {
		log.Fatal("Reminder run failed: %v", err)
	}

	log.Info("Reminder run finished: total=%d, sent=%d, failed=%d", result.Total, result.Sent, result.Failed)

	if result.Failed > 0 {
		os.Exit(1)
	}
}
