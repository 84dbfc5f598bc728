package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"meal-admin/internal/configs"
	"meal-admin/internal/repository"
	"meal-admin/internal/repository/postgres"
	"meal-admin/internal/scheduler"
)

// One-shot scheduler pass for operators and external cron jobs. Prints the
// run report as JSON; exits non-zero only on a full-run fatal error.
func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}

	db, err := postgres.ConnectDB(postgres.Config{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPass,
		DbName:   cfg.PostgresDB,
		SslMode:  cfg.PostgresSSLMode,
	})
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}

	repo := repository.NewRepository(db)
	driver := scheduler.NewDriver(repo.CustomerStore,
		scheduler.NewMaterializer(repo.OrderStore),
		scheduler.WithGate(scheduler.Gate{Threshold: time.Duration(cfg.EligibilityDays) * 24 * time.Hour}),
		scheduler.WithWindow(time.Duration(cfg.WindowDays)*24*time.Hour),
	)

	report, err := driver.RunOnce(context.Background(), time.Now().UTC())
	if err != nil {
		logrus.Fatalf("run failed: %s", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logrus.Fatalf("encode report: %s", err)
	}
}
