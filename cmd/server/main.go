package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"meal-admin/internal/configs"
	httpdelivery "meal-admin/internal/delivery/http"
	"meal-admin/internal/delivery/kafka"
	"meal-admin/internal/repository"
	"meal-admin/internal/repository/postgres"
	"meal-admin/internal/scheduler"
	"meal-admin/internal/service"
)

// @title meal-admin service
// @version 1.0
// @description Food-delivery back-office with an auto-order scheduler: customer subscriptions, order lifecycle, and an operator-triggered scheduler run.

// @host localhost:8081
// @basePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	logrus.Print("connected to postgres")

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}

	repo := repository.NewRepository(db)

	mat := scheduler.NewMaterializer(repo.OrderStore,
		scheduler.WithTimePolicy(scheduler.WindowedDeliveryTime(
			time.Duration(cfg.DeliveryStartHour)*time.Hour,
			time.Duration(cfg.DeliveryEndHour)*time.Hour,
			rand.New(rand.NewSource(time.Now().UnixNano())),
		)),
	)

	driverOpts := []scheduler.DriverOption{
		scheduler.WithGate(scheduler.Gate{Threshold: time.Duration(cfg.EligibilityDays) * 24 * time.Hour}),
		scheduler.WithWindow(time.Duration(cfg.WindowDays) * 24 * time.Hour),
	}

	if cfg.KafkaBrokers != "" {
		pub, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			logrus.Fatalf("kafka publisher connect: %s", err)
		}
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		driverOpts = append(driverOpts, scheduler.WithEvents(pub))
		logrus.Print("order event publishing enabled")
	}

	driver := scheduler.NewDriver(repo.CustomerStore, mat, driverOpts...)
	svc := service.NewService(repo, driver)

	timer := cron.New()
	if _, err := timer.AddFunc(cfg.SchedulerSpec, func() {
		rep, err := svc.AutoOrders.RunNow(ctx)
		if err != nil {
			logrus.Errorf("scheduled run failed: %v", err)
			return
		}
		logrus.Printf("scheduled run: scanned=%d eligible=%d created=%d",
			rep.Scanned, rep.Eligible, rep.OrdersCreated)
	}); err != nil {
		logrus.Fatalf("invalid scheduler spec %q: %s", cfg.SchedulerSpec, err)
	}
	timer.Start()
	logrus.Printf("scheduler timer started (%s)", cfg.SchedulerSpec)

	h := httpdelivery.NewHandler(svc, cfg.JWTSecret)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	// Cancel drains any in-flight run (the driver finishes its current
	// customer and stops picking up new ones), then wait for the cron
	// goroutines themselves.
	cancel()
	<-timer.Stop().Done()

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}
