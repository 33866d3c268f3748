package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "notifyr/internal/api/handlers/notification"
	tmplhandler "notifyr/internal/api/handlers/template"
	"notifyr/internal/api/router"
	"notifyr/internal/api/server"
	"notifyr/internal/config"
	"notifyr/internal/model"
	notifrepo "notifyr/internal/repository/notification"
	tmplrepo "notifyr/internal/repository/template"
	"notifyr/internal/retrier"
	"notifyr/internal/scheduler"
	"notifyr/internal/sender"
	notifsvc "notifyr/internal/service/notification"
	tmplsvc "notifyr/internal/service/template"
	"notifyr/internal/worker"
	"notifyr/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	notificationRepo := notifrepo.NewRepository(db)
	templateRepo := tmplrepo.NewRepository(db)

	var emailTransport sender.Transport
	if cfg.Email.Enabled {
		emailTransport = email.NewClient(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
			cfg.Email.FromName,
		)
	} else {
		zlog.Logger.Warn().Msg("email transport disabled, using simulated delivery")
		emailTransport = email.NewSimulator(cfg.Email.SimulatedLatency, cfg.Email.SimulatedSuccessRate)
	}

	transports := map[model.Channel]sender.Transport{
		model.ChannelEmail: emailTransport,
	}

	pool := worker.NewPool(cfg.Workers.Count, cfg.Workers.QueueSize)
	snd := sender.NewSender(notificationRepo, transports, rdb, cfg.Retry)
	rtr := retrier.NewRetrier(notificationRepo, snd, pool, cfg.Delivery.MaxBackoff)

	sched := scheduler.New(scheduler.Config{
		PendingInterval: cfg.Scheduler.PendingInterval,
		RetryInterval:   cfg.Scheduler.RetryInterval,
		StatsInterval:   cfg.Scheduler.StatsInterval,
		BatchSize:       cfg.Scheduler.BatchSize,
	}, notificationRepo, snd, rtr, pool)

	go pool.Run(ctx)
	go sched.Run(ctx)

	notificationService := notifsvc.NewService(notificationRepo, templateRepo, rdb, cfg.Delivery.MaxRetries)
	templateService := tmplsvc.NewService(templateRepo)

	r := router.New(
		notifhandler.NewHandler(notificationService, val, cfg),
		tmplhandler.NewHandler(templateService, val),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}
