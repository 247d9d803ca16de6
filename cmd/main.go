package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "futuresbot/internal/api/http"
	"futuresbot/internal/controllers"
	"futuresbot/internal/events"
	"futuresbot/internal/scheduler"
	"futuresbot/internal/usecasees"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	if err := app.initLogger(); err != nil {
		panic(err)
	}

	if app.Config.LokiAddr != "" {
		if err := app.initPromTail(); err != nil {
			app.Logger.WithError(err).Warn("promtail disabled")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orderRepo, err := app.initStorage(ctx)
	if err != nil {
		app.Logger.WithField("storage", app.Config.StorageDriver).WithError(err).Fatal("storage unavailable")
	}

	app.initMetrics()

	sink := events.NewMulti(app.Logger, events.NewLogSink(app.Logger))

	if app.Config.Telegram != nil {
		if err := app.initTgBot(); err != nil {
			app.Logger.WithError(err).Fatal("telegram bot")
		}

		sink.Add(events.NewTgmSink(controllers.NewTgmController(app.TGM, app.Config.Telegram.ChatID)))
	}

	if len(app.Config.KafkaBrokers) > 0 {
		app.initKafka()
		sink.Add(events.NewKafkaSink(app.Kafka))
	}

	app.Scheduler = scheduler.New(app.Config.SchedulerQueueSize, app.Logger)
	app.Scheduler.Start()

	orderUseCase := usecasees.NewOrderUseCase(
		orderRepo,
		app.Scheduler,
		sink,
		usecasees.SystemClock{},
		app.Metrics,
		app.Logger,
	)

	app.initHTTP()
	api.RegisterHTTPEndpoints(app.Fiber, app.Middleware, orderUseCase, app.Logger)

	go func() {
		app.Logger.WithField("addr", app.Config.HTTPAddr).Info("http server started")

		if err := app.Fiber.Listen(app.Config.HTTPAddr); err != nil {
			app.Logger.WithError(err).Error("http server stopped")
		}
		stop()
	}()

	<-ctx.Done()
	app.shutdown()
}

// shutdown releases collaborators in reverse start order.
func (a *App) shutdown() {
	a.Logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.Fiber.Shutdown(); err != nil {
		a.Logger.WithError(err).Error("http shutdown")
	}

	a.Scheduler.Stop()

	if err := a.Kafka.Close(); err != nil {
		a.Logger.WithError(err).Error("kafka close")
	}

	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			a.Logger.WithError(err).Error("mongo disconnect")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.WithError(err).Error("postgres close")
		}
	}
}
