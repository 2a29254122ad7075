package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/fullstack-web-apps/docs"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/app"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/config"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/handler"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/postgres"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/repo"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/service"
	"github.com/SergeyBogomolovv/fullstack-web-apps/migrations"
	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/trm"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// @title           Order Service API
// @version         1.0
// @description     HTTP API of the eyewear shop: placing, cancelling and tracking orders.
// @BasePath        /
func main() {
	conf := config.New(config.AppOrders)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db, migrations.FS, migrations.OrdersDir))

	catalog := entities.DefaultCatalog()
	orderRepo := repo.NewOrderRepo(db)
	txManager := trm.NewManager(db)

	orderService := service.NewOrderService(logger, txManager, orderRepo, service.OrderConfig{
		Catalog:   catalog,
		ShipAfter: conf.Orders.ShipAfter,
	})

	ordersHandler := handler.NewOrdersHandler(logger, orderService, catalog, conf.Orders.AdminPath)

	app := app.New(logger, conf)
	app.Router().Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	app.SetHTTPHandlers(ordersHandler)

	if conf.Orders.SweepInterval > 0 {
		app.SetStarters(service.NewSweeper(logger, orderService, conf.Orders.SweepInterval))
	}

	if conf.Kafka.Enabled {
		handler.RegisterKafkaMetrics()
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, catalog, orderService))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
