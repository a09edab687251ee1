package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/workmesh/metadata-indexer/internal/config"
	"github.com/workmesh/metadata-indexer/internal/infrastructure/database"
	"github.com/workmesh/metadata-indexer/internal/infrastructure/providers"
	"github.com/workmesh/metadata-indexer/internal/infrastructure/repository"
	"github.com/workmesh/metadata-indexer/internal/present/rest"
	"github.com/workmesh/metadata-indexer/internal/service"
	"github.com/workmesh/metadata-indexer/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := providers.NewDatabase(conf.Server)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = providers.MigrateDatabase(db)
	if err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	mc := providers.NewMemcache(conf.Server.MemcachedAddr)
	cl := providers.NewClient(conf.Server)

	descriptionRepo := repository.NewDescriptionRepository(db, mc)
	credentialRepo := repository.NewCredentialRepository(db)

	signal := service.NewSignalService(rdb)
	document := usecase.NewDocumentUsecase(descriptionRepo, credentialRepo, signal)
	handler := rest.NewHandler(document, cl, signal)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if conf.Server.EnableTrace {
		shutdown, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to setup tracer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown()
		e.Use(otelecho.Middleware("workmesh"))
	}

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Addr))
}

func setupTracer(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("workmesh"),
		),
	)
	if err != nil {
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func() {
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}, nil
}
