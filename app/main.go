package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryotel "github.com/getsentry/sentry-go/otel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"

	routerlog "github.com/prismswap/swaprouter/log"
)

// @title           Prismswap Router API
// @version         1.0
func main() {
	configPath := flag.String("config", "config.json", "config file location")

	hostName := flag.String("host", "router", "the name of the host")

	isDebug := flag.Bool("debug", false, "debug mode")

	// Parse the command-line arguments
	flag.Parse()

	if *isDebug {
		log.Println("Service RUN on DEBUG mode")
	}

	fmt.Println("configPath", *configPath)
	fmt.Println("hostName", *hostName)

	config, err := loadConfig(*configPath)
	if err != nil {
		panic(err)
	}

	// Handle SIGINT and SIGTERM signals to initiate shutdown
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		if err := recover(); err != nil {
			log.Println(err)
			exitChan <- syscall.SIGTERM
		}
	}()

	if config.OTEL.DSN != "" {
		otelConfig := config.OTEL

		err = sentry.Init(sentry.ClientOptions{
			ServerName:       *hostName,
			Dsn:              otelConfig.DSN,
			SampleRate:       otelConfig.SampleRate,
			EnableTracing:    otelConfig.EnableTracing,
			Debug:            *isDebug,
			TracesSampleRate: otelConfig.SampleRate,
			Environment:      otelConfig.Environment,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)

		sentry.CaptureMessage("swap router started")

		initOTELTracer(*hostName)
	}

	logger, err := routerlog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		panic(fmt.Errorf("error while creating logger: %s", err))
	}
	logger.Info("Starting swap router")

	// Use context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	routerServer, err := NewRouterServer(ctx, config, logger)
	if err != nil {
		panic(err)
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		<-exitChan
		cancel() // Trigger shutdown

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := routerServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down", zap.Error(err))
		}
	}()

	if err := routerServer.Start(ctx); err != nil {
		panic(err)
	}

	<-shutdownDone
}

// initOTELTracer initializes the OTEL tracer
// and wires it up with the Sentry exporter.
func initOTELTracer(hostName string) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("stdouttrace.New: %v", err)
	}

	resource, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(hostName),
		),
	)
	if err != nil {
		log.Fatalf("resource.New: %v", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource),
		sdktrace.WithSpanProcessor(sentryotel.NewSentrySpanProcessor()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(sentryotel.NewSentryPropagator())
}
