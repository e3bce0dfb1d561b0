package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/divine-encounter/event-registration/api"
	"github.com/divine-encounter/event-registration/dynamo"
	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/paystack"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	paystackTimeout = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env, err := cfg.Environment()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	shutdownTracing, err := setupTracing(ctx, cfg.OtelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		err := shutdownTracing(context.Background())
		if err != nil {
			logger.Error("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	})
	if cfg.DynamoEndpoint != "" {
		err = dynamo.EnsureTable(ctx, dynamoClient, cfg.DynamoTableName)
		if err != nil {
			return err
		}
	}
	db := dynamo.NewDB(dynamoClient, cfg.DynamoTableName)

	event, err := events.EnsureEvent(ctx, db, events.DivineEncounter2026(cfg.EventID))
	if err != nil {
		return fmt.Errorf("failed to ensure event exists: %w", err)
	}
	logger.Info("Taking registrations", slog.String("event", event.Name), slog.String("eventId", event.ID.String()))

	secretKey, err := paystackSecretKey(ctx, cfg, ssm.NewFromConfig(awsCfg))
	if err != nil {
		return err
	}

	paystackClient := paystack.NewClient(&http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   paystackTimeout,
	}, cfg.PaystackBaseURL, secretKey)

	eventAPI := api.NewAPI(db, logger, env, api.Settings{
		EventID:           cfg.EventID,
		PaystackSecretKey: secretKey,
		EmailFromAddress:  cfg.EmailFromAddress,
		PublicOrigin:      cfg.PublicOrigin,
		AllowedOrigins:    cfg.AllowedOrigins,
	}, paystackClient, createEmailSender(awsCfg, logger, env))

	h, err := eventAPI.Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           h,
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", s.Addr))
		serveErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
