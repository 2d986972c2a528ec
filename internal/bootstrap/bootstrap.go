package bootstrap

import (
	"context"
	"fmt"

	"answering-service/internal/config"
	"answering-service/internal/events"
	"answering-service/internal/observability"
	"answering-service/internal/store"

	analyticsHandler "answering-service/internal/analytics/handler"
	analyticsProcessor "answering-service/internal/analytics/processor"
	authHandler "answering-service/internal/auth/handler"
	authProcessor "answering-service/internal/auth/processor"
	callLogsHandler "answering-service/internal/calllogs/handler"
	callLogsProcessor "answering-service/internal/calllogs/processor"
	kafkaClient "answering-service/internal/clients/kafka"
	voiceCallHandler "answering-service/internal/voicecall/handler"
	voiceCallProcessor "answering-service/internal/voicecall/processor"
	"answering-service/internal/voicecall/twilio"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Logger  *observability.Logger
	Metrics *observability.Metrics

	// Handlers
	AuthHandler      authHandler.Handler
	VoiceCallHandler voiceCallHandler.Handler
	CallLogsHandler  callLogsHandler.Handler
	AnalyticsHandler analyticsHandler.Handler

	// Kafka clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}

	mode, err := voiceCallProcessor.ParseCorrelationMode(cfg.Twilio.CorrelationMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CORRELATION_MODE: %w", err)
	}

	// Initialize database store
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Migrate(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Kafka producer
	var producer events.Producer
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Info(ctx, "KAFKA_BROKERS not set, call events will not be published")
	}
	publisher := events.NewPublisher(producer, logger)

	signatures := twilio.NewSignatureValidator(cfg.Twilio.AuthToken, cfg.Twilio.PublicBaseURL)
	if signatures == nil {
		logger.Warn(ctx, "TWILIO_AUTH_TOKEN not set, webhook signatures will not be validated")
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.DashboardJWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize voice call processor and handler
	voiceCallProc := voiceCallProcessor.New(&deps.Store, publisher, deps.Metrics, mode, logger)
	deps.VoiceCallHandler = voiceCallHandler.New(voiceCallProc, signatures, cfg.Twilio.MediaRelayURL, deps.Metrics, logger)

	// Initialize call log processor and handler
	callLogsProc := callLogsProcessor.New(&deps.Store, logger)
	deps.CallLogsHandler = callLogsHandler.New(callLogsProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	logger.Info(ctx, fmt.Sprintf("dependencies initialized (correlation mode %s)", mode))
	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.Store.DB() != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
