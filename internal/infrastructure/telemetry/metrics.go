package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/infrastructure/config"
)

// MeterProvider manages the OTel meter lifecycle
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	log      *zap.Logger
}

// NewMeterProvider creates a meter provider with a periodic OTLP gRPC
// reader, or a no-op when telemetry is disabled
func NewMeterProvider(ctx context.Context, cfg config.TelemetryConfig, log *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{log: log}
	if !cfg.Enabled {
		log.Info("metrics disabled")
		return mp, nil
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp metric exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(60*time.Second),
		)),
	)
	otel.SetMeterProvider(mp.provider)

	log.Info("metrics initialized", zap.String("endpoint", cfg.OTLPEndpoint))
	return mp, nil
}

// Meter returns a named meter
func (mp *MeterProvider) Meter(name string) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name)
	}
	return mp.provider.Meter(name)
}

// Shutdown flushes pending metrics and stops the provider
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return mp.provider.Shutdown(shutdownCtx)
}

// BusinessMetrics holds counters for domain operations
type BusinessMetrics struct {
	StockMovements    metric.Int64Counter
	BookingsCancelled metric.Int64Counter
	PaymentsVerified  metric.Int64Counter
}

// NewBusinessMetrics registers the domain counters on a meter
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	movements, err := meter.Int64Counter("stayhub.inventory.movements",
		metric.WithDescription("Stock movements recorded"),
		metric.WithUnit("{movement}"))
	if err != nil {
		return nil, err
	}
	cancelled, err := meter.Int64Counter("stayhub.bookings.cancelled",
		metric.WithDescription("Bookings cancelled"),
		metric.WithUnit("{booking}"))
	if err != nil {
		return nil, err
	}
	payments, err := meter.Int64Counter("stayhub.payments.verified",
		metric.WithDescription("Vendor order payments verified"),
		metric.WithUnit("{payment}"))
	if err != nil {
		return nil, err
	}
	return &BusinessMetrics{
		StockMovements:    movements,
		BookingsCancelled: cancelled,
		PaymentsVerified:  payments,
	}, nil
}

// Common attribute keys
var (
	AttrMovementType  = attribute.Key("movement_type")
	AttrPaymentMethod = attribute.Key("payment_method")
)
