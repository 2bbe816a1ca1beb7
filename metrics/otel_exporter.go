package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	// OTel meters and instruments
	meter             metric.Meter
	copiesGauge       metric.Int64ObservableGauge
	titlesGauge       metric.Int64ObservableGauge
	borrowCountGauge  metric.Int64ObservableGauge
	overdueGauge      metric.Int64ObservableGauge
	reservationsGauge metric.Int64ObservableGauge
	finesCountGauge   metric.Int64ObservableGauge
	finesAmountGauge  metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Each exporter owns its registry so several can live in one process
	registry := promclient.NewRegistry()

	// Create Prometheus exporter
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"library-api",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Copies gauge (total, available, on loan)
	oe.copiesGauge, err = oe.meter.Int64ObservableGauge(
		"library.books.copies",
		metric.WithDescription("Number of book copies by state"),
		metric.WithUnit("{copies}"),
		metric.WithInt64Callback(oe.observeCopies),
	)
	if err != nil {
		return fmt.Errorf("creating copies gauge: %w", err)
	}

	oe.titlesGauge, err = oe.meter.Int64ObservableGauge(
		"library.books.titles",
		metric.WithDescription("Number of titles in the catalog"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeTitles),
	)
	if err != nil {
		return fmt.Errorf("creating titles gauge: %w", err)
	}

	// Borrow count gauge (per status)
	oe.borrowCountGauge, err = oe.meter.Int64ObservableGauge(
		"library.borrows.count",
		metric.WithDescription("Number of borrows by status"),
		metric.WithUnit("{borrows}"),
		metric.WithInt64Callback(oe.observeBorrowCounts),
	)
	if err != nil {
		return fmt.Errorf("creating borrow count gauge: %w", err)
	}

	oe.overdueGauge, err = oe.meter.Int64ObservableGauge(
		"library.borrows.overdue",
		metric.WithDescription("Number of open borrows past their due date"),
		metric.WithUnit("{borrows}"),
		metric.WithInt64Callback(oe.observeOverdue),
	)
	if err != nil {
		return fmt.Errorf("creating overdue gauge: %w", err)
	}

	// Reservation count gauge (per status)
	oe.reservationsGauge, err = oe.meter.Int64ObservableGauge(
		"library.reservations.count",
		metric.WithDescription("Number of reservations by status"),
		metric.WithUnit("{reservations}"),
		metric.WithInt64Callback(oe.observeReservationCounts),
	)
	if err != nil {
		return fmt.Errorf("creating reservation count gauge: %w", err)
	}

	// Fines gauges (per payment state)
	oe.finesCountGauge, err = oe.meter.Int64ObservableGauge(
		"library.fines.count",
		metric.WithDescription("Number of fines by payment state"),
		metric.WithUnit("{fines}"),
		metric.WithInt64Callback(oe.observeFineCounts),
	)
	if err != nil {
		return fmt.Errorf("creating fines count gauge: %w", err)
	}

	oe.finesAmountGauge, err = oe.meter.Int64ObservableGauge(
		"library.fines.amount",
		metric.WithDescription("Sum of fine amounts by payment state"),
		metric.WithInt64Callback(oe.observeFineAmounts),
	)
	if err != nil {
		return fmt.Errorf("creating fines amount gauge: %w", err)
	}

	return nil
}

// observeCopies is a callback that reports copy counters
func (oe *OTelExporter) observeCopies(ctx context.Context, observer metric.Int64Observer) error {
	inventory, err := oe.collector.GetInventory(ctx)
	if err != nil {
		return err
	}

	observer.Observe(inventory.TotalCopies, metric.WithAttributes(
		attribute.String("copies.state", "total"),
	))
	observer.Observe(inventory.AvailableCopies, metric.WithAttributes(
		attribute.String("copies.state", "available"),
	))
	observer.Observe(inventory.OnLoan, metric.WithAttributes(
		attribute.String("copies.state", "on_loan"),
	))

	return nil
}

func (oe *OTelExporter) observeTitles(ctx context.Context, observer metric.Int64Observer) error {
	inventory, err := oe.collector.GetInventory(ctx)
	if err != nil {
		return err
	}
	observer.Observe(inventory.Titles)
	return nil
}

// observeBorrowCounts is a callback that reports borrow counts by status
func (oe *OTelExporter) observeBorrowCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetBorrowCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("borrow.status", status),
		))
	}

	return nil
}

func (oe *OTelExporter) observeOverdue(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetOverdueBorrows(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

// observeReservationCounts is a callback that reports reservation counts by status
func (oe *OTelExporter) observeReservationCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetReservationCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("reservation.status", status),
		))
	}

	return nil
}

func (oe *OTelExporter) observeFineCounts(ctx context.Context, observer metric.Int64Observer) error {
	fines, err := oe.collector.GetFines(ctx)
	if err != nil {
		return err
	}

	observer.Observe(fines.Unpaid, metric.WithAttributes(attribute.Bool("fine.paid", false)))
	observer.Observe(fines.Paid, metric.WithAttributes(attribute.Bool("fine.paid", true)))

	return nil
}

func (oe *OTelExporter) observeFineAmounts(ctx context.Context, observer metric.Int64Observer) error {
	fines, err := oe.collector.GetFines(ctx)
	if err != nil {
		return err
	}

	observer.Observe(fines.UnpaidAmount, metric.WithAttributes(attribute.Bool("fine.paid", false)))
	observer.Observe(fines.PaidAmount, metric.WithAttributes(attribute.Bool("fine.paid", true)))

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics of this exporter
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
