package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

const tracerName = "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/observability/service"

// Service decorates the purchases application port with tracing, logging,
// and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create records a purchase with instrumentation. Insufficient stock is
// counted separately from other failures so oversell pressure shows up on
// dashboards.
func (s *Service) Create(ctx context.Context, input ports.CreateInput) (*domain.Receipt, error) {
	ctx, span := s.startSpan(ctx, "Service.Create",
		attribute.Int64("purchase.buyer_id", input.BuyerID),
		attribute.Int64("purchase.item_id", input.ItemID),
		attribute.Int("purchase.quantity", int(input.Quantity)),
	)
	defer span.End()

	s.logInfo(ctx, "recording purchase",
		slog.Int64("buyer.id", input.BuyerID),
		slog.Int64("item.id", input.ItemID),
		slog.Int("quantity", int(input.Quantity)),
	)
	receipt, err := s.inner.Create(ctx, input)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			s.metrics.recordRejected(ctx, "insufficient_stock")
			span.SetAttributes(attribute.Int("item.stock.available", int(stockErr.Available)))
		} else {
			s.metrics.recordRejected(ctx, "invalid")
		}
		return nil, s.handleError(ctx, span, err, "purchase rejected",
			slog.Int64("buyer.id", input.BuyerID),
			slog.Int64("item.id", input.ItemID),
		)
	}
	s.metrics.recordCompleted(ctx)
	s.logInfo(ctx, "purchase recorded",
		slog.Int64("purchase.id", receipt.PurchaseID),
		slog.Int64("buyer.id", receipt.BuyerID),
		slog.Int64("item.id", receipt.ItemID),
		slog.Int("quantity", int(receipt.Quantity)),
	)
	return receipt, nil
}

// List returns one page of receipts with instrumentation.
func (s *Service) List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Receipt], error) {
	ctx, span := s.startSpan(ctx, "Service.List",
		attribute.Int("page.number", page.Page),
		attribute.Int("page.size", page.Size),
	)
	defer span.End()

	result, err := s.inner.List(ctx, page)
	if err != nil {
		return pagination.Page[*domain.Receipt]{}, s.handleError(ctx, span, err, "failed to list purchases")
	}
	span.SetAttributes(attribute.Int("purchase.result.count", len(result.Content)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	completed metric.Int64Counter
	rejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	completed, _ := m.Int64Counter("purchases.service.completed", metric.WithDescription("Number of purchases recorded"))
	rejected, _ := m.Int64Counter("purchases.service.rejected", metric.WithDescription("Number of purchases rejected"))
	return serviceMetrics{completed: completed, rejected: rejected}
}

func (m serviceMetrics) recordCompleted(ctx context.Context) {
	addCounter(ctx, m.completed, 1)
}

func (m serviceMetrics) recordRejected(ctx context.Context, reason string) {
	addCounter(ctx, m.rejected, 1, attribute.String("purchase.reject_reason", reason))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
