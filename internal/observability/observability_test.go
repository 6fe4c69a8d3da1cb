package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace"
)

func TestClassifyDBErr(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&pgconn.PgError{Code: "23505"}, "unique_violation"},
		{&pgconn.PgError{Code: "42P01"}, "pg_42P01"},
		{errors.New("context deadline exceeded"), "timeout"},
		{errors.New("connection refused"), "connection"},
		{errors.New("weird"), "unknown"},
	}

	for _, tt := range tests {
		if got := classifyDBErr(tt.err); got != tt.want {
			t.Fatalf("classifyDBErr(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestObserveDB_NoRowsIsNotAnError(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	err := p.ObserveDB("users.get_by_id", func() error { return pgx.ErrNoRows })
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("error must pass through, got %v", err)
	}

	_ = p.ObserveDB("users.get_by_id", func() error { return errors.New("connection reset") })

	if got := testutil.ToFloat64(p.DbErrorsTotal.WithLabelValues("users.get_by_id", "connection")); got != 1 {
		t.Fatalf("got %v connection errors, want 1", got)
	}
}

func TestObserveCache(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	p.ObserveCache("hit")
	p.ObserveCache("hit")
	p.ObserveCache("miss")

	if got := testutil.ToFloat64(p.CacheResults.WithLabelValues("hit")); got != 2 {
		t.Fatalf("got %v hits, want 2", got)
	}
}

func TestLogger_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "dev")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	log.DebugContext(ctx, "hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v, raw=%s", err, buf.String())
	}
	if rec["trace_id"] != traceID.String() || rec["span_id"] != spanID.String() {
		t.Fatalf("trace attrs missing: %v", rec)
	}
}

func TestLogger_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "prod")

	log.InfoContext(WithRequestID(context.Background(), "req-1"), "hello")
	log.DebugContext(context.Background(), "dropped below info")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v, raw=%s", err, buf.String())
	}
	if rec["request_id"] != "req-1" {
		t.Fatalf("request id missing: %v", rec)
	}
}

func TestTracerAttributes(t *testing.T) {
	attrs := tracerAttributes(TracerConfig{ServiceName: "volcanoes-api", Env: "dev"})
	if len(attrs) != 2 {
		t.Fatalf("got %d attributes, want 2", len(attrs))
	}
	if attrs[0].Value.AsString() != "volcanoes-api" || attrs[1].Value.AsString() != "dev" {
		t.Fatalf("unexpected attributes: %v", attrs)
	}

	if got := tracerAttributes(TracerConfig{ServiceName: "x"}); len(got) != 1 {
		t.Fatalf("env attribute should be omitted when empty")
	}
}
