package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("minirt", "0.0.1", exporter))

	ctx, parent := StartSpan(context.Background(), "drive", "INTERNAL")
	parent.WithAttributes(map[string]string{"root": "main"})
	parent.WithCounters(map[string]int{"passes": 2})
	parent.AddEvent("pass", map[string]int{"pass": 1})

	found, ok := SpanFromContext(ctx)
	assert.True(t, ok)
	assert.NotNil(t, found)

	_, child := StartSpan(ctx, "child", "CLIENT")
	EndSpan(child, errors.New("boom"))
	EndSpan(parent, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "child", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.String("parent.span_id", spans[1].SpanContext.SpanID().String()))

	assert.Equal(t, "drive", spans[1].Name)
	assert.Equal(t, codes.Ok, spans[1].Status.Code)
	assert.Contains(t, spans[1].Attributes, attribute.String("root", "main"))
	assert.Contains(t, spans[1].Attributes, attribute.Int("passes", 2))
	require.Len(t, spans[1].Events, 1)
	assert.Equal(t, "pass", spans[1].Events[0].Name)
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.NotPanics(t, func() {
		span.WithAttributes(map[string]string{"k": "v"})
		span.WithCounters(map[string]int{"k": 1})
		span.AddEvent("e", nil)
		EndSpan(span, nil)
	})
	_, ok := SpanFromContext(context.Background())
	assert.False(t, ok)
}
