// Package otel holds the span helpers and attribute keys shared by schoolsync components.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys shared by sync, store and upstream spans.
const (
	AttrStateCode    = attribute.Key("region.state_code")
	AttrDistrictCode = attribute.Key("region.district_code")
	AttrIdentifier   = attribute.Key("school.identifier")
	AttrSchoolKey    = attribute.Key("school.key")
	AttrYearID       = attribute.Key("year.id")
	AttrYearLabel    = attribute.Key("year.label")
	AttrBatchSize    = attribute.Key("batch.size")
	AttrResultCount  = attribute.Key("result.count")
	AttrPageSize     = attribute.Key("pagination.limit")
	AttrOutcome      = attribute.Key("sync.outcome")
)

// StartSpan starts a new span if the tracer is non-nil, otherwise returns a no-op span.
// This provides graceful degradation when tracing is disabled.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records an error on a span and sets the span status to error.
// It safely handles nil spans and nil errors.
// Note: The status description is intentionally generic to prevent sensitive
// information (e.g., SQL queries, connection strings) from appearing in trace
// status. The full error details are still available via span events for debugging.
func RecordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}

// WithRegion tags a span with the state and district codes of a region.
func WithRegion(stateCode, districtCode string) trace.SpanStartOption {
	return trace.WithAttributes(
		AttrStateCode.String(stateCode),
		AttrDistrictCode.String(districtCode),
	)
}
