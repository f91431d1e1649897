package telemetry

// Span and attribute names used for instrumentation.
const (
	// InstrumentationName identifies the tracer used by the service.
	InstrumentationName = "github.com/samirrijal/isonwater"

	// SpanIsOnWater wraps every classification call.
	SpanIsOnWater = "isOnWater"

	// AttrCount is the number of points classified by a span.
	AttrCount = "count"
)
