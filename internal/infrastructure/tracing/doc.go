/*
Package tracing provides lightweight request tracing.

Each HTTP request gets a span with a ULID-based trace and span ID. Incoming
X-Trace-ID and X-Span-ID headers continue an existing trace, and both IDs
are echoed on the response. Finished spans are queued on a buffered channel
(1000 spans) and logged through zap by one collector goroutine; spans are
dropped with a warning when the buffer is full.

# Usage

	tracer := tracing.New("utilkit", logger.Logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "evaluate")
	span.SetTag("operation", "divide")
	span.Finish()
	tracer.Submit(span)
*/
package tracing
