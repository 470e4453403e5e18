package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fpl-insight/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// pathIDAttrs maps route wildcards to the span attribute they are recorded under.
var pathIDAttrs = []struct {
	wildcard string
	key      attribute.Key
}{
	{wildcard: "playerID", key: "fpl.player_id"},
	{wildcard: "teamID", key: "fpl.team_id"},
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// No parent span in context (e.g. filtered route like /healthz):
		// avoid creating standalone root spans for internal helpers.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// routeAttrs records the matched route and any numeric player/team id in the path.
// Malformed ids are left out; the handler rejects them.
func routeAttrs(r *http.Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(pathIDAttrs)+1)
	if r.Pattern != "" {
		attrs = append(attrs, attribute.String("http.route", r.Pattern))
	}
	for _, item := range pathIDAttrs {
		raw := strings.TrimSpace(r.PathValue(item.wildcard))
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		attrs = append(attrs, item.key.Int(id))
	}
	return attrs
}
