package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "player handler span", in: "httpapi.Handler.GetPlayer", want: true},
		{name: "roster handler span", in: "httpapi.Handler.AddRosterPlayer", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.mapError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouteAttrs_RecordsRouteAndPathIDs(t *testing.T) {
	var got []attribute.KeyValue
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/players/{playerID}/fdr", func(w http.ResponseWriter, r *http.Request) {
		got = routeAttrs(r)
	})
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/players/328/fdr", nil))

	want := map[attribute.Key]attribute.Value{
		"http.route":    attribute.StringValue("GET /v1/players/{playerID}/fdr"),
		"fpl.player_id": attribute.IntValue(328),
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected attrs: %v", got)
	}
	for _, kv := range got {
		if w, ok := want[kv.Key]; !ok || w != kv.Value {
			t.Fatalf("unexpected attr %s=%v", kv.Key, kv.Value.Emit())
		}
	}
}

func TestRouteAttrs_SkipsMalformedIDs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/teams/abc/fixtures", nil)
	req.SetPathValue("teamID", "abc")

	if got := routeAttrs(req); len(got) != 0 {
		t.Fatalf("expected no attrs for malformed id, got %v", got)
	}
}
