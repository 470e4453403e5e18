package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-insight/internal/domain/fantasy"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput),
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
			wantReason: "invalidInput",
		},
		{
			name:       "budget exceeded",
			err:        fmt.Errorf("add player 328: %w", fantasy.ErrExceededBudget),
			wantCode:   http.StatusConflict,
			wantStatus: "FAILED_PRECONDITION",
			wantReason: "rosterConflict",
		},
		{
			name:       "squad full",
			err:        fantasy.ErrSquadFull,
			wantCode:   http.StatusConflict,
			wantStatus: "FAILED_PRECONDITION",
			wantReason: "rosterConflict",
		},
		{
			name:       "duplicate pick",
			err:        fantasy.ErrDuplicatePlayerInSquad,
			wantCode:   http.StatusConflict,
			wantStatus: "FAILED_PRECONDITION",
			wantReason: "rosterConflict",
		},
		{
			name:       "unknown position",
			err:        fantasy.ErrUnknownPlayerPosition,
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
			wantReason: "invalidPick",
		},
		{
			name:       "upstream unreachable",
			err:        crerr.Mark(crerr.New("dial tcp: connection refused"), usecase.ErrNetwork),
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "UNAVAILABLE",
			wantReason: "dependencyUnavailable",
		},
		{
			name:       "upstream payload",
			err:        fmt.Errorf("%w: unexpected payload shape", usecase.ErrParse),
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "UNAVAILABLE",
			wantReason: "dependencyUnavailable",
		},
		{
			name:       "unmapped",
			err:        fmt.Errorf("boom"),
			wantCode:   http.StatusInternalServerError,
			wantStatus: "INTERNAL",
			wantReason: "internalError",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}

			var body googleResponseEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.APIVersion != "2.0" || body.Error == nil {
				t.Fatalf("expected error envelope, got %+v", body)
			}
			if body.Error.Code != tc.wantCode || body.Error.Status != tc.wantStatus {
				t.Fatalf("unexpected error body: code=%d status=%s", body.Error.Code, body.Error.Status)
			}
			if len(body.Error.Errors) != 1 || body.Error.Errors[0].Reason != tc.wantReason || body.Error.Errors[0].Domain != errorDomain {
				t.Fatalf("unexpected error items: %+v", body.Error.Errors)
			}
		})
	}
}
