package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"

	"github.com/solatis/segmentvet/internal/catalog"
	"github.com/solatis/segmentvet/internal/core/api"
	"github.com/solatis/segmentvet/internal/segments"
	"github.com/solatis/segmentvet/internal/types"
)

func newTestService(t *testing.T) *api.SegmentService {
	t.Helper()

	engine, err := segments.NewEngine(segments.DefaultModel())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	svc, err := api.NewSegmentService(catalog.Builtin(), engine, "Kargo", discardLogger())
	if err != nil {
		t.Fatalf("NewSegmentService() error = %v", err)
	}
	return svc
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(newTestService(t), discardLogger(), 5*time.Second)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"list", http.MethodGet, "/v1/segments?category=restricted", "", http.StatusOK},
		{"list bad float", http.MethodGet, "/v1/segments?max_cpm=abc", "", http.StatusBadRequest},
		{"toggle", http.MethodPost, "/v1/selection/toggle", `{"selection":[],"segmentId":"lifestyle-gamers"}`, http.StatusOK},
		{"toggle empty id", http.MethodPost, "/v1/selection/toggle", `{"selection":[]}`, http.StatusBadRequest},
		{"projection", http.MethodPost, "/v1/projection", `{"segmentIds":["lifestyle-gamers"],"budget":1000}`, http.StatusOK},
		{"projection malformed", http.MethodPost, "/v1/projection", `{"segmentIds":`, http.StatusBadRequest},
		{"projection unknown field", http.MethodPost, "/v1/projection", `{"ids":[]}`, http.StatusBadRequest},
		{"categories", http.MethodPost, "/v1/categories", `{"segmentIds":["lifestyle-gamers"]}`, http.StatusOK},
		{"categorize", http.MethodPost, "/v1/limitations/categorize", `{"text":"pixel required"}`, http.StatusOK},
		{"limitations", http.MethodGet, "/v1/limitations", "", http.StatusOK},
		{"summary", http.MethodGet, "/v1/summary?selected=lifestyle-gamers,,prime-video-viewers", "", http.StatusOK},
		{"summary bad float", http.MethodGet, "/v1/summary?min_match_rate=high", "", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/v1/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if rec.Header().Get(RequestIDHeader) == "" {
				t.Error("missing request id header")
			}
		})
	}
}

func TestRouter_ListSegments(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/segments?compatibility=incompatible", "")

	var resp api.ListSegmentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Matched != 7 || resp.Total != 24 || resp.Compatibility != "incompatible" {
		t.Errorf("response = matched %d total %d compat %s", resp.Matched, resp.Total, resp.Compatibility)
	}
}

func TestRouter_Summary(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/summary?selected=lifestyle-gamers,,prime-video-viewers", "")

	var resp api.SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Summary.Selected != 2 || resp.Summary.SelectedCompatible != 1 {
		t.Errorf("Summary = %+v", resp.Summary)
	}
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/v1/selection/toggle", `{"selection":["a"]}`)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "error" || resp.Code != "invalid_argument" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.RequestID != rec.Header().Get(RequestIDHeader) {
		t.Errorf("RequestID = %q, header = %q", resp.RequestID, rec.Header().Get(RequestIDHeader))
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRequestIDMiddleware_KeepsValidCallerID(t *testing.T) {
	h := newTestRouter(t)
	caller := string(types.NewRequestID())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, caller)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != caller {
		t.Errorf("request id = %q, want %q", got, caller)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" || got == "" {
		t.Errorf("request id = %q, want generated id", got)
	}
}

func TestRecoverer(t *testing.T) {
	r := NewRouter(newTestService(t), discardLogger(), 0)
	r.(*chi.Mux).Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := do(t, r, http.MethodGet, "/panic", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHTTPStatusAndErrorCode(t *testing.T) {
	tests := []struct {
		code       codes.Code
		wantStatus int
		wantCode   string
	}{
		{codes.InvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{codes.NotFound, http.StatusNotFound, "not_found"},
		{codes.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{codes.Canceled, 499, "canceled"},
		{codes.Internal, http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := httpStatus(tt.code); got != tt.wantStatus {
				t.Errorf("httpStatus() = %d, want %d", got, tt.wantStatus)
			}
			if got := errorCode(tt.code); got != tt.wantCode {
				t.Errorf("errorCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitList() = %v", got)
	}
	if got := splitList(""); got == nil || len(got) != 0 {
		t.Errorf("splitList(\"\") = %v, want empty", got)
	}
}

func TestRouter_SummaryFiltered(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/summary?category=restricted&selected=lifestyle-gamers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp api.SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	s := resp.Summary
	if s.Total != 24 || s.Matched != 7 || s.Compatible != 0 || s.Restricted != 7 {
		t.Errorf("filtered counts = %+v", s)
	}
	if s.Selected != 1 {
		t.Errorf("Selected = %d, want 1", s.Selected)
	}
}

func TestRouter_ProjectionOverflowingBudget(t *testing.T) {
	body := `{"segmentIds":["retail-electronics-buyers","retail-home-kitchen"],"budget":1e308}`
	rec := do(t, newTestRouter(t), http.MethodPost, "/v1/projection", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %q)", rec.Code, rec.Body.String())
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	if resp.Code != "invalid_argument" {
		t.Errorf("Code = %q, want invalid_argument", resp.Code)
	}
}

func TestWriteJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"impressions": math.Inf(1)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	if resp.Status != "error" || resp.Code != "internal" {
		t.Errorf("envelope = %+v", resp)
	}
}
