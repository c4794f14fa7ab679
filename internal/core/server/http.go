package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/solatis/segmentvet/internal/core/api"
	"github.com/solatis/segmentvet/internal/core/config"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Status    string `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// HTTPServer serves the SegmentAPI as JSON over HTTP.
type HTTPServer struct {
	server *http.Server
	config *config.ServerConfig
}

// NewHTTPServer creates the HTTP server around NewRouter.
func NewHTTPServer(cfg *config.ServerConfig, service api.SegmentAPIServer, logger *slog.Logger) (*HTTPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg cannot be nil")
	}
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPServer{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort),
			Handler:           NewRouter(service, logger, cfg.RequestTimeout),
			ReadHeaderTimeout: 10 * time.Second,
		},
		config: cfg,
	}, nil
}

// Addr returns the configured listen address.
func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

// Start binds listener and serves HTTP requests until Shutdown.
func (s *HTTPServer) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.server.Addr, err)
	}
	err = s.server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests within the configured shutdown timeout.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}
	if err := s.server.Shutdown(ctx); err != nil {
		_ = s.server.Close()
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// NewRouter mounts the SegmentAPI routes.
func NewRouter(service api.SegmentAPIServer, logger *slog.Logger, timeout time.Duration) http.Handler {
	h := &handler{service: service}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware(logger))
	r.Use(middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/segments", h.listSegments)
		r.Post("/selection/toggle", h.toggleSelection)
		r.Post("/projection", h.computeProjection)
		r.Post("/categories", h.groupByCategory)
		r.Post("/limitations/categorize", h.categorizeLimitation)
		r.Get("/limitations", h.analyzeLimitations)
		r.Get("/summary", h.summarize)
	})
	return r
}

type handler struct {
	service api.SegmentAPIServer
}

func (h *handler) listSegments(w http.ResponseWriter, r *http.Request) {
	req, ok := filterQuery(w, r)
	if !ok {
		return
	}
	resp, err := h.service.ListSegments(r.Context(), req)
	respond(w, r, resp, err)
}

func (h *handler) toggleSelection(w http.ResponseWriter, r *http.Request) {
	var req api.ToggleSelectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.service.ToggleSelection(r.Context(), &req)
	respond(w, r, resp, err)
}

func (h *handler) computeProjection(w http.ResponseWriter, r *http.Request) {
	var req api.ComputeProjectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.service.ComputeProjection(r.Context(), &req)
	respond(w, r, resp, err)
}

func (h *handler) groupByCategory(w http.ResponseWriter, r *http.Request) {
	var req api.GroupByCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.service.GroupByCategory(r.Context(), &req)
	respond(w, r, resp, err)
}

func (h *handler) categorizeLimitation(w http.ResponseWriter, r *http.Request) {
	var req api.CategorizeLimitationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.service.CategorizeLimitation(r.Context(), &req)
	respond(w, r, resp, err)
}

func (h *handler) analyzeLimitations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.AnalyzeLimitations(r.Context(), &api.AnalyzeLimitationsRequest{})
	respond(w, r, resp, err)
}

func (h *handler) summarize(w http.ResponseWriter, r *http.Request) {
	f, ok := filterQuery(w, r)
	if !ok {
		return
	}
	req := &api.SummarizeRequest{
		Selected:      splitList(r.URL.Query().Get("selected")),
		Search:        f.Search,
		Category:      f.Category,
		Compatibility: f.Compatibility,
		MinMatchRate:  f.MinMatchRate,
		MaxCPM:        f.MaxCPM,
	}
	resp, err := h.service.Summarize(r.Context(), req)
	respond(w, r, resp, err)
}

// filterQuery reads the filter query parameters. Malformed bounds are
// answered with 400 and ok is false.
func filterQuery(w http.ResponseWriter, r *http.Request) (req *api.ListSegmentsRequest, ok bool) {
	q := r.URL.Query()
	req = &api.ListSegmentsRequest{
		Search:        q.Get("search"),
		Category:      q.Get("category"),
		Compatibility: q.Get("compatibility"),
	}
	var err error
	if req.MinMatchRate, err = queryFloat(q.Get("min_match_rate")); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_argument", "min_match_rate: "+err.Error())
		return nil, false
	}
	if req.MaxCPM, err = queryFloat(q.Get("max_cpm")); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_argument", "max_cpm: "+err.Error())
		return nil, false
	}
	return req, true
}

func queryFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// splitList splits a comma separated query value, dropping empty items.
func splitList(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func respond(w http.ResponseWriter, r *http.Request, payload any, err error) {
	if err != nil {
		st := status.Convert(err)
		writeError(w, r, httpStatus(st.Code()), errorCode(st.Code()), st.Message())
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// writeJSON encodes payload before writing the header, so an unencodable
// payload becomes a 500 envelope instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{
			Status:  "error",
			Code:    errorCode(codes.Internal),
			Message: "failed to encode response: " + err.Error(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Status:    "error",
		Code:      code,
		Message:   message,
		RequestID: string(RequestIDFromContext(r.Context())),
	})
}

// httpStatus maps a gRPC status code to its HTTP equivalent.
func httpStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.OutOfRange, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorCode renders a gRPC code as a snake_case error code.
func errorCode(code codes.Code) string {
	var b strings.Builder
	for i, r := range code.String() {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := resolveRequestID(r.Header.Get(RequestIDHeader))
		w.Header().Set(RequestIDHeader, string(id))
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}

func accessLogMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			outcome := "success"
			if status >= http.StatusBadRequest {
				outcome = "failure"
			}
			logger.InfoContext(r.Context(), "http request",
				"request_id", string(RequestIDFromContext(r.Context())),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"outcome", outcome,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
