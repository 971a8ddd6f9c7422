package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/releasecfg/internal/convert"
	"github.com/eugenenazirov/releasecfg/internal/diagnostic"
	"github.com/eugenenazirov/releasecfg/internal/engine"
	"github.com/eugenenazirov/releasecfg/internal/loader"
	"github.com/eugenenazirov/releasecfg/internal/secret"
)

const defaultMaxBodyBytes = 1 << 20

// Handler validates release configuration documents submitted over HTTP.
// Every request builds its own model; nothing is shared between requests.
type Handler struct {
	logger       *zap.Logger
	secrets      *secret.Resolver
	maxBodyBytes int64

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithSecrets sets the resolver credentials are checked against. The
// default resolves against an empty environment so the server's own
// variables never leak into results.
func WithSecrets(r *secret.Resolver) HandlerOption {
	return func(h *Handler) {
		if r != nil {
			h.secrets = r
		}
	}
}

// WithMaxBodyBytes caps the size of submitted documents.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(logger *zap.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		logger:       logger,
		secrets:      secret.New(secret.WithLookup(emptyEnv)),
		maxBodyBytes: defaultMaxBodyBytes,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func emptyEnv(string) (string, bool) { return "", false }

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSchema(w http.ResponseWriter, r *http.Request) {
	_ = r
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(loader.Schema())
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFrom(r.Context())
	info.outcome = outcomeRejected

	format, err := requestFormat(r)
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported format", err.Error(), "Use yaml, json or toml")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Document too large", fmt.Sprintf("limit is %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to read request body")
		return
	}

	info.format = format
	tree, err := loader.Parse(body, format)
	if err != nil {
		info.outcome = outcomeMalformed
		writeError(w, http.StatusBadRequest, "Malformed configuration", err.Error())
		return
	}

	logger := h.logger.With(zap.String("request_id", info.id))
	ctx, err := engine.Build(tree, engine.WithLogger(logger), engine.WithSecrets(h.secrets), engine.WithDryRun(true))
	if err != nil {
		if errors.Is(err, convert.ErrMalformed) {
			info.outcome = outcomeMalformed
			writeError(w, http.StatusBadRequest, "Malformed configuration", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	errs := ctx.Errors
	if errs == nil {
		errs = []string{}
	}
	info.outcome, info.errors = outcomeValid, len(errs)
	if len(errs) > 0 {
		info.outcome = outcomeInvalid
	}
	writeJSON(w, http.StatusOK, validateResponse{
		Valid:       len(ctx.Errors) == 0,
		Errors:      errs,
		Diagnostics: ctx.Diagnostics(),
	})
}

// requestFormat prefers ?format= over Content-Type and defaults to YAML.
func requestFormat(r *http.Request) (loader.Format, error) {
	if f := strings.TrimSpace(r.URL.Query().Get("format")); f != "" {
		return loader.ParseFormat(f)
	}
	ct := strings.TrimSpace(r.Header.Get("Content-Type"))
	if ct == "" || strings.HasPrefix(ct, "text/plain") || strings.HasPrefix(ct, "application/octet-stream") {
		return loader.FormatYAML, nil
	}
	return loader.ParseFormat(ct)
}

type validateResponse struct {
	Valid       bool           `json:"valid"`
	Errors      []string       `json:"errors"`
	Diagnostics diagnostic.Map `json:"diagnostics"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
