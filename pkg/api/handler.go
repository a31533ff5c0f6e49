package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/requestid"
	"github.com/dmitrymomot/rulechain/pkg/schema"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

// Handler serves the validation API over a Validator and a schema Store.
type Handler struct {
	validator *validator.Validator
	store     schema.Store
	logger    *slog.Logger
	checks    []httpserver.Check
	maxBody   int64
}

// New returns a Handler. v and store must not be nil.
func New(v *validator.Validator, store schema.Store, opts ...Option) *Handler {
	if v == nil || store == nil {
		panic("api.New: validator and store are required")
	}
	cfg := &config{maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Noop()
	}
	return &Handler{
		validator: v,
		store:     store,
		logger:    cfg.logger,
		checks:    cfg.checks,
		maxBody:   cfg.maxBodyBytes,
	}
}

// Router returns the chi router exposing every endpoint.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(h.logger, h.checks...))

	r.Route("/v1", func(r chi.Router) {
		r.Use(limitBody(h.maxBody))
		r.Get("/rules", h.listRules)
		r.Post("/validate", h.validate)

		r.Route("/schemas", func(r chi.Router) {
			r.Get("/", h.listSchemas)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", h.getSchema)
				r.Put("/", h.putSchema)
				r.Delete("/", h.deleteSchema)
				r.Post("/validate", h.validateStored)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, Response{Error: &ErrorDetail{Code: "not_found", Message: "route not found"}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: &ErrorDetail{Code: "method_not_allowed", Message: "method not allowed"}})
	})
	return r
}

type validateRequest struct {
	Schema  map[string]string `json:"schema"`
	Request map[string]any    `json:"request"`
}

// SchemaDocument is a stored schema and its name.
type SchemaDocument struct {
	Name   string            `json:"name"`
	Schema map[string]string `json:"schema"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.validator.Validate(req.Request, req.Schema)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, res)
}

func (h *Handler) validateStored(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	request, err := schema.DecodeRequest(r.Body)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	doc, err := h.store.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.validator.Validate(request, doc)
	if err != nil {
		h.logger.WarnContext(r.Context(), "stored schema is invalid", logger.Schema(name), logger.Error(err))
		writeError(w, r, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, res)
}

func (h *Handler) listSchemas(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeData(w, http.StatusOK, map[string][]string{"schemas": names})
}

func (h *Handler) getSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := h.store.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, SchemaDocument{Name: name, Schema: doc})
}

// putSchema accepts a JSON or YAML document and stores it only when every
// chain compiles.
func (h *Handler) putSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !schema.ValidName(name) {
		writeError(w, r, h.logger, schema.ErrInvalidName)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, h.logger, errors.Join(schema.ErrDecode, err))
		return
	}
	doc, err := schema.Decode(body)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if _, err := h.validator.Compile(doc); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.store.Put(r.Context(), name, doc); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "schema stored", logger.Schema(name), logger.Fields(len(doc)))
	writeData(w, http.StatusOK, SchemaDocument{Name: name, Schema: doc})
}

func (h *Handler) deleteSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.store.Delete(r.Context(), name); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.logger.InfoContext(r.Context(), "schema deleted", logger.Schema(name))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRules(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string][]string{"rules": h.validator.Registry().Tokens()})
}

// decodeJSON decodes a single JSON value into v keeping numbers as json.Number.
func decodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return errors.Join(schema.ErrDecodeRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after the request object", schema.ErrDecodeRequest)
	}
	return nil
}
