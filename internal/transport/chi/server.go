package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docdex/internal/domain"
	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	logpkg "github.com/kailas-cloud/docdex/internal/logger"
	"github.com/kailas-cloud/docdex/internal/metrics"
	"github.com/kailas-cloud/docdex/internal/repository/searchlog"
	documentuc "github.com/kailas-cloud/docdex/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docdex/internal/usecase/search"
)

// Error codes returned in the uniform error body.
const (
	codeBadRequest        = "bad_request"
	codeInvalidQuery      = "invalid_query"
	codeInvalidLimit      = "invalid_limit"
	codeDocumentNotFound  = "document_not_found"
	codeDimMismatch       = "vector_dim_mismatch"
	codeEmbeddingProvider = "embedding_provider_error"
	codeDeadlineExceeded  = "deadline_exceeded"
	codeInternalError     = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// queryLogReader lists recorded searches for an owner (ISP).
type queryLogReader interface {
	List(ctx context.Context, owner string) ([]searchlog.Entry, error)
}

// Server wires the usecase services to HTTP handlers.
type Server struct {
	search        *searchuc.Service
	documents     *documentuc.Service
	queries       queryLogReader
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	documents *documentuc.Service,
	queries queryLogReader,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		documents: documents,
		queries:   queries,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeInvalidQuery),
		sentinelHandler(domain.ErrInvalidLimit, http.StatusBadRequest, codeInvalidLimit),
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, codeDocumentNotFound),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadGateway, codeDimMismatch),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProvider),
		sentinelHandler(domain.ErrDeadlineExceeded, http.StatusGatewayTimeout, codeDeadlineExceeded),
	}
	return s
}

// Routes registers all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/owners/{owner}", func(r chi.Router) {
		r.Post("/search", s.SearchDocuments)
		r.Get("/queries", s.ListQueries)

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", s.ListDocuments)
			r.Put("/{id}", s.UpsertDocument)
			r.Get("/{id}", s.GetDocument)
			r.Delete("/{id}", s.DeleteDocument)
		})
	})
}

// SearchDocuments handles POST /owners/{owner}/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	searchReq, err := searchRequestFromDTO(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	start := time.Now()
	out, err := s.search.Search(r.Context(), owner, &searchReq)

	modeLabel := string(searchReq.Mode())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(modeLabel, "error").Inc()
		s.handleDomainError(w, r, err)
		return
	}

	metrics.SearchesTotal.WithLabelValues(modeLabel, "success").Inc()
	metrics.SearchDuration.WithLabelValues(modeLabel).Observe(time.Since(start).Seconds())
	metrics.SearchResults.WithLabelValues(modeLabel).Observe(float64(len(out.Results)))
	metrics.SearchDocumentsScanned.WithLabelValues(modeLabel).Observe(float64(out.DocumentsScanned))

	writeJSON(w, http.StatusOK, outcomeToDTO(out))
}

// UpsertDocument handles PUT /owners/{owner}/documents/{id}.
func (s *Server) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	id := chi.URLParam(r, "id")

	var req upsertDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc, err := domdoc.New(id, req.DisplayName, req.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	created, err := s.documents.Upsert(r.Context(), owner, &doc)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", fmt.Sprintf("/owners/%s/documents/%s", owner, id))
	}
	writeJSON(w, status, documentToDTO(&doc))
}

// GetDocument handles GET /owners/{owner}/documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	id := chi.URLParam(r, "id")

	doc, err := s.documents.Get(r.Context(), owner, id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToDTO(&doc))
}

// DeleteDocument handles DELETE /owners/{owner}/documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	id := chi.URLParam(r, "id")

	if err := s.documents.Delete(r.Context(), owner, id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListDocuments handles GET /owners/{owner}/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	docs, err := s.documents.List(r.Context(), owner)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]documentResponse, len(docs))
	for i := range docs {
		items[i] = documentToDTO(&docs[i])
	}
	writeJSON(w, http.StatusOK, documentListResponse{Items: items, Total: len(items)})
}

// ListQueries handles GET /owners/{owner}/queries.
func (s *Server) ListQueries(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	entries, err := s.queries.List(r.Context(), owner)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]queryLogItem, len(entries))
	for i, e := range entries {
		items[i] = logEntryToDTO(e)
	}
	writeJSON(w, http.StatusOK, queryLogResponse{Items: items, Total: len(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrInvalidLimit,
		domain.ErrDocumentNotFound,
		domain.ErrVectorDimMismatch,
		domain.ErrEmbeddingProviderError,
		domain.ErrDeadlineExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// handleDomainError maps a usecase error to an HTTP response, logging with
// the request-scoped logger so entries carry the request ID.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
