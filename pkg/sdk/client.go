package docdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docdex/internal/db"
	dbRedis "github.com/kailas-cloud/docdex/internal/db/redis"
	"github.com/kailas-cloud/docdex/internal/domain"
	"github.com/kailas-cloud/docdex/internal/domain/search/request"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
	"github.com/kailas-cloud/docdex/internal/metrics"
	documentrepo "github.com/kailas-cloud/docdex/internal/repository/document"
	"github.com/kailas-cloud/docdex/internal/repository/embcache"
	"github.com/kailas-cloud/docdex/internal/repository/searchlog"
	openaiEmb "github.com/kailas-cloud/docdex/internal/transport/openai"
	documentuc "github.com/kailas-cloud/docdex/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docdex/internal/usecase/search"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultEmbeddingModel   = "text-embedding-3-small"
)

// Internal interfaces for test substitution.
type searchUseCase interface {
	Search(ctx context.Context, owner string, req *request.Request) (*result.Outcome, error)
}

type documentUseCase interface {
	Upsert(ctx context.Context, owner string, doc *domdoc.Document) (bool, error)
	Get(ctx context.Context, owner, id string) (domdoc.Document, error)
	List(ctx context.Context, owner string) ([]domdoc.Document, error)
	Delete(ctx context.Context, owner, id string) error
}

type queryLogUseCase interface {
	List(ctx context.Context, owner string) ([]searchlog.Entry, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the docdex SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	docSvc    documentUseCase
	queryLog  queryLogUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a docdex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		openaiModel: defaultEmbeddingModel,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("docdex: database address required (use WithRedis or WithRedisCluster)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("docdex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("docdex: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	embedder := buildClientEmbedder(cfg, store, logger)

	docRepo := documentrepo.New(store)
	var recorder searchuc.Recorder
	if cfg.searchLog {
		recorder = searchlog.New(store, cfg.searchLogTTL)
	}

	searchSvc := searchuc.New(docRepo, embedder, recorder, logger)
	if cfg.searchConcurrency > 0 {
		searchSvc = searchSvc.WithConcurrency(cfg.searchConcurrency)
	}
	if cfg.searchTimeout > 0 {
		searchSvc = searchSvc.WithTimeout(cfg.searchTimeout)
	}

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		docSvc:    documentuc.New(docRepo),
		queryLog:  searchlog.New(store, 0),
		healthSvc: healthuc.New(store, embedderHealth(embedder)),
		obs:       obs,
	}
}

// buildClientEmbedder resolves the configured embedder: custom, built-in
// OpenAI, or a noop that fails semantic calls with a clear error.
func buildClientEmbedder(cfg *clientConfig, store db.Store, logger *zap.Logger) domain.Embedder {
	var embedder domain.Embedder
	switch {
	case cfg.embedder != nil:
		embedder = &embedderAdapter{inner: cfg.embedder}
	case cfg.openaiAPIKey != "":
		metrics.RegisterEmbeddingMetrics()
		embedder = openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.openaiAPIKey,
			BaseURL:    cfg.openaiBaseURL,
			Model:      cfg.openaiModel,
			Dimensions: cfg.openaiDim,
		})
	default:
		return &noopEmbedder{}
	}

	if cfg.embeddingCache {
		metrics.RegisterEmbeddingMetrics()
		embedder = embcache.New(
			embedder, store, cfg.openaiModel,
			cfg.embeddingCacheTTL,
			metrics.EmbeddingCacheTotal, logger,
		)
	}
	return embedder
}

// embedderHealth returns a health checker when the embedder supports it.
func embedderHealth(e domain.Embedder) healthuc.EmbeddingChecker {
	if hc, ok := e.(domain.HealthChecker); ok {
		return hc
	}
	return nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Documents returns the document service for a given owner.
func (c *Client) Documents(owner string) *DocumentService {
	return &DocumentService{owner: owner, svc: c.docSvc, obs: c.obs}
}

// Search returns the search service for a given owner.
func (c *Client) Search(owner string) *SearchService {
	return &SearchService{owner: owner, svc: c.searchSvc, obs: c.obs}
}

// Queries returns the search history service for a given owner.
func (c *Client) Queries(owner string) *QueryLogService {
	return &QueryLogService{owner: owner, svc: c.queryLog, obs: c.obs}
}

// embedderAdapter wraps the public Embedder to satisfy domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// noopEmbedder fails semantic calls when no embedder is configured.
// Keyword searches never reach it.
type noopEmbedder struct{}

func (noopEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, fmt.Errorf(
		"%w: embedder not configured (use WithOpenAI or WithEmbedder for semantic search)",
		domain.ErrEmbeddingProviderError,
	)
}
