package docdex

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	embedder      Embedder
	openaiAPIKey  string
	openaiBaseURL string
	openaiModel   string
	openaiDim     int

	embeddingCacheTTL time.Duration
	embeddingCache    bool

	searchConcurrency int
	searchTimeout     time.Duration

	searchLog    bool
	searchLogTTL time.Duration

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
// The instance must have the JSON module loaded.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisCluster configures the client to connect to a Redis cluster.
func WithRedisCluster(addrs []string, username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
	})
}

// WithDB selects a logical Redis database. Default: 0.
func WithDB(db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.db = db
	})
}

// WithEmbedder sets a custom text embedding provider.
// Required for semantic and hybrid search unless WithOpenAI is used.
func WithEmbedder(e Embedder) Option {
	return optionFunc(func(c *clientConfig) {
		c.embedder = e
	})
}

// WithOpenAI configures the built-in OpenAI embedding provider.
// Model defaults to text-embedding-3-small; override with WithOpenAIModel.
func WithOpenAI(apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.openaiAPIKey = apiKey
	})
}

// WithOpenAIModel overrides the embedding model and output dimensions.
// dimensions of 0 uses the model's native size.
func WithOpenAIModel(model string, dimensions int) Option {
	return optionFunc(func(c *clientConfig) {
		c.openaiModel = model
		c.openaiDim = dimensions
	})
}

// WithOpenAIBaseURL points the OpenAI provider at a compatible endpoint.
func WithOpenAIBaseURL(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.openaiBaseURL = baseURL
	})
}

// WithEmbeddingCache caches computed embeddings in the database.
// ttl of zero keeps cached vectors forever.
func WithEmbeddingCache(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.embeddingCache = true
		c.embeddingCacheTTL = ttl
	})
}

// WithSearchConcurrency bounds parallel per-document embedding calls.
// Default: 8.
func WithSearchConcurrency(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchConcurrency = n
	})
}

// WithSearchTimeout sets the overall per-search time budget.
// Zero (the default) means no deadline beyond the caller's context.
func WithSearchTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchTimeout = d
	})
}

// WithSearchLog records every finished search in the database.
// ttl of zero keeps entries forever.
func WithSearchLog(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchLog = true
		c.searchLogTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
