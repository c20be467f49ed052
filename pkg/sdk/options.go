package beautydex

import (
	"log/slog"

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

const (
	driverMemory   = "memory"
	driverRedis    = "redis"
	driverPostgres = "postgres"
)

type clientConfig struct {
	driver   string
	products []Product

	addrs     []string
	password  string
	keyPrefix string

	dsn   string
	table string

	picker         func(n int) int
	resultLimit    int
	recommendLimit int

	logger     *slog.Logger
	zapLogger  *zap.Logger
	metricsReg prometheus.Registerer
}

// WithProducts seeds the catalog. Without WithRedis or WithPostgres the
// products are served from memory.
func WithProducts(products ...Product) Option {
	return optionFunc(func(c *clientConfig) {
		c.products = append(c.products, products...)
	})
}

// WithRedis serves the catalog from a Redis 8+ search index.
// keyPrefix namespaces product hashes and the index; it may be empty.
func WithRedis(addr, password, keyPrefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
		c.keyPrefix = keyPrefix
	})
}

// WithPostgres serves the catalog from a Postgres table.
// An empty table selects beauty_products.
func WithPostgres(dsn, table string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverPostgres
		c.dsn = dsn
		c.table = table
	})
}

// WithPicker overrides how a generic browse query picks its category.
// pick(n) must return an index in [0, n). Defaults to uniform random.
func WithPicker(pick func(n int) int) Option {
	return optionFunc(func(c *clientConfig) {
		c.picker = pick
	})
}

// WithResultLimit sets how many products a chat answer lists. Default: 5.
func WithResultLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.resultLimit = n
	})
}

// WithRecommendLimit sets the default number of recommendations. Default: 5.
func WithRecommendLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.recommendLimit = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithZapLogger routes internal catalog and degradation logs to l.
func WithZapLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.zapLogger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
