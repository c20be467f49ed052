package beautydex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/db/memory"
	dbPostgres "github.com/kailas-cloud/beautydex/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/beautydex/internal/db/redis"
	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/text"
	catalogrepo "github.com/kailas-cloud/beautydex/internal/repository/catalog"
	discoveryuc "github.com/kailas-cloud/beautydex/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/beautydex/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/beautydex/internal/usecase/recommend"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for mocks in tests.
type askUseCase interface {
	Ask(ctx context.Context, raw string) discoveryuc.Answer
}

type recommendUseCase interface {
	Product(ctx context.Context, id string) (product.Product, error)
	Recommend(ctx context.Context, id string, limit int) ([]product.Product, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the beautydex SDK entry point. It is safe for concurrent use.
type Client struct {
	store        db.Store
	askSvc       askUseCase
	recommendSvc recommendUseCase
	healthSvc    healthUseCase
	obs          *observer
}

// New creates a Client. The provided context is used for the readiness
// check and for seeding products into Redis or Postgres.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: driverMemory}
	for _, o := range opts {
		o.apply(cfg)
	}

	seed, err := productRows(cfg.products)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg, seed)
	if err != nil {
		return nil, err
	}

	if err := prepareStore(ctx, store, cfg.driver, seed); err != nil {
		store.Close()
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func productRows(products []Product) ([]map[string]string, error) {
	rows := make([]map[string]string, 0, len(products))
	for i := range products {
		p, err := toDomainProduct(&products[i])
		if err != nil {
			return nil, fmt.Errorf("beautydex: product %d: %w", i, err)
		}
		rows = append(rows, p.ToFields())
	}
	return rows, nil
}

func createStore(cfg *clientConfig, seed []map[string]string) (db.Store, error) {
	switch cfg.driver {
	case driverMemory:
		s, err := memory.NewStore(seed...)
		if err != nil {
			return nil, fmt.Errorf("beautydex: create memory store: %w", err)
		}
		return s, nil
	case driverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.addrs,
			Password:  cfg.password,
			KeyPrefix: cfg.keyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("beautydex: create redis store: %w", err)
		}
		return s, nil
	case driverPostgres:
		s, err := dbPostgres.NewStore(dbPostgres.Config{
			DSN:   cfg.dsn,
			Table: cfg.table,
		})
		if err != nil {
			return nil, fmt.Errorf("beautydex: create postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("beautydex: unknown driver %q", cfg.driver)
	}
}

// prepareStore waits for a remote driver, creates the Redis index and writes the seed.
func prepareStore(ctx context.Context, store db.Store, driver string, seed []map[string]string) error {
	if driver == driverMemory {
		return nil
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		return fmt.Errorf("beautydex: catalog not ready: %w", err)
	}
	if rs, ok := store.(*dbRedis.Store); ok {
		if err := rs.EnsureIndex(ctx); err != nil {
			return fmt.Errorf("beautydex: ensure index: %w", err)
		}
	}
	for _, row := range seed {
		if err := store.Put(ctx, row); err != nil {
			return fmt.Errorf("beautydex: seed %q: %w", row[product.FieldID], err)
		}
	}
	return nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	logger := cfg.zapLogger
	if logger == nil {
		logger = zap.NewNop()
	}

	gateway := catalogrepo.NewInstrumented(catalogrepo.New(store), cfg.driver, logger)

	routerOpts := []intent.Option{intent.WithLimit(cfg.resultLimit)}
	if cfg.picker != nil {
		routerOpts = append(routerOpts, intent.WithPicker(intent.Picker(cfg.picker)))
	}
	router := intent.NewRouter(intent.DefaultVocabulary(), routerOpts...)

	return &Client{
		store:  store,
		askSvc: discoveryuc.New(gateway, router, text.NewTokenizer(text.DefaultMinTokenLength), logger),
		recommendSvc: recommenduc.New(gateway, logger,
			recommenduc.WithDefaultLimit(cfg.recommendLimit),
		),
		healthSvc: healthuc.New(store),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ask answers a free-form chat query. It never fails: catalog errors yield
// the empty reply for the classified intent with Degraded set.
func (c *Client) Ask(ctx context.Context, query string) Answer {
	start := time.Now()
	ans := c.askSvc.Ask(ctx, query)

	var err error
	if ans.Degraded {
		err = errors.New("degraded")
	}
	c.obs.observe("ask", start, err)

	return fromAnswer(&ans)
}

// Product returns one product by id. ErrNotFound covers both a missing
// product and an unavailable catalog.
func (c *Client) Product(ctx context.Context, id string) (p Product, err error) {
	start := time.Now()
	defer func() { c.obs.observe("product", start, err) }()

	dp, err := c.recommendSvc.Product(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("product %q: %w", id, err)
	}
	return fromDomainProduct(&dp), nil
}

// Recommend returns up to limit products from the same subcategory as id,
// never including id itself. A zero limit selects the default.
func (c *Client) Recommend(ctx context.Context, id string, limit int) (products []Product, err error) {
	start := time.Now()
	defer func() { c.obs.observe("recommend", start, err) }()

	found, err := c.recommendSvc.Recommend(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("recommend %q: %w", id, err)
	}
	return fromDomainProducts(found), nil
}
