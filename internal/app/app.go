package app

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	riot "github.com/riftwatch/riftwatch/external/riot"
	"github.com/riftwatch/riftwatch/internal/config"
	"github.com/riftwatch/riftwatch/internal/infrastructure/repository/postgres"
	"github.com/riftwatch/riftwatch/internal/interfaces/httpapi"
	"github.com/riftwatch/riftwatch/internal/platform/cache"
	"github.com/riftwatch/riftwatch/internal/platform/logging"
	"github.com/riftwatch/riftwatch/internal/platform/resilience"
	"github.com/riftwatch/riftwatch/internal/usecase"
)

// NewHTTPServer wires the database, the Riot client and the services
// behind an http.Server. The returned cleanup closes the database pool
// and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *slog.Logger, appLogger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if appLogger == nil {
		appLogger = logging.Default()
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	profileRepo := postgres.NewProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	riotClient := riot.NewClient(riot.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.RiotTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseDomain: cfg.RiotBaseDomain,
		Token:      cfg.RiotAPIKey,
		Timeout:    cfg.RiotTimeout,
		MaxRetries: cfg.RiotMaxRetries,
		Logger:     appLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.RiotCircuitEnabled,
			FailureThreshold: cfg.RiotCircuitFailureCount,
			OpenTimeout:      cfg.RiotCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RiotCircuitHalfOpenMaxReq,
		},
	})

	var idsCache *cache.Store
	if cfg.MatchIDsCacheEnabled {
		idsCache = cache.NewStore(cfg.MatchIDsCacheTTL)
	}

	summonerSvc := usecase.NewSummonerService(profileRepo, riotClient, cfg.ProfileTTL, appLogger)
	matchSvc := usecase.NewMatchService(matchRepo, profileRepo, riotClient, idsCache, cfg.IngestWorkers, appLogger)

	handler := httpapi.NewHandler(summonerSvc, matchSvc, db, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}
