package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
	"github.com/yanqian/soulmatch/internal/domain/auth"
	"github.com/yanqian/soulmatch/internal/infra/chartarchive"
	"github.com/yanqian/soulmatch/internal/infra/chartrepo"
	"github.com/yanqian/soulmatch/internal/infra/chartstore"
	"github.com/yanqian/soulmatch/internal/infra/config"
)

func provideAstrologyConfig(cfg *config.Config) astrology.Config {
	return astrology.Config{
		Ayanamsa:          astrology.Ayanamsa(cfg.Astrology.Ayanamsa),
		CacheTTL:          cfg.Astrology.CacheTTL,
		MaxRankCandidates: cfg.Astrology.MaxRankCandidates,
		RankConcurrency:   cfg.Astrology.RankConcurrency,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
		Issuer:   cfg.Auth.Issuer,
	}
}

func provideChartRepository(cfg *config.Config, logger *slog.Logger) (astrology.ChartRepository, func()) {
	fallback := chartrepo.NewMemoryRepository()
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory chart repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory chart repository", "error", err)
		return fallback, noop
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory chart repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory chart repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	repo := chartrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("charts schema setup failed, using memory chart repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("postgres chart repository enabled")
	return repo, pool.Close
}

func provideChartStore(cfg *config.Config, logger *slog.Logger) (astrology.Store, func()) {
	if !cfg.Storage.Redis.Enabled {
		return memoryChartStore(logger)
	}
	opt, err := buildValkeyOptions(cfg.Storage.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return memoryChartStore(logger)
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return memoryChartStore(logger)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return memoryChartStore(logger)
	}
	logger.Info("valkey horoscope cache enabled", "addr", cfg.Storage.Redis.Addr)
	return chartstore.NewValkeyStore(client, cfg.Storage.Redis.Prefix), client.Close
}

const memoryEvictionInterval = 5 * time.Minute

func memoryChartStore(logger *slog.Logger) (astrology.Store, func()) {
	store := chartstore.NewMemoryStore()
	stop := store.StartEviction(memoryEvictionInterval, func(removed int) {
		logger.Debug("evicted expired horoscopes", "count", removed)
	})
	return store, stop
}

func provideChartArchive(cfg *config.Config, logger *slog.Logger) astrology.Archive {
	archiveCfg := cfg.Storage.Archive
	if !archiveCfg.Enabled {
		return chartarchive.NewMemoryArchive()
	}
	archive, err := chartarchive.NewR2Archive(archiveCfg.Endpoint, archiveCfg.AccessKey, archiveCfg.SecretKey, archiveCfg.Bucket, archiveCfg.Region, logger)
	if err != nil {
		logger.Error("failed to create archive client, falling back to memory archive", "error", err)
		return chartarchive.NewMemoryArchive()
	}
	logger.Info("object storage chart archive enabled", "bucket", archiveCfg.Bucket)
	return archive
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
