package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"contentforge/internal/adapter/repo"
	"contentforge/internal/canon"
	"contentforge/internal/capability"
	"contentforge/internal/export"
	"contentforge/internal/http/handlers"
	"contentforge/internal/http/httpapi"
	"contentforge/internal/infra"
	"contentforge/internal/infra/geoip"
	"contentforge/internal/middleware"
	"contentforge/internal/pipeline"
	"contentforge/internal/policy"
	"contentforge/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	artifacts, err := storage.NewFileStore(cfg.ArtifactsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open artifacts store")
	}
	bundles, err := storage.NewFileStore(cfg.ExportsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open exports store")
	}

	brands := repo.NewBrandRepository(pool)
	personas := repo.NewPersonaRepository(pool)
	plans := repo.NewPlanRepository(pool)
	jobs := repo.NewJobRepository(pool)
	exports := repo.NewExportRepository(pool)
	universes := repo.NewUniverseRepository(pool)

	registry := capability.NewRegistry(repo.NewProviderRepository(pool))
	selector := capability.NewSelector(registry)
	profiles := policy.NewProfileRegistry(repo.NewPolicyProfileRepository(pool))
	templates := export.NewTemplateRegistry(repo.NewTemplateRepository(pool))
	canonBuilder := canon.NewBuilder(universes)

	service := pipeline.NewService(brands, personas, plans, jobs, registry, selector, canonBuilder, artifacts, logger)
	assembler := export.NewAssembler(jobs, exports, templates, bundles, logger)

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, country detection disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
		if closer, ok := resolver.(interface{ Close() error }); ok {
			defer closer.Close()
		}
	}

	app := &handlers.App{
		Brands:    brands,
		Personas:  personas,
		Plans:     plans,
		Jobs:      jobs,
		Exports:   exports,
		Providers: registry,
		Profiles:  profiles,
		Templates: templates,
		Canon:     canonBuilder,
		Pipeline:  service,
		Assembler: assembler,
		Artifacts: artifacts,
		Bundles:   bundles,
		Logger:    logger,
	}

	router := httpapi.NewRouter(app, cfg, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != os.ErrClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
