package app

import (
	"context"
	"log"

	"github.com/indicai/core/internal/config"
	http_feed "github.com/indicai/core/internal/delivery/http/feed"
	http_init "github.com/indicai/core/internal/delivery/http/init"
	http_requestid_middleware "github.com/indicai/core/internal/delivery/http/middleware/requestid"
	http_profile "github.com/indicai/core/internal/delivery/http/profile"
	http_quota "github.com/indicai/core/internal/delivery/http/quota"
	http_swipe "github.com/indicai/core/internal/delivery/http/swipe"
	infra_gemini "github.com/indicai/core/internal/infra/gemini"
	infra_inmem_store "github.com/indicai/core/internal/infra/inmem"
	infra_postgres_catalog "github.com/indicai/core/internal/infra/postgres/catalog"
	infra_pg_init "github.com/indicai/core/internal/infra/postgres/init"
	infra_redis_init "github.com/indicai/core/internal/infra/redis/init"
	infra_state_store "github.com/indicai/core/internal/infra/redis/state"
	infra_tmdb "github.com/indicai/core/internal/infra/tmdb"
	"github.com/indicai/core/internal/service/ingest"
	"github.com/indicai/core/internal/service/sampler"
	usecase_recommend "github.com/indicai/core/internal/usecase/recommend"
	usecase_session "github.com/indicai/core/internal/usecase/session"
)

const stateKeyPrefix = "indicai"

func Go(cfg *config.Config) {
	ctx := context.Background()

	var store usecase_session.Store
	if cfg.Redis.Host == "" {
		store = infra_inmem_store.New()
	} else {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		store = infra_state_store.New(redisConn, stateKeyPrefix)
	}

	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	catalogRepository := infra_postgres_catalog.New(pgConn)

	session, err := usecase_session.Load(ctx, store)
	if err != nil {
		log.Fatalf("failed to load session state: %v", err)
	}

	tmdbClient := infra_tmdb.New(cfg.TMDB)
	geminiClient := infra_gemini.New(cfg.Gemini)

	// Successful popular batches refresh the fallback catalog.
	popularSource := ingest.New(tmdbClient, catalogRepository)

	recommendUC := usecase_recommend.New(geminiClient, popularSource)
	fallbackSampler := sampler.New()

	controllerPool := http_init.NewControllerPool(http_requestid_middleware.New())
	controllerPool.Add(http_feed.New(recommendUC, session, catalogRepository, fallbackSampler))
	controllerPool.Add(http_swipe.New(session))
	controllerPool.Add(http_quota.New(session))
	controllerPool.Add(http_profile.New(session))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
