package components

import (
	"weekchain-capacity/internal/infra/cache"
	"weekchain-capacity/internal/infra/repository"
	"weekchain-capacity/internal/pkg/config"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewPropertyRepository,
		repository.NewCertificateRepository,
		repository.NewProductRepository,
		repository.NewSnapshotRepository,
		repository.NewWaitlistRepository,
		NewSnapshotCache,

		func(r *repository.PropertyRepository) commands.PropertyReader { return r },
		func(r *repository.CertificateRepository) commands.CertificateReader { return r },
		func(r *repository.CertificateRepository) commands.CertificateWriter { return r },
		func(r *repository.CertificateRepository) queries.CertificateReadStore { return r },
		func(r *repository.ProductRepository) commands.ProductWriter { return r },
		func(r *repository.ProductRepository) queries.ProductReadStore { return r },
		func(r *repository.SnapshotRepository) commands.SnapshotWriter { return r },
		func(r *repository.SnapshotRepository) queries.SnapshotReadStore { return r },
		func(r *repository.WaitlistRepository) commands.WaitlistWriter { return r },
		func(r *repository.WaitlistRepository) commands.WaitlistReader { return r },
		func(c *cache.SnapshotCache) queries.SnapshotCache { return c },
	),
)

func NewSnapshotCache(lc fx.Lifecycle, cfg config.Config) (*cache.SnapshotCache, error) {
	snapshotCache, err := cache.NewSnapshotCache(cfg.Engine.SnapshotCacheTTL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(snapshotCache.Close))

	return snapshotCache, nil
}
