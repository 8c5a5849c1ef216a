package app

import (
	"log"
	"os"

	"portfolio-site/internal/config"
	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/infrastructure/cache"
	"portfolio-site/internal/infrastructure/profilefile"
	"portfolio-site/internal/infrastructure/qrcode"
	"portfolio-site/internal/usecase"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	Store  *profile.Store
	Cache  *cache.Redis

	Skills  usecase.SkillUsecase
	Contact usecase.ContactUsecase
	QR      usecase.QRUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	store, err := profilefile.Load(cfg.Profile.Path)
	if err != nil {
		return nil, err
	}

	return NewContainerWithStore(cfg, store, logger), nil
}

// NewContainerWithStore wires the usecases around an already loaded profile.
func NewContainerWithStore(cfg config.Config, store *profile.Store, logger *log.Logger) *Container {
	if logger == nil {
		logger = log.Default()
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	opts := qrcode.DefaultOptions()
	if cfg.QR.Width > 0 {
		opts.Width = cfg.QR.Width
	}
	opts.Margin = cfg.QR.Margin

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Cache:   redisCache,
		Skills:  usecase.NewSkillUsecase(store),
		Contact: usecase.NewContactUsecase(store, logger),
		QR:      usecase.NewQRUsecase(store.Contact().QRCodeLink, opts, qrcode.NewRenderer(logger), redisCache, cfg.Redis.TTL, logger),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
