package di

import (
	"context"
	"fmt"

	"github.com/GoArmGo/fyyur/internal/adapter/storage/minio"
	"github.com/GoArmGo/fyyur/internal/app"
	"github.com/GoArmGo/fyyur/internal/config"
	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/database/client"
	"github.com/GoArmGo/fyyur/internal/database/storage"
	"github.com/GoArmGo/fyyur/internal/handler"
	"github.com/GoArmGo/fyyur/internal/logger"
	"github.com/GoArmGo/fyyur/internal/rabbitmq"
	"github.com/GoArmGo/fyyur/internal/usecase"
	"github.com/GoArmGo/fyyur/internal/web"
)

// BuildApp инициализирует зависимости, нужные режиму mode, и возвращает готовый объект App.
func BuildApp(ctx context.Context, mode string) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// Миграции применяются в App.Run, остальное не нужно
	if mode == app.ModeMigrate {
		return app.NewApp(cfg, slogger, nil, nil), nil
	}

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// 2. RabbitMQ: publisher для server, consumer для worker
	var (
		publisher ports.BookingEventPublisher = rabbitmq.NewNopPublisher(slogger)
		consumer  ports.BookingEventConsumer
	)
	if cfg.RabbitMQEnabled() {
		rmq, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		closers = append(closers, rmq.Close)
		publisher, consumer = rmq, rmq
	} else {
		slogger.Warn("RABBITMQ_URL not set, booking events are not published")
	}

	if mode == app.ModeWorker {
		slogger.Info("[container] worker dependencies initialized")
		return app.NewApp(cfg, slogger, nil, consumer, closers...), nil
	}

	// 3. Миграции и PostgreSQL клиент
	if cfg.MigrateOnStart {
		if err := client.ApplyMigrations(cfg.DatabaseURL, slogger); err != nil {
			closeAll()
			return nil, err
		}
	}

	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		closeAll()
		return nil, err
	}
	closers = append(closers, func() {
		if err := dbClient.Close(); err != nil {
			slogger.Error("failed to close database", "error", err)
		}
	})

	// 4. Инициализация хранилищ
	venueStorage := storage.NewVenueStorage(dbClient.Gorm, slogger)
	artistStorage := storage.NewArtistStorage(dbClient.Gorm, slogger)
	genreStorage := storage.NewGenreStorage(dbClient.Gorm, slogger)
	showStorage := storage.NewShowStorage(dbClient.Gorm, slogger)
	showListing := storage.NewShowListingStorage(dbClient.DB, slogger)

	// 5. S3 / MinIO адаптер для изображений (опционально)
	var fileStorage ports.FileStorage
	if cfg.MinioEnabled() {
		mc, err := minio.NewMinioClient(ctx, cfg, slogger)
		if err != nil {
			closeAll()
			return nil, err
		}
		fileStorage = mc
	} else {
		slogger.Warn("MINIO_ENDPOINT not set, image uploads are disabled")
	}

	// 6. Инициализация бизнес-логики (usecases)
	useCases := handler.UseCases{
		Venues:  usecase.NewVenueUseCase(venueStorage, genreStorage, publisher, slogger),
		Artists: usecase.NewArtistUseCase(artistStorage, genreStorage, publisher, slogger),
		Shows:   usecase.NewShowUseCase(showStorage, showListing, publisher, slogger),
		Genres:  usecase.NewGenreUseCase(genreStorage, slogger),
	}

	// 7. HTTP слой
	renderer, err := web.NewRenderer()
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("ошибка загрузки шаблонов: %w", err)
	}
	h := handler.NewHandler(
		useCases,
		fileStorage,
		handler.NewFlashStore(cfg.SessionSecret, slogger),
		renderer,
		dbClient,
		slogger,
	)
	router := handler.NewRouter(h, slogger, cfg.RequestTimeout)

	slogger.Info("[container] all dependencies initialized")
	return app.NewApp(cfg, slogger, router, consumer, closers...), nil
}
