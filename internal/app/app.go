package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/fyyur/internal/config"
	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/database/client"
)

// Режимы запуска
const (
	ModeServer  = "server"
	ModeWorker  = "worker"
	ModeMigrate = "migrate"
)

type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	router   http.Handler
	consumer ports.BookingEventConsumer
	closers  []func()
}

// NewApp собирает приложение. router нужен только в режиме server,
// consumer только в режиме worker; closers вызываются при завершении.
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	router http.Handler,
	consumer ports.BookingEventConsumer,
	closers ...func(),
) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		router:   router,
		consumer: consumer,
		closers:  closers,
	}
}

// Logger возвращает основной логгер приложения
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до SIGINT/SIGTERM
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.Shutdown()

	a.logger.Info("starting", "mode", mode)

	switch mode {
	case ModeServer:
		if a.router == nil {
			return fmt.Errorf("режим %s: HTTP-обработчик не инициализирован", mode)
		}
		return runServer(ctx, a.cfg, a.router, a.logger)

	case ModeWorker:
		if a.consumer == nil {
			return fmt.Errorf("режим %s требует RABBITMQ_URL", mode)
		}
		return runWorker(ctx, a.consumer, a.logger)

	case ModeMigrate:
		return client.ApplyMigrations(a.cfg.DatabaseURL, a.logger)

	default:
		return fmt.Errorf("неизвестный режим: %s (используйте 'server', 'worker' или 'migrate')", mode)
	}
}

// Shutdown закрывает все ресурсы приложения в обратном порядке
func (a *App) Shutdown() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	a.logger.Info("shutdown complete")
}
