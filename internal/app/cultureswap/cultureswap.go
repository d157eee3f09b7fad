// Package cultureswap собирает приложение: хранилища, сервисы, маршруты
// и HTTP-сервер с graceful shutdown.
package cultureswap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/culture-swap/internal/config"
	"github.com/magabrotheeeer/culture-swap/internal/lib/jwt"
	"github.com/magabrotheeeer/culture-swap/internal/lib/lottie"
	authservice "github.com/magabrotheeeer/culture-swap/internal/services/auth"
	contentservice "github.com/magabrotheeeer/culture-swap/internal/services/content"
	"github.com/magabrotheeeer/culture-swap/internal/storage/jsondb"
	"github.com/magabrotheeeer/culture-swap/internal/storage/media"
)

// App держит HTTP-сервер и зависимости приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *jsondb.Storage
}

// New загружает коллекции из каталога данных и собирает все зависимости.
// Недоступный каталог данных — ошибка запуска.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := jsondb.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	mediaStore, err := media.New(cfg.MediaDir)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	contentService := contentservice.NewContentService(db, logger)
	animations := lottie.New(cfg.FetchTimeout)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, contentService, mediaStore, animations)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
