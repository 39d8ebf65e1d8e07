// Package articleapi собирает приложение: конфиг, хранилище, сервисы и HTTP-сервер.
package articleapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/article-api/internal/config"
	"github.com/magabrotheeeer/article-api/internal/lib/jwt"
	"github.com/magabrotheeeer/article-api/internal/services/article"
	"github.com/magabrotheeeer/article-api/internal/services/auth"
	"github.com/magabrotheeeer/article-api/internal/services/user"
	"github.com/magabrotheeeer/article-api/internal/storage/mongodb"
)

// App инкапсулирует HTTP-сервер и подключение к базе.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
}

// New подключается к базе, строит сервисы и маршруты, возвращает готовое приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.StorageConnectionString, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := auth.NewAuthService(db, jwtMaker, cfg.BcryptCost)
	articleService := article.NewArticleService(db, db)
	userService := user.NewUserService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, articleService, userService)

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

// Run запускает HTTP-сервер и блокируется до остановки контекста
// или ошибки сервера. При остановке выполняет graceful shutdown.
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
		err := a.server.Shutdown(timeoutCtx)
		if dbErr := a.db.Close(timeoutCtx); dbErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", dbErr))
		}
		return err
	}
}
