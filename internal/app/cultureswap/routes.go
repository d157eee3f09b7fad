// Package cultureswap предоставляет маршруты для основного приложения.
package cultureswap

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	animationget "github.com/magabrotheeeer/culture-swap/internal/http/handlers/animation/get"
	"github.com/magabrotheeeer/culture-swap/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/culture-swap/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/culture-swap/internal/http/handlers/auth/register"
	feedlist "github.com/magabrotheeeer/culture-swap/internal/http/handlers/feed/list"
	"github.com/magabrotheeeer/culture-swap/internal/http/handlers/health"
	heartadd "github.com/magabrotheeeer/culture-swap/internal/http/handlers/heart/add"
	mediaserve "github.com/magabrotheeeer/culture-swap/internal/http/handlers/media/serve"
	mediaupload "github.com/magabrotheeeer/culture-swap/internal/http/handlers/media/upload"
	recipecreate "github.com/magabrotheeeer/culture-swap/internal/http/handlers/recipe/create"
	storycreate "github.com/magabrotheeeer/culture-swap/internal/http/handlers/story/create"
	"github.com/magabrotheeeer/culture-swap/internal/http/middlewarectx"
	"github.com/magabrotheeeer/culture-swap/internal/lib/lottie"
	"github.com/magabrotheeeer/culture-swap/internal/models"
	authservice "github.com/magabrotheeeer/culture-swap/internal/services/auth"
	contentservice "github.com/magabrotheeeer/culture-swap/internal/services/content"
	"github.com/magabrotheeeer/culture-swap/internal/storage/media"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	contentService *contentservice.ContentService,
	mediaStore *media.Store,
	animations *lottie.Client,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/animations/{page}", animationget.New(logger, animations).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, authService).ServeHTTP)
			r.Post("/recipes", recipecreate.New(logger, contentService).ServeHTTP)
			r.Post("/stories", storycreate.New(logger, contentService).ServeHTTP)
			r.Get("/feed", feedlist.New(logger, contentService).ServeHTTP)
			r.Post("/recipes/{index}/hearts", heartadd.New(logger, contentService, models.KindRecipe).ServeHTTP)
			r.Post("/stories/{index}/hearts", heartadd.New(logger, contentService, models.KindStory).ServeHTTP)
			r.Post("/media", mediaupload.New(logger, mediaStore).ServeHTTP)
		})
	})

	// Сохранённые вложения отдаются по тем же ссылкам, что лежат в media
	r.Get("/media/{filename}", mediaserve.New(logger, mediaStore).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
