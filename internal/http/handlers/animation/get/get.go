// Package get реализует HTTP-обработчик декоративных lottie-анимаций.
//
// Загрузка с CDN строго best-effort: сбой отдаётся как успешный ответ с
// animation = null, клиент просто рисует страницу без анимации.
package get

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/culture-swap/internal/http/response"
)

// Fetcher описывает интерфейс загрузчика анимаций.
type Fetcher interface {
	Fetch(ctx context.Context, page string) json.RawMessage
}

// Handler обрабатывает HTTP-запросы анимаций.
type Handler struct {
	log     *slog.Logger
	fetcher Fetcher
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, fetcher Fetcher) *Handler {
	return &Handler{log: log, fetcher: fetcher}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.animation.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page := chi.URLParam(r, "page")
	animation := h.fetcher.Fetch(r.Context(), page)
	if animation == nil {
		log.Info("animation unavailable", slog.String("page", page))
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"page":      page,
		"animation": animation,
	}))
}
