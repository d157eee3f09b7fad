// Package list реализует HTTP-обработчик объединённой ленты.
//
// Лента пересобирается из обеих коллекций на каждый запрос и отдаётся
// в обратном хронологическом порядке. Фильтры приходят повторяющимися
// query-параметрами culture, season и dietary; фильтры соединяются по И,
// внутри каждого достаточно совпадения одного тега.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/culture-swap/internal/http/response"
	"github.com/magabrotheeeer/culture-swap/internal/lib/sl"
	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// Service описывает интерфейс бизнес-логики сборки ленты.
type Service interface {
	Feed(ctx context.Context, filter models.FeedFilter) ([]models.FeedItem, error)
}

// Handler обрабатывает HTTP-запросы ленты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Лента рецептов и историй
// @Description Возвращает объединённую ленту, отсортированную по дате по убыванию, с необязательными фильтрами.
// @Tags Content
// @Produce  json
// @Security BearerAuth
// @Param culture query []string false "Фильтр по культуре" collectionFormat(multi)
// @Param season query []string false "Фильтр по сезону" collectionFormat(multi)
// @Param dietary query []string false "Фильтр по диете" collectionFormat(multi)
// @Success 200 {object} map[string]any "Элементы ленты"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /feed [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	filter := models.FeedFilter{
		Culture: query["culture"],
		Season:  query["season"],
		Dietary: query["dietary"],
	}

	items, err := h.service.Feed(r.Context(), filter)
	if err != nil {
		log.Error("failed to build feed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build feed"))
		return
	}

	log.Info("feed built", slog.Int("count", len(items)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"feed_count": len(items),
		"items":      items,
	}))
}
