// Package add реализует HTTP-обработчик лайка ("сердечка").
//
// Один и тот же Handler обслуживает рецепты и истории: вид элемента
// фиксируется при создании обработчика, индекс приходит в пути запроса.
// Записи не удаляются, поэтому индекс в коллекции — стабильная ссылка.
package add

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/culture-swap/internal/http/response"
	"github.com/magabrotheeeer/culture-swap/internal/lib/sl"
	"github.com/magabrotheeeer/culture-swap/internal/storage/jsondb"
)

// Service описывает интерфейс бизнес-логики лайков.
type Service interface {
	AddHeart(ctx context.Context, kind string, index int) (int, error)
}

// Handler обрабатывает HTTP-запросы на лайк элемента ленты.
type Handler struct {
	log     *slog.Logger
	service Service
	kind    string
}

// New создает Handler для элементов указанного вида
// (models.KindRecipe или models.KindStory).
func New(log *slog.Logger, service Service, kind string) *Handler {
	return &Handler{log: log, service: service, kind: kind}
}

// ServeHTTP godoc
// @Summary Поставить лайк
// @Description Увеличивает счётчик лайков рецепта или истории ровно на единицу.
// @Tags Content
// @Produce  json
// @Security BearerAuth
// @Param index path int true "Индекс элемента в его коллекции"
// @Success 200 {object} map[string]any "Новое значение счётчика"
// @Failure 400 {object} response.ErrorResponse "Некорректный индекс"
// @Failure 404 {object} response.ErrorResponse "Элемент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{index}/hearts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.heart.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", h.kind),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		log.Error("invalid index", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid item index"))
		return
	}

	hearts, err := h.service.AddHeart(r.Context(), h.kind, index)
	if errors.Is(err, jsondb.ErrItemNotFound) {
		log.Error("item not found", slog.Int("index", index))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("item not found"))
		return
	}
	if err != nil {
		log.Error("failed to add heart", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add heart"))
		return
	}

	log.Info("heart added", slog.Int("index", index), slog.Int("hearts", hearts))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"index":  index,
		"hearts": hearts,
	}))
}
