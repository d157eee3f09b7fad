// Package create реализует HTTP-обработчик публикации рецепта.
//
// Handler принимает JSON с данными рецепта, валидирует обязательные поля
// и словари тегов, подставляет автора из контекста и добавляет запись в
// коллекцию. Вложения к этому моменту уже должны быть загружены через
// /media, сюда передаются только их ссылки.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/culture-swap/internal/http/middlewarectx"
	"github.com/magabrotheeeer/culture-swap/internal/http/response"
	"github.com/magabrotheeeer/culture-swap/internal/lib/sl"
	"github.com/magabrotheeeer/culture-swap/internal/lib/tags"
	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// Service описывает интерфейс бизнес-логики публикации рецепта.
type Service interface {
	CreateRecipe(ctx context.Context, author string, req models.DummyRecipe) (int, error)
}

// Handler обрабатывает HTTP-запросы на публикацию рецептов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Опубликовать рецепт
// @Description Добавляет рецепт текущего пользователя в коллекцию. Возвращает индекс записи.
// @Tags Content
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyRecipe true "Данные рецепта"
// @Success 200 {object} map[string]any "Рецепт опубликован"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или посторонний тег"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRecipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	index, err := h.service.CreateRecipe(r.Context(), username, req)
	if errors.Is(err, tags.ErrUnknownTag) {
		log.Error("unknown tag", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("tag is not in the allowed vocabulary"))
		return
	}
	if err != nil {
		log.Error("failed to create recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create recipe"))
		return
	}

	log.Info("recipe created", slog.Int("index", index))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"index": index,
	}))
}
