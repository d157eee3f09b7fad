// Package upload реализует HTTP-обработчик загрузки вложений.
//
// Принимает multipart-форму с полем "files", сохраняет каждый файл в
// медиахранилище и возвращает ссылки, которые затем передаются в поле
// media при публикации рецепта или истории.
package upload

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/culture-swap/internal/http/response"
	"github.com/magabrotheeeer/culture-swap/internal/lib/sl"
	"github.com/magabrotheeeer/culture-swap/internal/storage/media"
)

// Ограничение на размер формы в памяти, хвост уходит во временные файлы.
const maxMemory = 32 << 20

// Store описывает интерфейс медиахранилища.
type Store interface {
	Save(fileName string, r io.Reader) (string, error)
}

// Handler обрабатывает HTTP-запросы на загрузку вложений.
type Handler struct {
	log   *slog.Logger
	store Store
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, store Store) *Handler {
	return &Handler{log: log, store: store}
}

// ServeHTTP godoc
// @Summary Загрузить вложения
// @Description Сохраняет файлы из multipart-формы и возвращает их ссылки. Допустимы jpg, jpeg, png, mp4.
// @Tags Media
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param files formData file true "Файлы вложений"
// @Success 200 {object} map[string]any "Ссылки на сохранённые файлы"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма или расширение"
// @Failure 500 {object} response.ErrorResponse "Ошибка записи"
// @Router /media [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.media.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		log.Error("no files in form")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no files uploaded"))
		return
	}

	refs := make([]string, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			log.Error("failed to open uploaded file", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not read uploaded file"))
			return
		}
		ref, err := h.store.Save(header.Filename, f)
		_ = f.Close()
		if errors.Is(err, media.ErrExtension) {
			log.Error("unsupported extension", slog.String("file", header.Filename))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("only jpg, jpeg, png and mp4 files are accepted"))
			return
		}
		if err != nil {
			log.Error("failed to save file", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not save uploaded file"))
			return
		}
		refs = append(refs, ref)
	}

	log.Info("media saved", slog.Int("count", len(refs)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"media": refs,
	}))
}
