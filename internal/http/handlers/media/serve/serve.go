// Package serve реализует HTTP-обработчик отдачи сохранённых вложений
// по ссылке вида media/<имя файла>.
package serve

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/culture-swap/internal/http/response"
	"github.com/magabrotheeeer/culture-swap/internal/lib/sl"
	"github.com/magabrotheeeer/culture-swap/internal/storage/media"
)

// Store описывает интерфейс чтения медиахранилища.
type Store interface {
	Open(fileName string) (*os.File, error)
}

// Handler отдаёт байты сохранённых вложений.
type Handler struct {
	log   *slog.Logger
	store Store
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, store Store) *Handler {
	return &Handler{log: log, store: store}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.media.serve"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name := chi.URLParam(r, "filename")
	f, err := h.store.Open(name)
	if errors.Is(err, media.ErrNotFound) || errors.Is(err, media.ErrExtension) {
		log.Error("media not found", slog.String("file", name))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("media file not found"))
		return
	}
	if err != nil {
		log.Error("failed to open media", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read media file"))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	stat, err := f.Stat()
	if err != nil {
		log.Error("failed to stat media", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read media file"))
		return
	}
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
}
