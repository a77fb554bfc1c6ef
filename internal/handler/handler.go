package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/usecase"
	"github.com/GoArmGo/fyyur/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var (
	errValidation    = errors.New("form validation failed")
	errImageTooLarge = errors.New("image must be smaller than 5 MB")
	errImageType     = errors.New("only image files are allowed")
)

// Pinger проверяет доступность базы данных
type Pinger interface {
	Ping(ctx context.Context) error
}

// UseCases объединяет бизнес-логику, которую обслуживает Handler
type UseCases struct {
	Venues  usecase.VenueUseCase
	Artists usecase.ArtistUseCase
	Shows   usecase.ShowUseCase
	Genres  usecase.GenreUseCase
}

// Handler — обработчик HTTP-запросов сайта.
type Handler struct {
	venues   usecase.VenueUseCase
	artists  usecase.ArtistUseCase
	shows    usecase.ShowUseCase
	genres   usecase.GenreUseCase
	files    ports.FileStorage
	flashes  *FlashStore
	renderer *web.Renderer
	db       Pinger
	logger   *slog.Logger
}

// NewHandler создаёт новый экземпляр Handler. files может быть nil,
// тогда загрузка изображений отключена.
func NewHandler(
	uc UseCases,
	files ports.FileStorage,
	flashes *FlashStore,
	renderer *web.Renderer,
	db Pinger,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		venues:   uc.Venues,
		artists:  uc.Artists,
		shows:    uc.Shows,
		genres:   uc.Genres,
		files:    files,
		flashes:  flashes,
		renderer: renderer,
		db:       db,
		logger:   logger,
	}
}

// formView — данные шаблонов форм
type formView struct {
	Action         string
	Edit           bool
	Form           any
	Errors         map[string]string
	GenreChoices   []string
	StateChoices   []string
	UploadsEnabled bool
}

// searchView — данные страницы результатов поиска
type searchView struct {
	Kind   string
	Term   string
	Result domain.SearchResult
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// render отдаёт страницу со всеми накопленными flash-сообщениями и дополнительными flashes.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, flashes ...string) {
	page := web.Page{
		Title:   title,
		Flashes: append(h.flashes.Pop(w, r), flashes...),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, page); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write HTTP response", "error", err)
	}
}

// redirect сохраняет flash-сообщение и перенаправляет по схеме POST/redirect/GET
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, to, flash string) {
	if flash != "" {
		h.flashes.Add(w, r, flash)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// NotFound отдаёт страницу 404
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "404", "Not Found", nil)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	h.render(w, r, http.StatusInternalServerError, "500", "Server Error", nil)
}

// readError отдаёт 404 для отсутствующей записи и 500 для всего остального
func (h *Handler) readError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.serverError(w, r, err)
}

// writeStatus определяет код ответа для неудачной записи
func writeStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownGenre), errors.Is(err, domain.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeErrors переносит ссылочные ошибки в поля формы
func writeErrors(err error) map[string]string {
	var unknown *domain.UnknownGenresError
	switch {
	case errors.As(err, &unknown):
		return map[string]string{"genres": fmt.Sprintf("Unknown genres: %s.", strings.Join(unknown.Names, ", "))}
	case errors.Is(err, domain.ErrReferenceNotFound):
		return map[string]string{"form": "Artist or venue does not exist."}
	default:
		return nil
	}
}

// pathID разбирает {id} из пути; некорректный id считается отсутствующей записью
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) newFormView(ctx context.Context, action string, edit bool, form any, errs map[string]string) formView {
	genres, err := h.genres.ListGenreNames(ctx)
	if err != nil {
		h.logger.Error("failed to load genre choices", "error", err)
	}
	return formView{
		Action:         action,
		Edit:           edit,
		Form:           form,
		Errors:         errs,
		GenreChoices:   genres,
		StateChoices:   stateChoices,
		UploadsEnabled: h.files != nil,
	}
}

// uploadImage загружает image_file из multipart-формы и возвращает его URL и ключ объекта.
// Пустой ключ без ошибки означает, что файл не передан.
func (h *Handler) uploadImage(r *http.Request, prefix string) (string, string, error) {
	if h.files == nil || r.MultipartForm == nil {
		return "", "", nil
	}

	file, header, err := r.FormFile("image_file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("read image_file: %w", err)
	}
	defer file.Close()

	if header.Size > maxImageSize {
		return "", "", errImageTooLarge
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", errImageType
	}

	key := imageObjectKey(prefix, header.Filename)
	url, err := h.files.UploadFile(r.Context(), key, file, contentType)
	if err != nil {
		return "", "", fmt.Errorf("upload image: %w", err)
	}

	h.logger.Info("image uploaded", "key", key, "size", header.Size)
	return url, key, nil
}

// discardImage удаляет загруженное изображение, если запись не сохранилась
func (h *Handler) discardImage(ctx context.Context, key string) {
	if key == "" || h.files == nil {
		return
	}
	if err := h.files.DeleteFile(ctx, key); err != nil {
		h.logger.Warn("failed to remove orphaned image", "key", key, "error", err)
		return
	}
	h.logger.Info("orphaned image removed", "key", key)
}

func isImageValidationError(err error) bool {
	return errors.Is(err, errImageTooLarge) || errors.Is(err, errImageType)
}

// imageObjectKey строит уникальный ключ вида "<prefix>/<uuid><ext>"
func imageObjectKey(prefix, filename string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
