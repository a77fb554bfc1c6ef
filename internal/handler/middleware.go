package handler

import (
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	maxRequestBody  = 10 << 20
	maxUploadMemory = 8 << 20
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// SanitizeForm разбирает тело POST-запроса (urlencoded или multipart)
// и очищает все текстовые поля от HTML через bluemonday.
func SanitizeForm(logger *slog.Logger) func(next http.Handler) http.Handler {
	policy := bluemonday.StrictPolicy()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

			var err error
			if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				err = r.ParseMultipartForm(maxUploadMemory)
			} else {
				err = r.ParseForm()
			}
			if err != nil {
				logger.Warn("failed to parse form", "path", r.URL.Path, "error", err)
				http.Error(w, "Malformed form data", http.StatusBadRequest)
				return
			}

			sanitizeValues(policy, r.Form)
			sanitizeValues(policy, r.PostForm)
			if r.MultipartForm != nil {
				sanitizeValues(policy, r.MultipartForm.Value)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// StrictPolicy экранирует сущности, а шаблоны экранируют вывод сами,
// поэтому после очистки возвращаем исходные символы.
func sanitizeValues(policy *bluemonday.Policy, values map[string][]string) {
	for key, vals := range values {
		for i, v := range vals {
			vals[i] = html.UnescapeString(policy.Sanitize(v))
		}
		values[key] = vals
	}
}
