package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "fyyur_session"

// FlashStore хранит одноразовые сообщения пользователю в подписанной cookie
type FlashStore struct {
	store  sessions.Store
	logger *slog.Logger
}

// NewFlashStore создаёт хранилище на основе gorilla/sessions CookieStore
func NewFlashStore(secret string, logger *slog.Logger) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store, logger: logger}
}

// Add сохраняет сообщение, которое будет показано на следующей странице
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, msg string) {
	sess := f.session(r)
	sess.AddFlash(msg)
	if err := sess.Save(r, w); err != nil {
		f.logger.Error("failed to save flash message", "error", err)
	}
}

// Pop забирает накопленные сообщения и очищает их в сессии
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []string {
	sess := f.session(r)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		f.logger.Error("failed to clear flash messages", "error", err)
	}

	msgs := make([]string, 0, len(raw))
	for _, m := range raw {
		msgs = append(msgs, fmt.Sprint(m))
	}
	return msgs
}

// session при повреждённой cookie возвращает новую пустую сессию
func (f *FlashStore) session(r *http.Request) *sessions.Session {
	sess, err := f.store.Get(r, sessionName)
	if err != nil {
		f.logger.Warn("invalid session cookie, starting new session", "error", err)
	}
	return sess
}
