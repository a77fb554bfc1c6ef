package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"
)

//go:embed templates
var templatesFS embed.FS

// Форматы отображения даты концерта
const (
	DateMedium = "Mon 01, 02, 2006 3:04PM"
	DateFull   = "Monday January, 2, 2006 at 3:04PM"
)

// Page — общие данные для всех страниц
type Page struct {
	Title   string
	Flashes []string
	Data    any
}

// Renderer хранит отдельный набор шаблонов для каждой страницы:
// все страницы определяют блок "content" внутри общего layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	entries, err := fs.ReadDir(templatesFS, "templates/pages")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".html" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".html")
		t, err := template.New("layout.html").
			Funcs(Funcs()).
			ParseFS(templatesFS, "templates/layout.html", "templates/pages/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render выполняет шаблон страницы name внутри layout
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if err := t.ExecuteTemplate(w, "layout.html", page); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}

// Funcs — функции, доступные в шаблонах
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime":     FormatDatetime,
		"datetimeFull": FormatDatetimeFull,
		"contains":     func(list []string, s string) bool { return slices.Contains(list, s) },
	}
}

// FormatDatetime форматирует время начала концерта для списков
func FormatDatetime(t time.Time) string {
	return t.Format(DateMedium)
}

// FormatDatetimeFull — полная дата для подсказки на странице площадки или исполнителя
func FormatDatetimeFull(t time.Time) string {
	return t.Format(DateFull)
}
