package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"lumina_site/internal/domain/model"
	"lumina_site/internal/i18n"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageNames = []string{
	"home", "products", "blog_list", "blog_post",
	"login", "register", "profile",
	"admin_dashboard", "admin_files",
}

// Renderer holds the parsed page templates. Every page shares layout.tmpl;
// translation happens inside the templates via the per-request Translator.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.tmpl",
			fmt.Sprintf("templates/%s.tmpl", name),
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// PageData is what every template receives. Path is the residual
// (unprefixed) request path; Data carries the page-specific payload.
type PageData struct {
	T    *i18n.Translator
	Path string
	User *model.User
	Data interface{}
}

// Localize prefixes a residual path for the page's locale, for nav links.
func (d PageData) Localize(path string) string {
	return i18n.Localize(path, d.T.Locale())
}

// PathIn renders the current page's path under another locale, for the
// language switcher.
func (d PageData) PathIn(locale string) string {
	return i18n.Localize(d.Path, i18n.Locale(locale))
}

func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data PageData) {
	tmpl, ok := r.pages[name]
	if !ok {
		log.Printf("render: unknown template %q", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("render: executing %q: %v", name, err)
	}
}
