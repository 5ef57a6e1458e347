package handler

import (
	"errors"
	"log"
	"net/http"

	"lumina_site/internal/api/middleware"
	"lumina_site/internal/app/service"
	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"
	"lumina_site/internal/i18n"
	"lumina_site/web"

	"github.com/go-chi/chi/v5"
)

// PageHandler renders the server-side pages. Every handler pulls the
// locale and user the middleware resolved; templates never re-derive them.
type PageHandler struct {
	renderer       *web.Renderer
	bundle         *i18n.Bundle
	contentService *service.ContentService
	fileService    *service.FileService
}

func NewPageHandler(renderer *web.Renderer, bundle *i18n.Bundle, contentService *service.ContentService, fileService *service.FileService) *PageHandler {
	return &PageHandler{
		renderer:       renderer,
		bundle:         bundle,
		contentService: contentService,
		fileService:    fileService,
	}
}

func (h *PageHandler) RegisterPublic(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/products", h.products)
	r.Get("/blog", h.blogList)
	r.Get("/blog/{slug}", h.blogPost)
	r.Get("/login", h.login)
	r.Get("/register", h.register)
}

func (h *PageHandler) RegisterAuthenticated(r chi.Router) {
	r.Get("/profile", h.profile)
}

func (h *PageHandler) RegisterAdmin(r chi.Router) {
	r.Get("/admin", h.adminDashboard)
	r.Get("/admin/files", h.adminFiles)
}

func (h *PageHandler) pageData(r *http.Request, data interface{}) web.PageData {
	user, _ := middleware.GetUserFromContext(r.Context())
	return web.PageData{
		T:    h.bundle.Translator(middleware.GetLocale(r.Context())),
		Path: r.URL.Path,
		User: user,
		Data: data,
	}
}

func (h *PageHandler) home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "home", h.pageData(r, nil))
}

func (h *PageHandler) products(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "products", h.pageData(r, h.contentService.Products(r.Context())))
}

func (h *PageHandler) blogList(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "blog_list", h.pageData(r, h.contentService.Posts(r.Context())))
}

func (h *PageHandler) blogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentService.PostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, common.ErrInternalServer.Error(), http.StatusInternalServerError)
		return
	}
	h.renderer.Render(w, http.StatusOK, "blog_post", h.pageData(r, post))
}

type authPageData struct {
	Error    string
	Message  string
	Redirect string
}

func (h *PageHandler) login(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.renderer.Render(w, http.StatusOK, "login", h.pageData(r, authPageData{
		Error:    q.Get("error"),
		Message:  q.Get("message"),
		Redirect: q.Get("redirect"),
	}))
}

func (h *PageHandler) register(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.renderer.Render(w, http.StatusOK, "register", h.pageData(r, authPageData{
		Error:   q.Get("error"),
		Message: q.Get("message"),
	}))
}

func (h *PageHandler) profile(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "profile", h.pageData(r, nil))
}

func (h *PageHandler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.fileService.Stats(r.Context())
	if err != nil {
		// The dashboard still renders with zeroed counters.
		log.Printf("loading storage stats: %v", err)
		stats = &model.StorageStats{StorageUsed: "0 Bytes"}
	}
	h.renderer.Render(w, http.StatusOK, "admin_dashboard", h.pageData(r, stats))
}

func (h *PageHandler) adminFiles(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	files, err := h.fileService.List(r.Context(), folder, 0)
	if err != nil {
		log.Printf("loading file list: %v", err)
		files = nil
	}
	h.renderer.Render(w, http.StatusOK, "admin_files", h.pageData(r, struct {
		Files  interface{}
		Folder string
	}{Files: files, Folder: folder}))
}
