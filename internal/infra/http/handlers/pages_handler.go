package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var pageFS embed.FS

var pageTemplates = template.Must(template.ParseFS(pageFS, "templates/*.html"))

type pageData struct {
	HomeURL string
}

// PagesHandler renders the few server-side pages the site has.
type PagesHandler struct {
	HomeURL string
}

func NewPagesHandler(homeURL string) *PagesHandler {
	if homeURL == "" {
		homeURL = "/"
	}
	return &PagesHandler{HomeURL: homeURL}
}

func (h *PagesHandler) SignupSuccess(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "signup_success.html")
}

// NotFound answers API paths with JSON and everything else with HTML.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	h.render(w, http.StatusNotFound, "not_found.html")
}

func (h *PagesHandler) render(w http.ResponseWriter, status int, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	pageTemplates.ExecuteTemplate(w, name, pageData{HomeURL: h.HomeURL})
}
