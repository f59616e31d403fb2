package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KaramelBytes/folio-cli/internal/portfolio"
)

// ProjectHandler serves the extracted projects and the rendered document.
type ProjectHandler struct {
	service *portfolio.Service
	source  Source
	logger  *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(svc *portfolio.Service, src Source, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{service: svc, source: src, logger: logger}
}

// load reads the source and builds the portfolio, answering 500 on failure.
func (h *ProjectHandler) load(w http.ResponseWriter) (*portfolio.Portfolio, bool) {
	doc, err := h.source()
	if err != nil {
		h.logger.Error("load source", "err", err)
		respondError(w, http.StatusInternalServerError, "Failed to load projects")
		return nil, false
	}
	p, err := h.service.Build(doc)
	if err != nil {
		h.logger.Error("build portfolio", "source", doc.Path, "err", err)
		respondError(w, http.StatusInternalServerError, "Failed to build projects")
		return nil, false
	}
	return p, true
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, p.Projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w)
	if !ok {
		return
	}
	entry, err := p.Get(chi.URLParam(r, "id"))
	if errors.Is(err, portfolio.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// GetHTML handles GET /api/html
func (h *ProjectHandler) GetHTML(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(p.HTML))
}

// Page handles GET /
func (h *ProjectHandler) Page(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.WritePage(w); err != nil {
		h.logger.Error("write page", "err", err)
	}
}
