package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	f := domain.ProjectFilters{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			respondErr(c, http.StatusBadRequest, "featured must be a boolean")
			return
		}
		f.Featured = &featured
	}

	items, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) listFeatured(c *gin.Context) {
	items, err := h.svc.ListFeatured(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, categories)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondErr(c, http.StatusNotFound, err.Error())
			return
		}
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateProjectData
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		respondErr(c, http.StatusBadRequest, domain.ErrMissingTitle.Error())
		return
	}
	if req.TechStack == nil {
		req.TechStack = []string{}
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	var req domain.UpdateProjectData
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Empty() {
		respondErr(c, http.StatusBadRequest, domain.ErrEmptyUpdate.Error())
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondErr(c, http.StatusNotFound, err.Error())
			return
		}
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondErr(c, http.StatusNotFound, err.Error())
			return
		}
		respondErr(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, true)
}
