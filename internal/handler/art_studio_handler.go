package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/view"
)

const artStudiosPath = "/art-studios"

// ArtStudioHandler serves the art studio pages.
type ArtStudioHandler struct {
	pages   *Pages
	studios *service.ArtStudioService
}

// NewArtStudioHandler creates a new ArtStudioHandler.
func NewArtStudioHandler(pages *Pages, studios *service.ArtStudioService) *ArtStudioHandler {
	return &ArtStudioHandler{pages: pages, studios: studios}
}

// Index godoc
// GET /art-studios
func (h *ArtStudioHandler) Index(c *gin.Context) {
	records, total, f, err := h.studios.List(c.Request.Context(), listFilter(c))
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	pg := h.pages.page(c, "art_studio.list")
	pg.Records = records
	pg.Query = f.Query
	pg.Pager = view.NewPager(artStudiosPath, f, total)
	c.HTML(http.StatusOK, "art_studios/index", pg)
}

// Create godoc
// GET /art-studios/create
func (h *ArtStudioHandler) Create(c *gin.Context) {
	h.render(c, http.StatusOK, "art_studios/create", nil, view.NewForm(nil, nil))
}

// Store godoc
// POST /art-studios
func (h *ArtStudioHandler) Store(c *gin.Context) {
	var in model.ArtStudioInput
	if err := c.ShouldBind(&in); err != nil {
		h.pages.badRequest(c, err)
		return
	}

	studio, err := h.studios.Create(c.Request.Context(), in, userID(c))
	if fields := validationFields(err); fields != nil {
		h.render(c, http.StatusUnprocessableEntity, "art_studios/create", nil, view.NewForm(in.Normalize().Values(), fields))
		return
	}
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	h.pages.redirect(c, recordPath(artStudiosPath, studio.ID), "art_studio.created")
}

// Show godoc
// GET /art-studios/:id
func (h *ArtStudioHandler) Show(c *gin.Context) {
	studio, ok := h.find(c)
	if !ok {
		return
	}

	pg := h.pages.page(c, "art_studio.detail")
	pg.Record = studio
	c.HTML(http.StatusOK, "art_studios/show", pg)
}

// Edit godoc
// GET /art-studios/:id/edit
// With ?action=delete the page asks for delete confirmation instead.
func (h *ArtStudioHandler) Edit(c *gin.Context) {
	studio, ok := h.find(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "art_studios/edit", studio, view.NewForm(studio.Input().Values(), nil))
}

// Update godoc
// PATCH /art-studios/:id
func (h *ArtStudioHandler) Update(c *gin.Context) {
	studio, ok := h.find(c)
	if !ok {
		return
	}

	var in model.ArtStudioInput
	if err := c.ShouldBind(&in); err != nil {
		h.pages.badRequest(c, err)
		return
	}

	_, err := h.studios.Update(c.Request.Context(), studio.ID, in)
	if fields := validationFields(err); fields != nil {
		h.render(c, http.StatusUnprocessableEntity, "art_studios/edit", studio, view.NewForm(in.Normalize().Values(), fields))
		return
	}
	if err != nil {
		h.pages.fail(c, err)
		return
	}

	h.pages.redirect(c, recordPath(artStudiosPath, studio.ID), "art_studio.updated")
}

// Destroy godoc
// DELETE /art-studios/:id
func (h *ArtStudioHandler) Destroy(c *gin.Context) {
	id, ok := h.pages.paramID(c)
	if !ok {
		return
	}

	if err := h.studios.Delete(c.Request.Context(), id); err != nil {
		h.pages.fail(c, err)
		return
	}

	h.pages.redirect(c, artStudiosPath, "art_studio.deleted")
}

// find loads the studio named by :id, rendering the 404 page when there is none.
func (h *ArtStudioHandler) find(c *gin.Context) (*model.ArtStudio, bool) {
	id, ok := h.pages.paramID(c)
	if !ok {
		return nil, false
	}

	studio, err := h.studios.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return nil, false
	}
	return studio, true
}

func (h *ArtStudioHandler) render(c *gin.Context, status int, name string, studio *model.ArtStudio, form *view.FormState) {
	titleKey := "art_studio.create"
	if studio != nil {
		titleKey = "art_studio.edit"
	}

	pg := h.pages.page(c, titleKey)
	pg.Record = studio
	pg.Form = form
	pg.Action = c.Query("action")
	c.HTML(status, name, pg)
}
