package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/view"
)

const culturalHeritagesPath = "/cultural-heritages"

// CulturalHeritageHandler serves the cultural heritage pages.
type CulturalHeritageHandler struct {
	pages        *Pages
	heritages    *service.CulturalHeritageService
	subDistricts *service.SubDistrictService
}

// NewCulturalHeritageHandler creates a new CulturalHeritageHandler.
func NewCulturalHeritageHandler(
	pages *Pages,
	heritages *service.CulturalHeritageService,
	subDistricts *service.SubDistrictService,
) *CulturalHeritageHandler {
	return &CulturalHeritageHandler{pages: pages, heritages: heritages, subDistricts: subDistricts}
}

// Index godoc
// GET /cultural-heritages
// Lists records, optionally filtered by ?q= and paged by ?page=.
func (h *CulturalHeritageHandler) Index(c *gin.Context) {
	records, total, f, err := h.heritages.List(c.Request.Context(), listFilter(c))
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	pg := h.pages.page(c, "cultural_heritage.list")
	pg.Records = records
	pg.Query = f.Query
	pg.Pager = view.NewPager(culturalHeritagesPath, f, total)
	c.HTML(http.StatusOK, "cultural_heritages/index", pg)
}

// Create godoc
// GET /cultural-heritages/create
func (h *CulturalHeritageHandler) Create(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "cultural_heritages/create", nil, view.NewForm(nil, nil))
}

// Store godoc
// POST /cultural-heritages
// Invalid input re-renders the form with 422 and stores nothing.
func (h *CulturalHeritageHandler) Store(c *gin.Context) {
	var in model.CulturalHeritageInput
	if err := c.ShouldBind(&in); err != nil {
		h.pages.badRequest(c, err)
		return
	}

	record, err := h.heritages.Create(c.Request.Context(), in, userID(c))
	if fields := validationFields(err); fields != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, "cultural_heritages/create", nil, view.NewForm(in.Normalize().Values(), fields))
		return
	}
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	h.pages.redirect(c, recordPath(culturalHeritagesPath, record.ID), "cultural_heritage.created")
}

// Show godoc
// GET /cultural-heritages/:id
func (h *CulturalHeritageHandler) Show(c *gin.Context) {
	record, ok := h.find(c)
	if !ok {
		return
	}

	pg := h.pages.page(c, "cultural_heritage.detail")
	pg.Record = record
	c.HTML(http.StatusOK, "cultural_heritages/show", pg)
}

// Edit godoc
// GET /cultural-heritages/:id/edit
// With ?action=delete the page asks for delete confirmation instead.
func (h *CulturalHeritageHandler) Edit(c *gin.Context) {
	record, ok := h.find(c)
	if !ok {
		return
	}

	h.renderForm(c, http.StatusOK, "cultural_heritages/edit", record, view.NewForm(record.Input().Values(), nil))
}

// Update godoc
// PATCH /cultural-heritages/:id
// All mutable fields are replaced; the creator is kept.
func (h *CulturalHeritageHandler) Update(c *gin.Context) {
	record, ok := h.find(c)
	if !ok {
		return
	}

	var in model.CulturalHeritageInput
	if err := c.ShouldBind(&in); err != nil {
		h.pages.badRequest(c, err)
		return
	}

	_, err := h.heritages.Update(c.Request.Context(), record.ID, in)
	if fields := validationFields(err); fields != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, "cultural_heritages/edit", record, view.NewForm(in.Normalize().Values(), fields))
		return
	}
	if err != nil {
		h.pages.fail(c, err)
		return
	}

	h.pages.redirect(c, recordPath(culturalHeritagesPath, record.ID), "cultural_heritage.updated")
}

// Destroy godoc
// DELETE /cultural-heritages/:id
func (h *CulturalHeritageHandler) Destroy(c *gin.Context) {
	id, ok := h.pages.paramID(c)
	if !ok {
		return
	}

	if err := h.heritages.Delete(c.Request.Context(), id); err != nil {
		h.pages.fail(c, err)
		return
	}

	h.pages.redirect(c, culturalHeritagesPath, "cultural_heritage.deleted")
}

// find loads the record named by :id, rendering the 404 page when there is none.
func (h *CulturalHeritageHandler) find(c *gin.Context) (*model.CulturalHeritage, bool) {
	id, ok := h.pages.paramID(c)
	if !ok {
		return nil, false
	}

	record, err := h.heritages.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return nil, false
	}
	return record, true
}

func (h *CulturalHeritageHandler) renderForm(c *gin.Context, status int, name string, record *model.CulturalHeritage, form *view.FormState) {
	subDistricts, err := h.subDistricts.List(c.Request.Context())
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	titleKey := "cultural_heritage.create"
	if record != nil {
		titleKey = "cultural_heritage.edit"
		if c.Query("action") == "delete" {
			titleKey = "cultural_heritage.delete"
		}
	}

	pg := h.pages.page(c, titleKey)
	pg.Record = record
	pg.Form = form
	pg.SubDistricts = subDistricts
	pg.Action = c.Query("action")
	c.HTML(status, name, pg)
}

func recordPath(base string, id int) string {
	return fmt.Sprintf("%s/%d", base, id)
}
