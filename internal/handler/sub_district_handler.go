package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/view"
)

const subDistrictsPath = "/sub-districts"

// SubDistrictHandler serves the sub-district pages.
type SubDistrictHandler struct {
	pages        *Pages
	subDistricts *service.SubDistrictService
}

// NewSubDistrictHandler creates a new SubDistrictHandler.
func NewSubDistrictHandler(pages *Pages, subDistricts *service.SubDistrictService) *SubDistrictHandler {
	return &SubDistrictHandler{pages: pages, subDistricts: subDistricts}
}

// Index godoc
// GET /sub-districts
func (h *SubDistrictHandler) Index(c *gin.Context) {
	list, err := h.subDistricts.List(c.Request.Context())
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	pg := h.pages.page(c, "sub_district.list")
	pg.Records = list
	c.HTML(http.StatusOK, "sub_districts/index", pg)
}

// Create godoc
// GET /sub-districts/create
func (h *SubDistrictHandler) Create(c *gin.Context) {
	h.render(c, http.StatusOK, "sub_districts/create", nil, view.NewForm(nil, nil))
}

// Store godoc
// POST /sub-districts
func (h *SubDistrictHandler) Store(c *gin.Context) {
	var in model.SubDistrictInput
	if err := c.ShouldBind(&in); err != nil {
		h.pages.badRequest(c, err)
		return
	}

	sd, err := h.subDistricts.Create(c.Request.Context(), in)
	if fields := validationFields(err); fields != nil {
		h.render(c, http.StatusUnprocessableEntity, "sub_districts/create", nil, view.NewForm(in.Normalize().Values(), fields))
		return
	}
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	h.pages.redirect(c, recordPath(subDistrictsPath, sd.ID), "sub_district.created")
}

// Show godoc
// GET /sub-districts/:id
func (h *SubDistrictHandler) Show(c *gin.Context) {
	sd, ok := h.find(c)
	if !ok {
		return
	}

	pg := h.pages.page(c, "sub_district.detail")
	pg.Record = sd
	c.HTML(http.StatusOK, "sub_districts/show", pg)
}

// Edit godoc
// GET /sub-districts/:id/edit
// With ?action=delete the page asks for delete confirmation instead.
func (h *SubDistrictHandler) Edit(c *gin.Context) {
	sd, ok := h.find(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "sub_districts/edit", sd, view.NewForm(sd.Input().Values(), nil))
}

// Update godoc
// PATCH /sub-districts/:id
func (h *SubDistrictHandler) Update(c *gin.Context) {
	sd, ok := h.find(c)
	if !ok {
		return
	}

	var in model.SubDistrictInput
	if err := c.ShouldBind(&in); err != nil {
		h.pages.badRequest(c, err)
		return
	}

	_, err := h.subDistricts.Update(c.Request.Context(), sd.ID, in)
	if fields := validationFields(err); fields != nil {
		h.render(c, http.StatusUnprocessableEntity, "sub_districts/edit", sd, view.NewForm(in.Normalize().Values(), fields))
		return
	}
	if err != nil {
		h.pages.fail(c, err)
		return
	}

	h.pages.redirect(c, recordPath(subDistrictsPath, sd.ID), "sub_district.updated")
}

// Destroy godoc
// DELETE /sub-districts/:id
// A sub-district still used by cultural heritage records is kept and the
// detail page explains why.
func (h *SubDistrictHandler) Destroy(c *gin.Context) {
	id, ok := h.pages.paramID(c)
	if !ok {
		return
	}

	err := h.subDistricts.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrInUse):
		h.pages.redirectError(c, recordPath(subDistrictsPath, id), "sub_district.undeleteable")
		return
	case err != nil:
		h.pages.fail(c, err)
		return
	}

	h.pages.redirect(c, subDistrictsPath, "sub_district.deleted")
}

func (h *SubDistrictHandler) find(c *gin.Context) (*model.SubDistrict, bool) {
	id, ok := h.pages.paramID(c)
	if !ok {
		return nil, false
	}

	sd, err := h.subDistricts.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return nil, false
	}
	return sd, true
}

func (h *SubDistrictHandler) render(c *gin.Context, status int, name string, sd *model.SubDistrict, form *view.FormState) {
	titleKey := "sub_district.create"
	if sd != nil {
		titleKey = "sub_district.edit"
	}

	pg := h.pages.page(c, titleKey)
	pg.Record = sd
	pg.Form = form
	pg.Action = c.Query("action")
	c.HTML(status, name, pg)
}
