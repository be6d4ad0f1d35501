package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/response"
	"github.com/stemsi/heritage-admin/internal/service"
)

// APIHandler serves the read-only JSON API.
type APIHandler struct {
	heritages    *service.CulturalHeritageService
	subDistricts *service.SubDistrictService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(heritages *service.CulturalHeritageService, subDistricts *service.SubDistrictService) *APIHandler {
	return &APIHandler{heritages: heritages, subDistricts: subDistricts}
}

// ListCulturalHeritages godoc
// GET /api/v1/cultural-heritages?q=&page=&per_page=
func (h *APIHandler) ListCulturalHeritages(c *gin.Context) {
	records, total, f, err := h.heritages.List(c.Request.Context(), listFilter(c))
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Page(c, records, f, total)
}

// GetCulturalHeritage godoc
// GET /api/v1/cultural-heritages/:id
func (h *APIHandler) GetCulturalHeritage(c *gin.Context) {
	id, ok := model.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	record, err := h.heritages.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// ListSubDistricts godoc
// GET /api/v1/sub-districts
func (h *APIHandler) ListSubDistricts(c *gin.Context) {
	list, err := h.subDistricts.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, list)
}
