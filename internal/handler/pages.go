package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/middleware"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/validator"
	"github.com/stemsi/heritage-admin/internal/view"
)

// Pages holds what every server-rendered handler needs: the UI strings, the
// flash queue and a logger for unexpected failures.
type Pages struct {
	lang  *view.Lang
	flash *service.FlashService
	log   zerolog.Logger
}

// NewPages creates the shared page helpers.
func NewPages(lang *view.Lang, flash *service.FlashService, log zerolog.Logger) *Pages {
	return &Pages{
		lang:  lang,
		flash: flash,
		log:   log.With().Str("component", "pages").Logger(),
	}
}

// page starts the data for a rendered page. The pending flash is consumed here,
// so it shows on exactly one page.
func (p *Pages) page(c *gin.Context, titleKey string) view.Page {
	pg := view.Page{Title: p.lang.T(titleKey)}
	if claims := middleware.GetClaims(c); claims != nil {
		pg.UserName = claims.Name
		pg.Flash = p.flash.Pop(c.Request.Context(), claims.ID)
	}
	return pg
}

// redirect queues a success flash and sends the browser to location.
func (p *Pages) redirect(c *gin.Context, location, flashKey string) {
	p.flash.Success(c.Request.Context(), middleware.SessionID(c), flashKey)
	c.Redirect(http.StatusSeeOther, location)
}

// redirectError queues an error flash and sends the browser to location.
func (p *Pages) redirectError(c *gin.Context, location, flashKey string) {
	p.flash.Error(c.Request.Context(), middleware.SessionID(c), flashKey)
	c.Redirect(http.StatusSeeOther, location)
}

func (p *Pages) notFound(c *gin.Context) {
	pg := p.page(c, "app.not_found")
	pg.Message = p.lang.T("app.not_found")
	c.HTML(http.StatusNotFound, "errors/not_found", pg)
}

func (p *Pages) badRequest(c *gin.Context, err error) {
	p.log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("unreadable form submission")
	pg := p.page(c, "app.bad_request")
	pg.Message = p.lang.T("app.bad_request")
	c.HTML(http.StatusBadRequest, "errors/error", pg)
}

func (p *Pages) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	p.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	pg := p.page(c, "app.server_error")
	pg.Message = p.lang.T("app.server_error")
	c.HTML(http.StatusInternalServerError, "errors/error", pg)
}

// fail maps a service error to its page: 404 for a missing record, 500 otherwise.
func (p *Pages) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		p.notFound(c)
		return
	}
	p.serverError(c, err)
}

// NotFound renders the 404 page for unmatched routes.
func (p *Pages) NotFound(c *gin.Context) {
	p.notFound(c)
}

// paramID parses the :id route parameter. Ids that cannot name a row render the 404 page.
func (p *Pages) paramID(c *gin.Context) (int, bool) {
	id, ok := model.ParseID(c.Param("id"))
	if !ok {
		p.notFound(c)
		return 0, false
	}
	return id, true
}

// validationFields returns the field errors of err, or nil when err is not a
// validation failure.
func validationFields(err error) map[string]string {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

// listFilter reads the search and paging query parameters.
func listFilter(c *gin.Context) model.ListFilter {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return model.ListFilter{Query: c.Query("q"), Page: page, PerPage: perPage}
}

func userID(c *gin.Context) int {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
