package view

import (
	"fmt"
	"net/url"

	"github.com/stemsi/heritage-admin/internal/model"
)

// Page is the data every template renders from.
type Page struct {
	Title    string
	UserName string
	Flash    *model.Flash
	Form     *FormState
	// Action is "delete" on the delete-confirmation variant of an edit page.
	Action string
	Query  string
	Pager  *Pager

	Record       any
	Records      any
	SubDistricts []model.SubDistrict

	// Message is a plain error text on error pages and the login form.
	Message string
}

// Pager describes the position of a listing page.
type Pager struct {
	Page       int
	TotalPages int
	Total      int
	Offset     int
	basePath   string
	query      string
}

// NewPager builds a Pager for a listing at basePath.
func NewPager(basePath string, f model.ListFilter, total int) *Pager {
	return &Pager{
		Page:       f.Page,
		TotalPages: f.TotalPages(total),
		Total:      total,
		Offset:     f.Offset(),
		basePath:   basePath,
		query:      f.Query,
	}
}

func (p *Pager) HasPrev() bool { return p.Page > 1 }
func (p *Pager) HasNext() bool { return p.Page < p.TotalPages }

func (p *Pager) PrevURL() string { return p.url(p.Page - 1) }
func (p *Pager) NextURL() string { return p.url(p.Page + 1) }

// Number returns the row number of the i-th item on the page.
func (p *Pager) Number(i int) int { return p.Offset + i + 1 }

func (p *Pager) url(page int) string {
	v := url.Values{}
	v.Set("page", fmt.Sprint(page))
	if p.query != "" {
		v.Set("q", p.query)
	}
	return p.basePath + "?" + v.Encode()
}
