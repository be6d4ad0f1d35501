package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed all:templates
var templatesFS embed.FS

// Renderer implements gin's render.HTMLRender with one template set per page, so
// each page can define its own "content" block inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/ for lang.
// Page names are "<dir>/<file>" without extension, e.g. "cultural_heritages/edit".
// Files starting with "_" are partials shared by the pages of their directory.
func NewRenderer(lang *Lang) (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}

	funcs := template.FuncMap{
		"t":   lang.T,
		"add": func(a, b int) int { return a + b },
	}

	files, err := fs.Glob(templatesFS, "templates/*/*.html")
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		dir, base := path.Split(file)
		if strings.HasPrefix(base, "_") || strings.HasSuffix(dir, "layout/") {
			continue
		}

		patterns := []string{"templates/layout/*.html", file}
		if partials, _ := fs.Glob(templatesFS, dir+"_*.html"); len(partials) > 0 {
			patterns = append(patterns, dir+"_*.html")
		}

		tmpl, err := template.New(base).Funcs(funcs).ParseFS(templatesFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		r.pages[name] = tmpl
	}

	return r, nil
}

// Instance returns the render for page name. Unknown names panic, which Gin's
// recovery middleware turns into a 500.
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("view: unknown page %q", name))
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}
