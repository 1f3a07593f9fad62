package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/dto"
)

// Page template names accepted by Renderer.Render.
const (
	PageHome          = "home"
	PageAbout         = "about"
	PageProducts      = "products"
	PageProductDetail = "product-detail"
	PageContact       = "contact"
	PageError         = "error"
)

var pageNames = []string{PageHome, PageAbout, PageProducts, PageProductDetail, PageContact, PageError}

//go:embed templates
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates. Each page
// is parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page template. It fails fast on template syntax errors.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcMap()).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into w. Output is buffered so a failing
// template never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"label":      Label,
		"fieldError": FieldError,
		"year":       func() int { return time.Now().Year() },
		"isActive":   isActive,
	}
}

// Label turns a slug such as "exterior-cladding" into "Exterior Cladding".
func Label(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FieldError returns the first violation message for field, or "".
func FieldError(errs []dto.FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func isActive(pageURL, prefix string) bool {
	if prefix == "/" {
		return pageURL == "/"
	}
	return strings.HasPrefix(pageURL, prefix)
}
