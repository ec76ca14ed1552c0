package core

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
)

const (
	layoutFile    = "templates/layout.html"
	templatesDir  = "templates"
	componentsDir = "components"
)

// Renderer executes page templates against their view-models. Templates are
// parsed per render so dev edits show up without a restart.
type Renderer struct {
	env      string
	cacheDir string
}

func NewRenderer(env, cacheDir string) *Renderer {
	return &Renderer{env: env, cacheDir: cacheDir}
}

// FuncMap is sprig's HTML-safe set plus the site helpers.
func (rd *Renderer) FuncMap() template.FuncMap {
	funcs := sprig.HtmlFuncMap()

	funcs["minify"] = func(path string) string {
		return MinifyAsset(rd.env, path, rd.cacheDir)
	}
	funcs["versioned"] = func(path string) string {
		return VersionedAsset(path, rd.cacheDir)
	}
	funcs["props"] = func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			panic("props must be called with an even number of arguments")
		}
		m := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				panic("props keys must be strings")
			}
			m[key] = values[i+1]
		}
		return m
	}
	funcs["safeHTML"] = func(s any) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}

	return funcs
}

// RenderPage writes the named page template wrapped in the site layout.
func (rd *Renderer) RenderPage(w io.Writer, page string, data any) error {
	files := []string{layoutFile, filepath.Join(templatesDir, page)}

	components, err := filepath.Glob(filepath.Join(componentsDir, "*.html"))
	if err == nil {
		files = append(files, components...)
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("template %s: %w", f, err)
		}
	}

	tmpl, err := template.New(filepath.Base(layoutFile)).Funcs(rd.FuncMap()).ParseFiles(files...)
	if err != nil {
		return fmt.Errorf("parse %s: %w", page, err)
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}
