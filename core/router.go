package core

import (
	"bytes"
	"log"
	"net/http"
	"strings"
)

type RuntimeContext struct {
	Env         string
	EnableWatch bool
	OnReload    func()
}

// Router serves the declared route table: match path, build the page's
// view-model, render it through the layout. Prod responses are cached.
type Router struct {
	config    Config
	env       string
	routes    []Route
	apiRoutes []APIRoute
	renderer  *Renderer
	watcher   *Watcher
}

func NewRouter(config Config, ctx RuntimeContext) (*Router, error) {
	routes, err := compileRoutes(SiteRoutes(config))
	if err != nil {
		return nil, err
	}

	apiRoutes, err := compileAPIRoutes(SiteAPIRoutes(config))
	if err != nil {
		return nil, err
	}

	r := &Router{
		config:    config,
		env:       ctx.Env,
		routes:    routes,
		apiRoutes: apiRoutes,
		renderer:  NewRenderer(ctx.Env, config.OutputDir),
	}

	if ctx.EnableWatch && ctx.OnReload != nil {
		watcher, err := NewWatcher(ctx.OnReload)
		if err != nil {
			return nil, err
		}
		if err := watcher.Watch(templatesDir, componentsDir, "public"); err != nil {
			log.Println("⚠️  watch disabled:", err)
			watcher.Close()
		} else {
			r.watcher = watcher
		}
	}

	return r, nil
}

func (r *Router) Close() {
	if r.watcher != nil {
		r.watcher.Close()
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(req.URL.Path, "/")

	if isAPIPath(path) {
		for _, route := range r.apiRoutes {
			if matches := route.URLPattern.FindStringSubmatch(path); matches != nil {
				r.handleAPI(w, req, route, matchParams(route.ParamKeys, matches))
				return
			}
		}
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	for _, route := range r.routes {
		if matches := route.URLPattern.FindStringSubmatch(path); matches != nil {
			r.servePage(w, req, route, matchParams(route.ParamKeys, matches))
			return
		}
	}

	r.renderError(w, http.StatusNotFound)
}

func matchParams(keys []string, matches []string) map[string]string {
	params := map[string]string{}
	for i, key := range keys {
		params[key] = matches[i+1]
	}
	return params
}

func (r *Router) servePage(w http.ResponseWriter, req *http.Request, route Route, params map[string]string) {
	path := strings.Trim(route.Spec.Path, "/")

	if r.env == "prod" && r.config.CacheEnabled {
		if html, ok := GetCachedHTML(r.config, path); ok {
			if r.config.DebugLogs {
				log.Println("💾 cache hit:", route.Spec.Path)
			}
			r.writePage(w, route, html, true)
			return
		}
	}

	var data any
	if route.Spec.Data != nil {
		result, err := route.Spec.Data(req, params)
		if err != nil {
			if IsNotFoundError(err) {
				r.renderError(w, http.StatusNotFound)
				return
			}
			log.Println("❌ page data:", route.Spec.Path, err)
			r.renderError(w, http.StatusInternalServerError)
			return
		}
		data = result
	}

	var buf bytes.Buffer
	if err := r.renderer.RenderPage(&buf, route.Spec.Template, data); err != nil {
		log.Println("❌ render:", route.Spec.Path, err)
		r.renderError(w, http.StatusInternalServerError)
		return
	}

	if r.env == "prod" && r.config.CacheEnabled {
		if err := SaveCachedHTML(r.config, path, buf.Bytes()); err != nil && r.config.DebugLogs {
			log.Println("⚠️  cache write:", route.Spec.Path, err)
		}
	}

	r.writePage(w, route, buf.Bytes(), false)
}

func (r *Router) writePage(w http.ResponseWriter, route Route, html []byte, fromCache bool) {
	if r.config.DebugHeaders {
		w.Header().Set("X-Barber-Route", route.Spec.Template)
		if fromCache {
			w.Header().Set("X-Barber-Cache", "hit")
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func (r *Router) renderError(w http.ResponseWriter, status int) {
	var buf bytes.Buffer
	data := map[string]any{
		"SiteName": r.config.SiteName,
		"Status":   status,
		"Message":  http.StatusText(status),
	}
	if err := r.renderer.RenderPage(&buf, "error.html", data); err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
