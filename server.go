// Package barber runs the QazCut salon site: a server-rendered home page,
// a small JSON API, and the static asset pipeline around them.
package barber

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/qazcut/barber/core"
)

type RuntimeConfig struct {
	Env         string
	EnableCache bool
	Port        int
}

const configFile = "barber.config.yml"

func Start(cfg RuntimeConfig) error {
	fmt.Println("Starting barber in", cfg.Env, "mode...")

	config := core.LoadConfig(configFile)
	config.CacheEnabled = cfg.EnableCache

	mux := http.NewServeMux()

	publicDir := "public"
	cacheStaticDir := filepath.Join(config.OutputDir, "static")

	if cfg.Env == "dev" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			http.FileServer(http.Dir(publicDir)).ServeHTTP(w, r)
		})))

		mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
			serveFileWithHeaders(w, r, filepath.Join(publicDir, "favicon.ico"), "no-store")
		})
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			serveFileWithHeaders(w, r, filepath.Join(publicDir, "robots.txt"), "no-store")
		})
	} else {
		mux.Handle("/static/", makeStaticHandler(publicDir, cacheStaticDir))

		mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
			serveFileWithHeaders(w, r, filepath.Join(publicDir, "favicon.ico"), immutableCache)
		})
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			serveFileWithHeaders(w, r, filepath.Join(publicDir, "robots.txt"), immutableCache)
		})
	}

	ctx := core.RuntimeContext{Env: cfg.Env}

	if cfg.Env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc("/__barber_reload", reloader.Handler)
		ctx.EnableWatch = true
		ctx.OnReload = reloader.BroadcastReload
	}

	router, err := core.NewRouter(config, ctx)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}
	defer router.Close()
	mux.Handle("/", router)

	fmt.Printf("✅ %s running at http://localhost:%d\n", config.SiteName, cfg.Port)
	return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), withRequestID(mux))
}

const immutableCache = "public, max-age=31536000, immutable"

// withRequestID tags every response so access logs can be correlated.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// makeStaticHandler serves prod assets: gzip variant from the minify cache
// when the client accepts it, then the plain cached file, then public/.
func makeStaticHandler(publicDir, cacheStaticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri := r.URL.Path
		if i := strings.Index(uri, "?"); i != -1 {
			uri = uri[:i]
		}
		trimmed := strings.TrimPrefix(uri, "/static/")
		cachedFile := filepath.Join(cacheStaticDir, trimmed)

		if acceptsGzip(r) {
			if gzipFile := cachedFile + ".gz"; fileExists(gzipFile) {
				w.Header().Set("Content-Type", detectMimeType(cachedFile))
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Set("Vary", "Accept-Encoding")
				w.Header().Set("Cache-Control", immutableCache)
				http.ServeFile(w, r, gzipFile)
				return
			}
		}

		if fileExists(cachedFile) {
			serveFileWithHeaders(w, r, cachedFile, immutableCache)
			return
		}

		if publicFile := filepath.Join(publicDir, trimmed); fileExists(publicFile) {
			serveFileWithHeaders(w, r, publicFile, immutableCache)
			return
		}

		http.NotFound(w, r)
	})
}

func serveFileWithHeaders(w http.ResponseWriter, r *http.Request, path, cacheControl string) {
	w.Header().Set("Content-Type", detectMimeType(path))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeFile(w, r, path)
}

func detectMimeType(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
