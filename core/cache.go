package core

import (
	"compress/gzip"
	"os"
	"path/filepath"
)

// cacheKey maps a request path to its directory under the output dir. The
// root path is stored as "index".
func cacheKey(routePath string) string {
	if routePath == "" {
		return "index"
	}
	return routePath
}

func GetCachedHTML(config Config, routePath string) ([]byte, bool) {
	cachePath := filepath.Join(config.OutputDir, cacheKey(routePath), "index.html")

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}

	return content, true
}

// SaveCachedHTML writes the rendered page plus a gzip variant next to it.
func SaveCachedHTML(config Config, routePath string, html []byte) error {
	outDir := filepath.Join(config.OutputDir, cacheKey(routePath))
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return err
	}

	htmlPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return err
	}

	f, err := os.Create(htmlPath + ".gz")
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	_, err = gz.Write(html)
	return err
}
