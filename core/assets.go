package core

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

// MinifyAsset minifies a css/js file from public/ into the cache dir and
// returns the hashed .min URL. In dev the path is returned untouched.
func MinifyAsset(env, path string, cacheDir string) string {
	if env != "prod" {
		return path
	}

	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)

	if ext != ".css" && ext != ".js" {
		return path
	}
	if strings.Contains(name, ".min") {
		return path
	}

	src := filepath.Join("public", strings.TrimPrefix(path, "/static/"))
	minPath := filepath.Join(cacheDir, "static", fmt.Sprintf("%s.min%s", name, ext))

	original, err := os.ReadFile(src)
	if err != nil {
		return path
	}

	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)

	var buf bytes.Buffer
	var minifyErr error

	switch ext {
	case ".css":
		minifyErr = m.Minify("text/css", &buf, bytes.NewReader(original))
	case ".js":
		minifyErr = m.Minify("application/javascript", &buf, bytes.NewReader(original))
	}
	if minifyErr != nil {
		return path
	}

	minified := buf.Bytes()

	if err := os.MkdirAll(filepath.Dir(minPath), os.ModePerm); err != nil {
		return path
	}
	if err := os.WriteFile(minPath, minified, 0644); err != nil {
		return path
	}

	if f, err := os.Create(minPath + ".gz"); err == nil {
		gz := gzip.NewWriter(f)
		if _, err := gz.Write(minified); err == nil {
			gz.Close()
		}
		f.Close()
	}

	return fmt.Sprintf("/static/%s.min%s?v=%s", name, ext, contentHash(minified))
}

// VersionedAsset appends a content hash query to a /static/ URL so caches
// revalidate on change. Looks in public/ first, then the minified cache.
func VersionedAsset(path, cacheDir string) string {
	if !strings.HasPrefix(path, "/static/") {
		return path
	}

	rel := strings.TrimPrefix(path, "/static/")
	locations := []string{
		filepath.Join("public", rel),
		filepath.Join(cacheDir, "static", rel),
	}

	for _, file := range locations {
		if content, err := os.ReadFile(file); err == nil {
			return fmt.Sprintf("/static/%s?v=%s", rel, contentHash(content))
		}
	}

	return path
}

func contentHash(content []byte) string {
	h := md5.New()
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))[:6]
}
