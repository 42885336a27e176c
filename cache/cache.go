package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
)

const pagesDir = "cache/pages"

// PagePath returns the cache file path for a rendered page. Pages are keyed
// by URL path and language, since the same path renders differently per
// language.
func PagePath(path, lang string) string {
	hash := generateHash(path + "|" + lang)
	return filepath.Join(pagesDir, fmt.Sprintf("%s_%s.html", lang, hash[:16]))
}

func generateHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// WritePage stores rendered HTML for a path/language pair.
func WritePage(path, lang, html string) error {
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(PagePath(path, lang), []byte(html), 0644)
}

// ReadPage returns cached HTML if present and younger than maxAge.
func ReadPage(path, lang string, maxAge time.Duration) (string, bool) {
	cachePath := PagePath(path, lang)

	info, err := os.Stat(cachePath)
	if err != nil {
		return "", false
	}
	if time.Since(info.ModTime()) > maxAge {
		return "", false
	}

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return "", false
	}
	return string(content), true
}

// ClearPages drops every cached page. Called after any blog mutation so
// public pages never serve stale content.
func ClearPages() error {
	return os.RemoveAll(pagesDir)
}
