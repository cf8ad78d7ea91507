// Package fs archives fetched legislation HTML to local files so a run's
// raw input can be inspected later.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/legisearch/legisearch"
)

// Archive writes raw HTML pages under a base directory, one file per URL.
type Archive struct {
	baseDir string
}

// NewArchive creates a new Archive rooted at baseDir.
func NewArchive(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

// Save writes html to the file derived from rawURL, creating parent
// directories as needed.
func (a *Archive) Save(rawURL, html string) error {
	relPath, err := URLToPath(rawURL)
	if err != nil {
		return legisearch.Errorf(legisearch.EINVALID, "archive %q: %v", rawURL, err)
	}

	fullPath := filepath.Join(a.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "archive %q: %v", rawURL, err)
	}
	if err := os.WriteFile(fullPath, []byte(html), 0644); err != nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "archive %q: %v", rawURL, err)
	}
	return nil
}

// URLToPath converts a legislation URL to a relative file path.
// Example: https://www.legislation.gov.uk/uksi/2024/1/made → uksi/2024/1/made.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := strings.TrimPrefix(u.Path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "index.html", nil
	}
	return path + ".html", nil
}
