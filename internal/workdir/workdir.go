// Package workdir resolves where the notice tools look for their catalog.
package workdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// CatalogFile is the catalog file name looked up when no path is given.
const CatalogFile = "태그_날짜_날씨_추가된_메시지.xlsx"

// ErrCatalogNotFound is returned when no candidate catalog path exists.
var ErrCatalogNotFound = errors.New("catalog not found")

// Root returns the base directory for notice working files.
// The path is expanded at runtime to resolve to:
//
//	$HOME/Documents/Alkime/Notices
func Root() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "Alkime", "Notices"), nil
}

// FilePath returns the full path for a file under Root.
func FilePath(filename string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filename), nil
}

// CatalogPath picks the catalog to load. An explicit path is returned as-is;
// otherwise CatalogFile is looked up in the current directory and then
// under Root.
func CatalogPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	candidates := []string{CatalogFile}
	if p, err := FilePath(CatalogFile); err == nil {
		candidates = append(candidates, p)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: looked in %v", ErrCatalogNotFound, candidates)
}

// Prep ensures that Root exists.
func Prep() error {
	root, err := Root()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", root, err)
	}

	return nil
}
