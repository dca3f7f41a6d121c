package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Upload prefixes, one per resource kind
const (
	ShowImagePrefix = "astronomy_show"
	DomeImagePrefix = "planetarium_dome"
	UserImagePrefix = "user/avatar"
)

// ImageStore persists uploaded images and returns their reference path
type ImageStore interface {
	// Save writes the image under prefix, deriving the filename from name,
	// and returns the stored path relative to the media root
	Save(prefix, name, ext string, r io.Reader) (string, error)
}

// DiskImageStore implements ImageStore on the local filesystem
type DiskImageStore struct {
	root string
}

// NewDiskImageStore creates a DiskImageStore rooted at dir
func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{root: dir}
}

// Save writes the image to <root>/<prefix>/<slug(name)>-<uuid><ext> and
// returns the path relative to the root
func (s *DiskImageStore) Save(prefix, name, ext string, r io.Reader) (string, error) {
	filename := fmt.Sprintf("%s-%s%s", generateSlug(name), uuid.New().String(), strings.ToLower(ext))
	relative := filepath.Join(prefix, filename)
	target := filepath.Join(s.root, relative)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filepath.ToSlash(relative), nil
}

var consecutiveHyphens = regexp.MustCompile(`-+`)

// generateSlug converts a display name into a filesystem-safe slug
func generateSlug(s string) string {
	s = strings.ToLower(s)

	var builder strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' {
			builder.WriteRune('-')
		}
	}
	slug := builder.String()
	slug = consecutiveHyphens.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		slug = "image"
	}
	return slug
}
