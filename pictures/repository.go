// Package pictures is the image repository puzzles are cut from: it lists
// the pictures in a directory, decodes them, and scales them down to fit
// the puzzle window.
package pictures

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/they4kman/goslide/util/collections"
)

var Extensions = collections.NewSet(".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp")

type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

func (repo *Repository) Dir() string {
	return repo.dir
}

// List returns the names of all files in the directory with a picture
// extension. Subdirectories are not searched.
func (repo *Repository) List() (collections.Set[string], error) {
	entries, err := os.ReadDir(repo.dir)
	if err != nil {
		return nil, fmt.Errorf("pictures: cannot list %s: %w", repo.dir, err)
	}

	names := make(collections.Set[string])
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Extensions.Contains(strings.ToLower(filepath.Ext(entry.Name()))) {
			names.Add(entry.Name())
		}
	}
	return names, nil
}

func (repo *Repository) Load(name string) (image.Image, error) {
	path := filepath.Join(repo.dir, name)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pictures: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("pictures: cannot decode %s: %w", path, err)
	}
	return img, nil
}
