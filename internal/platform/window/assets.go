package window

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"os"
	"path/filepath"
)

// Image names looked up in the assets directory, each as <name>.png.
const (
	AssetBackground = "background"
	AssetBlade      = "blade"
)

// Assets holds the decoded images found in an assets directory. Anything
// missing is drawn procedurally instead.
type Assets struct {
	images map[string]image.Image
}

// AssetNames lists every image the window can use.
func AssetNames(textures []string) []string {
	names := []string{AssetBackground, AssetBlade}
	seen := map[string]bool{AssetBackground: true, AssetBlade: true}
	for _, t := range textures {
		if !seen[t] {
			seen[t] = true
			names = append(names, t)
		}
	}
	return names
}

// LoadAssets decodes <dir>/<name>.png for each name. Missing files are
// skipped; files that exist but fail to decode are reported together while
// the rest still load. An empty dir loads nothing.
func LoadAssets(dir string, names []string) (*Assets, error) {
	a := &Assets{images: make(map[string]image.Image)}
	if dir == "" {
		return a, nil
	}

	var errs []error
	for _, name := range names {
		img, err := decodePNG(filepath.Join(dir, name+".png"))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			errs = append(errs, err)
		default:
			a.images[name] = img
		}
	}

	if len(errs) > 0 {
		return a, fmt.Errorf("window: load assets: %w", errors.Join(errs...))
	}
	return a, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Get returns the image registered under name.
func (a *Assets) Get(name string) (image.Image, bool) {
	if a == nil {
		return nil, false
	}
	img, ok := a.images[name]
	return img, ok
}

// Len returns how many images were loaded.
func (a *Assets) Len() int {
	if a == nil {
		return 0
	}
	return len(a.images)
}
