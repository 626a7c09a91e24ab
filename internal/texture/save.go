package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// SaveWebP writes an image as lossless WebP.
func SaveWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("texture: webp encode %s: %w", path, err)
	}
	return nil
}

// SavePNG writes an image as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("texture: png encode %s: %w", path, err)
	}
	return nil
}

// Save picks the encoder from the output extension: .webp or .png.
func Save(path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		return SaveWebP(path, img)
	case ".png":
		return SavePNG(path, img)
	default:
		return fmt.Errorf("texture: unsupported output extension %q: %s", ext, path)
	}
}
