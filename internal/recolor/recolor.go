// Package recolor buckets a texture into three fixed luminance bands and
// repaints each band with a solid color, producing the banded "camo"
// texture the swatch export describes.
package recolor

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Band thresholds on the 0-255 luma scale: above whiteThreshold is the
// white band (~70% luminance and up), above greyThreshold the grey band
// (~30-70%), everything else the black band. Fixed, not configurable.
const (
	whiteThreshold = 178
	greyThreshold  = 76
)

// Palette holds the replacement color for each band.
type Palette struct {
	White color.NRGBA
	Grey  color.NRGBA
	Black color.NRGBA
}

// DefaultPalette maps each band to its nominal grayscale color.
func DefaultPalette() Palette {
	return Palette{
		White: color.NRGBA{255, 255, 255, 255},
		Grey:  color.NRGBA{128, 128, 128, 255},
		Black: color.NRGBA{0, 0, 0, 255},
	}
}

// Counts reports how many pixels fell into each band.
type Counts struct {
	White int
	Grey  int
	Black int
}

// Luma converts RGB to the integer luma the banding uses,
// (11r + 16g + 5b) / 32.
func Luma(r, g, b uint8) uint8 {
	return uint8((11*int(r) + 16*int(g) + 5*int(b)) / 32)
}

// Apply repaints img band by band into a new image. Source alpha is kept;
// only RGB is replaced. Returns the banded image and per-band pixel counts.
func Apply(img *image.NRGBA, p Palette) (*image.NRGBA, Counts) {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	var counts Counts

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			var c color.NRGBA
			switch l := Luma(img.Pix[si], img.Pix[si+1], img.Pix[si+2]); {
			case l > whiteThreshold:
				c = p.White
				counts.White++
			case l > greyThreshold:
				c = p.Grey
				counts.Grey++
			default:
				c = p.Black
				counts.Black++
			}
			di := out.PixOffset(x, y)
			out.Pix[di] = c.R
			out.Pix[di+1] = c.G
			out.Pix[di+2] = c.B
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out, counts
}

// Preview scales img to fit within max pixels on its longer side,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func Preview(img *image.NRGBA, max int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	var tw, th int
	if w >= h {
		tw = max
		th = h * max / w
	} else {
		th = max
		tw = w * max / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
