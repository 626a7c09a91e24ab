// Package swatch writes the three band colors as the JSON color-swatch
// document the game engine imports.
package swatch

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"techart-tools/internal/recolor"
)

// Channel values are exported as floats in [0,1], engine convention.
type channels struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Document is the swatch file layout. Key names and the fixed document
// name match what the engine-side importer expects.
type Document struct {
	Name       string   `json:"name"`
	WhiteColor channels `json:"whiteColor"`
	GreyColor  channels `json:"greyColor"`
	BlackColor channels `json:"blackColor"`
}

// DocumentName is the fixed name field of every exported swatch.
const DocumentName = "CamoColors"

func toChannels(c color.NRGBA) channels {
	return channels{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
		A: float64(c.A) / 255.0,
	}
}

// FromPalette builds the export document for a band palette.
func FromPalette(p recolor.Palette) Document {
	return Document{
		Name:       DocumentName,
		WhiteColor: toChannels(p.White),
		GreyColor:  toChannels(p.Grey),
		BlackColor: toChannels(p.Black),
	}
}

// Export writes the document to path as 4-space-indented JSON. A ".json"
// extension is appended if missing. Returns the path actually written.
func Export(path string, doc Document) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		path += ".json"
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", fmt.Errorf("swatch: encode: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("swatch: write %s: %w", path, err)
	}
	return path, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" (leading '#' optional) into an
// NRGBA color. Alpha defaults to opaque.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("swatch: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("swatch: bad hex color %q", s)
	}
	c := color.NRGBA{A: 255}
	if len(h) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
