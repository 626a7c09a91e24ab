package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hellflame/argparse"

	"techart-tools/internal/config"
	"techart-tools/internal/logger"
	"techart-tools/internal/recolor"
	"techart-tools/internal/swatch"
	"techart-tools/internal/texture"
)

func main() {
	parser := argparse.NewParser(
		"camoband",
		"Recolors a texture into three luminance bands and exports the band colors as a JSON swatch",
		nil,
	)
	input := parser.String("p", "path", &argparse.Option{
		Positional: true,
		Required:   true,
		Help:       "Input texture (PNG, JPEG, or TGA)",
	})
	configFile := parser.String("c", "config", &argparse.Option{
		Help: "Path to a YAML config file",
	})
	white := parser.String("", "white", &argparse.Option{
		Help: "Hex color for the white band, e.g. #e8e0d0",
	})
	grey := parser.String("", "grey", &argparse.Option{
		Help: "Hex color for the grey band",
	})
	black := parser.String("", "black", &argparse.Option{
		Help: "Hex color for the black band",
	})
	outputDir := parser.String("o", "output", &argparse.Option{
		Help: "Output directory (default: current directory)",
	})
	format := parser.String("f", "format", &argparse.Option{
		Help: "Output image format: webp or png",
	})
	noSwatch := parser.Flag("", "no-swatch", &argparse.Option{
		Help: "Skip writing the color swatch JSON",
	})
	preview := parser.Flag("", "preview", &argparse.Option{
		Help: "Also write a small preview image",
	})
	logLevel := parser.String("l", "log-level", &argparse.Option{
		Help: "Log level: debug, info, warn, error",
	})

	if err := parser.Parse(nil); err != nil {
		if err == argparse.BreakAfterHelpError {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		White:     *white,
		Grey:      *grey,
		Black:     *black,
		OutputDir: *outputDir,
		Format:    *format,
		LogLevel:  *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	palette, err := paletteFromConfig(cfg.Colors)
	if err != nil {
		logger.Sugar.Fatalf("%v", err)
	}

	img, err := texture.Load(*input)
	if err != nil {
		logger.Sugar.Fatalf("%v", err)
	}

	banded, counts := recolor.Apply(img, palette)
	logger.Sugar.Infof("Bands: %d white, %d grey, %d black pixels",
		counts.White, counts.Grey, counts.Black)

	stem := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		logger.Sugar.Fatalf("output dir: %v", err)
	}

	outPath := filepath.Join(cfg.Output.Dir, stem+"_banded."+cfg.Output.Format)
	if err := texture.Save(outPath, banded); err != nil {
		logger.Sugar.Fatalf("%v", err)
	}
	logger.Sugar.Infof("Banded texture: %s", outPath)

	if *preview {
		previewPath := filepath.Join(cfg.Output.Dir, stem+"_preview."+cfg.Output.Format)
		small := recolor.Preview(banded, cfg.Output.PreviewSize)
		if err := texture.Save(previewPath, small); err != nil {
			logger.Sugar.Fatalf("%v", err)
		}
		logger.Sugar.Infof("Preview: %s", previewPath)
	}

	if !*noSwatch {
		swatchPath := filepath.Join(cfg.Output.Dir, stem+"_colors.json")
		written, err := swatch.Export(swatchPath, swatch.FromPalette(palette))
		if err != nil {
			logger.Sugar.Fatalf("%v", err)
		}
		logger.Sugar.Infof("Colors exported to: %s", written)
	}
}

func paletteFromConfig(colors config.ColorsConfig) (recolor.Palette, error) {
	p := recolor.DefaultPalette()
	var err error
	if p.White, err = swatch.ParseHex(colors.White); err != nil {
		return p, err
	}
	if p.Grey, err = swatch.ParseHex(colors.Grey); err != nil {
		return p, err
	}
	if p.Black, err = swatch.ParseHex(colors.Black); err != nil {
		return p, err
	}
	return p, nil
}
