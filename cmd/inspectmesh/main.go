package main

import (
	"fmt"
	"os"

	"github.com/hellflame/argparse"

	"techart-tools/internal/geom"
	"techart-tools/internal/obj"
)

func main() {
	parser := argparse.NewParser(
		"inspectmesh",
		"Prints per-object geometry stats for OBJ files, including suspect flipped-face counts",
		nil,
	)
	paths := parser.Strings("p", "path", &argparse.Option{
		Positional: true,
		Required:   true,
		Help:       "OBJ files to inspect",
	})

	if err := parser.Parse(nil); err != nil {
		if err == argparse.BreakAfterHelpError {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	errors := 0
	for _, path := range *paths {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		os.Exit(1)
	}
}

func inspect(path string) error {
	f, err := obj.Load(path)
	if err != nil {
		return err
	}

	min, max := geom.Bounds(f.Vertices)
	fmt.Printf("%s: %d vertices, %d objects, %d faces\n",
		path, len(f.Vertices), len(f.Objects), f.FaceCount())
	fmt.Printf("  bounds min (%.3f, %.3f, %.3f) max (%.3f, %.3f, %.3f)\n",
		min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())

	for i, o := range f.Objects {
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("(unnamed #%d)", i)
		}

		normals := geom.FaceNormals(f.Vertices, o.Faces)
		flagged := geom.Classify(f.Vertices, o.Faces, normals)

		degenerate := 0
		for _, n := range normals {
			if n.Len() == 0 {
				degenerate++
			}
		}

		fmt.Printf("  %-24s %5d faces  %4d flipped  %3d degenerate\n",
			name, len(o.Faces), len(flagged), degenerate)
	}
	return nil
}
