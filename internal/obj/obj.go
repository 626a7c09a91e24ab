// Package obj reads and writes the subset of Wavefront OBJ needed to
// round-trip polygon meshes: vertex positions and faces, grouped into
// named objects. Texture coordinates, vertex normals, and materials are
// passed over.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Object is one named group of faces. Face indices are zero-based and
// point into the owning File's shared vertex list.
type Object struct {
	Name  string
	Faces [][]int
}

// File is a parsed OBJ file: one shared vertex list plus the objects
// referencing it.
type File struct {
	Vertices []mgl64.Vec3
	Objects  []Object
}

// FaceCount returns the total number of faces across all objects.
func (f *File) FaceCount() int {
	n := 0
	for _, o := range f.Objects {
		n += len(o.Faces)
	}
	return n
}

// Load reads and parses an OBJ file from disk.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("obj: parse %s: %w", path, err)
	}
	return f, nil
}

// Parse reads OBJ records from r. Malformed vertex or face records are
// skipped rather than failing the whole file; a file with no usable
// geometry is an error.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	current := -1 // index into f.Objects; -1 until the first face or o/g

	ensureObject := func(name string) {
		f.Objects = append(f.Objects, Object{Name: name})
		current = len(f.Objects) - 1
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}
			f.Vertices = append(f.Vertices, mgl64.Vec3{x, y, z})

		case "o", "g":
			name := ""
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			ensureObject(name)

		case "f":
			if len(fields) < 4 {
				continue
			}
			face := make([]int, 0, len(fields)-1)
			ok := true
			for _, ref := range fields[1:] {
				// v, v/vt, v//vn, and v/vt/vn all start with the
				// position index.
				idxStr, _, _ := strings.Cut(ref, "/")
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					ok = false
					break
				}
				if idx < 0 {
					idx = len(f.Vertices) + idx
				} else {
					idx-- // OBJ indices are 1-based
				}
				if idx < 0 || idx >= len(f.Vertices) {
					ok = false
					break
				}
				face = append(face, idx)
			}
			if !ok {
				continue
			}
			if current < 0 {
				ensureObject("")
			}
			f.Objects[current].Faces = append(f.Objects[current].Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(f.Vertices) == 0 || f.FaceCount() == 0 {
		return nil, fmt.Errorf("no usable geometry")
	}
	return f, nil
}

// Save writes the file to disk in OBJ format.
func Save(path string, f *File) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj: create %s: %w", path, err)
	}
	defer fh.Close()

	w := bufio.NewWriter(fh)
	if err := Write(w, f); err != nil {
		return fmt.Errorf("obj: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("obj: write %s: %w", path, err)
	}
	return nil
}

// Write emits the shared vertex list followed by one o-block per object.
func Write(w io.Writer, f *File) error {
	for _, v := range f.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X(), v.Y(), v.Z()); err != nil {
			return err
		}
	}
	for _, o := range f.Objects {
		if o.Name != "" {
			if _, err := fmt.Fprintf(w, "o %s\n", o.Name); err != nil {
				return err
			}
		}
		for _, face := range o.Faces {
			sb := strings.Builder{}
			sb.WriteByte('f')
			for _, vi := range face {
				sb.WriteByte(' ')
				sb.WriteString(strconv.Itoa(vi + 1))
			}
			sb.WriteByte('\n')
			if _, err := io.WriteString(w, sb.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
