package geom

import "github.com/go-gl/mathgl/mgl64"

// FaceCenter returns the average position of a face's own vertices.
// Returns the zero vector for an empty face.
func FaceCenter(vertices []mgl64.Vec3, face []int) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(face) == 0 {
		return sum
	}
	for _, vi := range face {
		sum = sum.Add(vertices[vi])
	}
	return sum.Mul(1.0 / float64(len(face)))
}

// FaceNormal computes a polygon normal with Newell's method. The result is
// not normalized; degenerate faces (fewer than 3 vertices, or collinear)
// yield the zero vector.
func FaceNormal(vertices []mgl64.Vec3, face []int) mgl64.Vec3 {
	var n mgl64.Vec3
	if len(face) < 3 {
		return n
	}
	for i := range face {
		a := vertices[face[i]]
		b := vertices[face[(i+1)%len(face)]]
		n[0] += (a.Y() - b.Y()) * (a.Z() + b.Z())
		n[1] += (a.Z() - b.Z()) * (a.X() + b.X())
		n[2] += (a.X() - b.X()) * (a.Y() + b.Y())
	}
	return n
}

// FaceNormals computes one Newell normal per face.
func FaceNormals(vertices []mgl64.Vec3, faces [][]int) []mgl64.Vec3 {
	normals := make([]mgl64.Vec3, len(faces))
	for i, f := range faces {
		normals[i] = FaceNormal(vertices, f)
	}
	return normals
}

// ReverseFaces reverses the vertex winding of the given faces in place,
// flipping their geometric normals. This is the repair step applied to
// faces the classifier flags.
func ReverseFaces(faces [][]int, flagged []int) {
	for _, fi := range flagged {
		f := faces[fi]
		for l, r := 0, len(f)-1; l < r; l, r = l+1, r-1 {
			f[l], f[r] = f[r], f[l]
		}
	}
}

// Bounds returns the axis-aligned bounding box of a vertex list.
// Both extents are zero for an empty list.
func Bounds(vertices []mgl64.Vec3) (min, max mgl64.Vec3) {
	if len(vertices) == 0 {
		return
	}
	min, max = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		for c := 0; c < 3; c++ {
			if v[c] < min[c] {
				min[c] = v[c]
			}
			if v[c] > max[c] {
				max[c] = v[c]
			}
		}
	}
	return
}
