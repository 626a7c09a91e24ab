package geom

import "github.com/go-gl/mathgl/mgl64"

const minNormalLen = 1e-12

// Classify flags faces whose normal points back toward the face's own
// average vertex position, the inward-pointing proxy used to detect
// flipped polygons. A face i is flagged when the dot product of its unit
// normal with its local vertex average is negative; zero is not flipped.
//
// Empty faces and faces with a degenerate (near-zero) normal are skipped
// and never flagged. The caller must supply one normal per face and
// in-range vertex indices.
//
// The returned indices are sorted ascending. The function is pure: the
// same input always yields the same result.
func Classify(vertices []mgl64.Vec3, faces [][]int, normals []mgl64.Vec3) []int {
	var flagged []int
	for i, face := range faces {
		if len(face) == 0 {
			continue
		}
		n := normals[i]
		l := n.Len()
		if l < minNormalLen {
			continue
		}
		center := FaceCenter(vertices, face)
		if n.Mul(1.0/l).Dot(center) < 0 {
			flagged = append(flagged, i)
		}
	}
	return flagged
}
