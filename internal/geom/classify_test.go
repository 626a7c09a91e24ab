package geom

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var triVerts = []mgl64.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func TestClassifyOutwardNotFlagged(t *testing.T) {
	faces := [][]int{{0, 1, 2}}
	normals := []mgl64.Vec3{{1, 1, 1}}

	flagged := Classify(triVerts, faces, normals)
	if len(flagged) != 0 {
		t.Errorf("expected no flagged faces, got %v", flagged)
	}
}

func TestClassifyInwardFlagged(t *testing.T) {
	faces := [][]int{{0, 1, 2}}
	normals := []mgl64.Vec3{{-1, -1, -1}}

	flagged := Classify(triVerts, faces, normals)
	if !reflect.DeepEqual(flagged, []int{0}) {
		t.Errorf("expected [0], got %v", flagged)
	}
}

func TestClassifyZeroDotNotFlagged(t *testing.T) {
	// Quad in the z=0 plane: the face average dots to exactly zero
	// against +Z, and zero must not count as flipped.
	verts := []mgl64.Vec3{
		{2, 0, 0},
		{2, 2, 0},
		{0, 2, 0},
		{0, 0, 0},
	}
	faces := [][]int{{0, 1, 2, 3}}
	normals := []mgl64.Vec3{{0, 0, 1}}

	flagged := Classify(verts, faces, normals)
	if len(flagged) != 0 {
		t.Errorf("expected no flagged faces, got %v", flagged)
	}
}

func TestClassifyEmptyFaceSkipped(t *testing.T) {
	faces := [][]int{{}}
	normals := []mgl64.Vec3{{-1, -1, -1}}

	flagged := Classify(triVerts, faces, normals)
	if len(flagged) != 0 {
		t.Errorf("empty face must never be flagged, got %v", flagged)
	}
}

func TestClassifyZeroNormalSkipped(t *testing.T) {
	faces := [][]int{{0, 1, 2}}
	normals := []mgl64.Vec3{{0, 0, 0}}

	flagged := Classify(triVerts, faces, normals)
	if len(flagged) != 0 {
		t.Errorf("zero-length normal must never be flagged, got %v", flagged)
	}
}

func TestClassifyBatch(t *testing.T) {
	faces := [][]int{{0, 1, 2}, {0, 1, 2}}
	normals := []mgl64.Vec3{{-1, -1, -1}, {1, 1, 1}}

	flagged := Classify(triVerts, faces, normals)
	if !reflect.DeepEqual(flagged, []int{0}) {
		t.Errorf("expected [0], got %v", flagged)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	faces := [][]int{{0, 1, 2}, {0, 1, 2}, {}}
	normals := []mgl64.Vec3{{-1, -1, -1}, {1, 1, 1}, {1, 0, 0}}

	first := Classify(triVerts, faces, normals)
	second := Classify(triVerts, faces, normals)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input gave %v then %v", first, second)
	}
}

func TestClassifyUnnormalizedInput(t *testing.T) {
	// The decision depends only on the sign of the dot product, so
	// scaling the normal must not change the outcome.
	faces := [][]int{{0, 1, 2}}
	for _, scale := range []float64{1e-3, 1, 1e6} {
		normals := []mgl64.Vec3{{-scale, -scale, -scale}}
		flagged := Classify(triVerts, faces, normals)
		if !reflect.DeepEqual(flagged, []int{0}) {
			t.Errorf("scale %g: expected [0], got %v", scale, flagged)
		}
	}
}

func TestClassifyRepairedFaceIsClean(t *testing.T) {
	// Reversing a flagged face's winding and recomputing its normal
	// must produce a face the classifier no longer flags.
	verts := []mgl64.Vec3{
		{1, 1, 1},
		{2, 1, 1},
		{1, 2, 1},
	}
	faces := [][]int{{0, 2, 1}} // wound so the Newell normal points at -Z

	normals := FaceNormals(verts, faces)
	flagged := Classify(verts, faces, normals)
	if !reflect.DeepEqual(flagged, []int{0}) {
		t.Fatalf("expected inverted face flagged, got %v", flagged)
	}

	ReverseFaces(faces, flagged)
	normals = FaceNormals(verts, faces)
	if again := Classify(verts, faces, normals); len(again) != 0 {
		t.Errorf("repaired face still flagged: %v", again)
	}
}

func TestClassifySignMatchesDot(t *testing.T) {
	faces := [][]int{{0, 1, 2}}
	cases := []mgl64.Vec3{
		{1, 1, 1}, {-1, -1, -1}, {1, 0, 0}, {0, -1, 0}, {0.5, -0.5, 0.1},
	}
	for _, n := range cases {
		center := FaceCenter(triVerts, faces[0])
		want := n.Normalize().Dot(center) < 0
		flagged := Classify(triVerts, faces, []mgl64.Vec3{n})
		got := len(flagged) == 1
		if got != want {
			t.Errorf("normal %v: flagged=%v, dot sign says %v", n, got, want)
		}
	}
}

func TestFaceCenterScenario(t *testing.T) {
	c := FaceCenter(triVerts, []int{0, 1, 2})
	want := mgl64.Vec3{1.0 / 3, 1.0 / 3, 1.0 / 3}
	if !c.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("expected %v, got %v", want, c)
	}
}

func TestFaceCenterEmpty(t *testing.T) {
	c := FaceCenter(triVerts, nil)
	if c.Len() != 0 {
		t.Errorf("expected zero vector, got %v", c)
	}
}

func TestClassifyDotValue(t *testing.T) {
	// Sanity-check the quantity the decision is based on: for the unit
	// triangle with normal (1,1,1), d = 1/sqrt(3).
	n := mgl64.Vec3{1, 1, 1}.Normalize()
	d := n.Dot(FaceCenter(triVerts, []int{0, 1, 2}))
	if math.Abs(d-1.0/math.Sqrt(3)) > 1e-12 {
		t.Errorf("expected 1/sqrt(3), got %v", d)
	}
}
