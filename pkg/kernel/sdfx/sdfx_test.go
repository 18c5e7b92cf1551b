package sdfx

import (
	"math"
	"testing"
)

const tol = 1e-9

func assertBounds(t *testing.T, gotMin, gotMax, wantMin, wantMax [3]float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(gotMin[i]-wantMin[i]) > tol {
			t.Errorf("min[%d] = %f, want %f", i, gotMin[i], wantMin[i])
		}
		if math.Abs(gotMax[i]-wantMax[i]) > tol {
			t.Errorf("max[%d] = %f, want %f", i, gotMax[i], wantMax[i])
		}
	}
}

func TestBoxMinCornerAtOrigin(t *testing.T) {
	k := New()
	min, max := k.Box(100, 50, 25).BoundingBox()
	assertBounds(t, min, max, [3]float64{0, 0, 0}, [3]float64{100, 50, 25})
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Translate(k.Box(10, 10, 10), 100, 200, 300)
	min, max := box.BoundingBox()
	assertBounds(t, min, max, [3]float64{100, 200, 300}, [3]float64{110, 210, 310})
}

func TestTranslateCentersCube(t *testing.T) {
	k := New()
	min, max := k.Translate(k.Box(2, 2, 2), -1, -1, -1).BoundingBox()
	assertBounds(t, min, max, [3]float64{-1, -1, -1}, [3]float64{1, 1, 1})
}

func TestThinPanel(t *testing.T) {
	k := New()
	min, max := k.Translate(k.Box(6, 2, 0.1), 1, -1, -0.05).BoundingBox()
	assertBounds(t, min, max, [3]float64{1, -1, -0.05}, [3]float64{7, 1, 0.05})
}

func TestUnion(t *testing.T) {
	k := New()
	left := k.Translate(k.Box(6, 2, 0.1), -7, -1, -0.05)
	body := k.Translate(k.Box(2, 2, 2), -1, -1, -1)
	right := k.Translate(k.Box(6, 2, 0.1), 1, -1, -0.05)

	min, max := k.Union(left, body, right).BoundingBox()
	assertBounds(t, min, max, [3]float64{-7, -1, -1}, [3]float64{7, 1, 1})
}
