package geom

import (
	"math"
	"testing"
)

func TestIntersectLines(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *Line
		want   *Vec2
		wantOK bool
	}{
		{
			name:   "crossing diagonals",
			a:      NewLine(NewVec2(0, 0), NewVec2(2, 2)),
			b:      NewLine(NewVec2(0, 2), NewVec2(2, 0)),
			want:   NewVec2(1, 1),
			wantOK: true,
		},
		{
			name:   "outside both segments",
			a:      NewLine(NewVec2(0, 0), NewVec2(1, 0)),
			b:      NewLine(NewVec2(5, 1), NewVec2(5, 2)),
			want:   NewVec2(5, 0),
			wantOK: true,
		},
		{
			name: "parallel",
			a:    NewLine(NewVec2(0, 0), NewVec2(1, 1)),
			b:    NewLine(NewVec2(0, 1), NewVec2(1, 2)),
		},
		{
			name: "degenerate",
			a:    NewLine(NewVec2(1, 1), NewVec2(1, 1)),
			b:    NewLine(NewVec2(0, 1), NewVec2(1, 2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectLines(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equals(tt.want) {
				t.Errorf("got (%v, %v), want (%v, %v)", got.X(), got.Y(), tt.want.X(), tt.want.Y())
			}
		})
	}
}

func TestIntersectionResultIsFresh(t *testing.T) {
	a := NewLine(NewVec2(0, 0), NewVec2(2, 2))
	b := NewLine(NewVec2(0, 2), NewVec2(2, 0))
	na, nb := watch(a), watch(b)

	p, _ := IntersectLines(a, b)
	p.Set(100, 100)

	if na.count != 0 || nb.count != 0 {
		t.Error("mutating the intersection notified an input line")
	}
}

func TestRayIntersectLine(t *testing.T) {
	wall := NewLine(NewVec2(5, -1), NewVec2(5, 1))

	hit, ok := NewRay(nil, nil).IntersectLine(wall)
	if !ok || !hit.Equals(NewVec2(5, 0)) {
		t.Errorf("forward ray: ok=%v", ok)
	}

	if _, ok := NewRay(NewVec2(0, 0), NewVec2(-1, 0)).IntersectLine(wall); ok {
		t.Error("ray pointing away reported a hit")
	}

	if _, ok := NewRay(NewVec2(0, 0), NewVec2(0, 1)).IntersectLine(wall); ok {
		t.Error("parallel ray reported a hit")
	}

	if p := NewRay(NewVec2(1, 1), NewVec2(2, 0)).At(1.5); !p.Equals(NewVec2(4, 1)) {
		t.Errorf("At(1.5) = (%v, %v)", p.X(), p.Y())
	}
}

func TestLineMeasures(t *testing.T) {
	l := NewLine(NewVec2(0, 0), NewVec2(3, 4))
	if l.Length() != 5 {
		t.Errorf("Length() = %v", l.Length())
	}
	if !l.Delta().Equals(NewVec2(3, 4)) {
		t.Error("Delta")
	}
	if p := l.ClosestPoint(NewVec2(-5, 0)); !p.Equals(NewVec2(0, 0)) {
		t.Errorf("ClosestPoint before start = (%v, %v)", p.X(), p.Y())
	}
	if p := NewLine(NewVec2(0, 0), NewVec2(4, 0)).ClosestPoint(NewVec2(1, 3)); !p.Equals(NewVec2(1, 0)) {
		t.Errorf("ClosestPoint = (%v, %v)", p.X(), p.Y())
	}
}

func TestTriangleBarycentric(t *testing.T) {
	tri := NewTriangle(NewVec2(0, 0), NewVec2(4, 0), NewVec2(0, 4))

	u, v, w, ok := tri.Barycentric(NewVec2(1, 1))
	if !ok {
		t.Fatal("expected barycentric coordinates")
	}
	if math.Abs(u-0.5) > 1e-12 || math.Abs(v-0.25) > 1e-12 || math.Abs(w-0.25) > 1e-12 {
		t.Errorf("got (%v, %v, %v), want (0.5, 0.25, 0.25)", u, v, w)
	}

	if !tri.ContainsPoint(NewVec2(2, 2)) {
		t.Error("point on hypotenuse should be contained")
	}
	if tri.ContainsPoint(NewVec2(3, 3)) {
		t.Error("outside point reported contained")
	}
	if tri.Area() != 8 {
		t.Errorf("Area() = %v, want 8", tri.Area())
	}

	flat := NewTriangle(NewVec2(0, 0), NewVec2(1, 1), NewVec2(2, 2))
	if _, _, _, ok := flat.Barycentric(NewVec2(1, 1)); ok {
		t.Error("collinear triangle reported barycentric coordinates")
	}
	if flat.ContainsPoint(NewVec2(1, 1)) {
		t.Error("collinear triangle contains nothing")
	}
}
