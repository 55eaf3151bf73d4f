package scene

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/geom/internal/config"
	"github.com/vango-dev/geom/internal/errors"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func build(t *testing.T, cfg *config.Config, opts ...Option) *Scene {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	s, err := Build(context.Background(), cfg, opts...)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return s
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var ge *errors.Error
	if !stderrors.As(err, &ge) {
		t.Fatalf("error %v is not a coded error", err)
	}
	return ge.Code
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildExample(t *testing.T) {
	s := build(t, config.Example())

	if s.Name() != "example" {
		t.Errorf("Name() = %q, want %q", s.Name(), "example")
	}
	if s.Points().Len() != 4 {
		t.Fatalf("Points().Len() = %d, want 4", s.Points().Len())
	}
	if got := s.Points().Names(); strings.Join(got, ",") != "a,b,c,d" {
		t.Errorf("Names() = %v", got)
	}
	if len(s.Lines()) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(s.Lines()))
	}
	if s.Ray() == nil {
		t.Fatal("Ray() = nil")
	}
	if s.Gradient().Len() != 2 {
		t.Errorf("Gradient().Len() = %d, want 2", s.Gradient().Len())
	}
}

func TestShapesSharePoints(t *testing.T) {
	s := build(t, config.Example())

	c, err := s.Points().ByName("c")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := s.Points().ByName("a")

	line := s.Lines()[0]
	if line.Name() != "a-c" {
		t.Fatalf("line name = %q, want a-c", line.Name())
	}
	if line.End() != c || line.Start() != a {
		t.Error("line a-c should hold the scene's own points")
	}
	if s.Ray().Origin() != a {
		t.Error("ray should start at the scene's point a")
	}
}

func TestApplyEdits(t *testing.T) {
	s := build(t, config.Example())

	edits := []config.EditConfig{
		{Point: "c", DX: 1, DY: 1},
		{Point: "c", DX: 1, DY: 1},
	}
	if err := s.ApplyEdits(context.Background(), edits); err != nil {
		t.Fatalf("ApplyEdits error: %v", err)
	}

	c, _ := s.Points().ByName("c")
	if c.X() != 6 || c.Y() != 5 {
		t.Errorf("c = (%v, %v), want (6, 5)", c.X(), c.Y())
	}
	if end := s.Lines()[0].End(); end.X() != 6 || end.Y() != 5 {
		t.Errorf("line a-c end = (%v, %v), want (6, 5)", end.X(), end.Y())
	}

	tests := []struct {
		source string
		want   float64
	}{
		{SourcePoints, 2},
		{SourceLines, 2},
		{SourceRay, 0},
		{SourceGradient, 0},
	}
	for _, tt := range tests {
		if got := s.Notifications(tt.source); got != tt.want {
			t.Errorf("Notifications(%s) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestApplyEditsUnknownPoint(t *testing.T) {
	s := build(t, config.Example())

	edits := []config.EditConfig{
		{Point: "a", DX: 1},
		{Point: "zz", DX: 1},
	}
	err := s.ApplyEdits(context.Background(), edits)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := codeOf(t, err); got != "G200" {
		t.Errorf("code = %s, want G200", got)
	}

	a, _ := s.Points().ByName("a")
	if a.X() != 1 {
		t.Errorf("a.X() = %v, want the earlier edit kept", a.X())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"line endpoint", func(c *config.Config) { c.Lines[0].To = "nowhere" }, "G200"},
		{"ray origin", func(c *config.Config) { c.Ray.Origin = "nowhere" }, "G200"},
		{"color", func(c *config.Config) { c.Gradient.Stops[0].Color = "#zzz" }, "G201"},
		{"duplicate point", func(c *config.Config) { c.Points[3].Name = "a" }, "G001"},
		{"metric namespace", func(c *config.Config) { c.Metrics.Namespace = "my-scene" }, "G102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Example()
			tt.mutate(cfg)

			_, err := Build(context.Background(), cfg, WithLogger(quietLogger()))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := codeOf(t, err); got != tt.want {
				t.Errorf("code = %s, want %s (%v)", got, tt.want, err)
			}
		})
	}
}

func TestReport(t *testing.T) {
	r := build(t, config.Example()).Report()

	if r.Name != "example" || r.Points != 4 {
		t.Errorf("Name, Points = %q, %d", r.Name, r.Points)
	}
	if r.Bounds == nil {
		t.Fatal("Bounds = nil")
	}
	if r.Bounds.Min != (Point{0, 0}) || r.Bounds.Max != (Point{4, 3}) || r.Bounds.Center != (Point{2, 1.5}) {
		t.Errorf("Bounds = %+v", *r.Bounds)
	}
	if r.PathLength != 11 {
		t.Errorf("PathLength = %v, want 11", r.PathLength)
	}
	if r.Perimeter != 14 {
		t.Errorf("Perimeter = %v, want 14", r.Perimeter)
	}

	if len(r.Lines) != 2 || r.Lines[0].Length != 5 || r.Lines[1].Name != "b-d" {
		t.Errorf("Lines = %+v", r.Lines)
	}

	if len(r.Intersections) != 1 {
		t.Fatalf("Intersections = %+v", r.Intersections)
	}
	x := r.Intersections[0]
	if x.A != "a-c" || x.B != "b-d" || x.At != (Point{2, 1.5}) || !x.OnSegments {
		t.Errorf("Intersection = %+v", x)
	}

	if len(r.RayHits) != 2 {
		t.Fatalf("RayHits = %+v", r.RayHits)
	}
	if hit := r.RayHits[0]; hit.Line != "a-c" || hit.Distance != 0 {
		t.Errorf("RayHits[0] = %+v", hit)
	}
	hit := r.RayHits[1]
	if hit.Line != "b-d" || !near(hit.At.X, 12.0/7) || !near(hit.At.Y, 12.0/7) || !hit.OnSegment {
		t.Errorf("RayHits[1] = %+v", hit)
	}
	if !near(hit.Distance, 12.0/7*math.Sqrt2) {
		t.Errorf("RayHits[1].Distance = %v", hit.Distance)
	}

	want := []string{"#000000", "#808080", "#ffffff"}
	if len(r.Gradient) != len(want) {
		t.Fatalf("Gradient = %+v", r.Gradient)
	}
	for i, s := range r.Gradient {
		if s.Color != want[i] {
			t.Errorf("Gradient[%d] = %+v, want %s", i, s, want[i])
		}
	}

	if len(r.Notifications) != 4 {
		t.Errorf("Notifications = %v", r.Notifications)
	}
}

func TestReportMissedSegment(t *testing.T) {
	cfg := config.New()
	cfg.Name = "parallel"
	cfg.Points = []config.PointConfig{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 1, Y: 0},
		{Name: "c", X: 3, Y: -1},
		{Name: "d", X: 3, Y: 1},
		{Name: "e", X: 0, Y: 1},
		{Name: "f", X: 1, Y: 1},
	}
	cfg.Lines = []config.LineConfig{
		{From: "a", To: "b"},
		{From: "c", To: "d"},
		{From: "e", To: "f"},
	}

	r := build(t, cfg).Report()

	// a-b and e-f are parallel, so only two crossings remain.
	if len(r.Intersections) != 2 {
		t.Fatalf("Intersections = %+v", r.Intersections)
	}
	first := r.Intersections[0]
	if first.A != "a-b" || first.B != "c-d" || first.At != (Point{3, 0}) || first.OnSegments {
		t.Errorf("Intersections[0] = %+v", first)
	}
	if r.RayHits != nil {
		t.Errorf("RayHits = %+v, want none without a ray", r.RayHits)
	}
	if _, ok := r.Notifications[SourceRay]; ok {
		t.Error("ray notifications reported without a ray")
	}
}

func TestReportEmptyScene(t *testing.T) {
	r := build(t, config.New()).Report()

	if r.Bounds != nil {
		t.Errorf("Bounds = %+v, want nil", r.Bounds)
	}
	if r.PathLength != 0 || r.Perimeter != 0 {
		t.Errorf("PathLength, Perimeter = %v, %v", r.PathLength, r.Perimeter)
	}
}

func TestSceneMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := config.Example()
	cfg.Metrics.Namespace = "shapes"
	s := build(t, cfg, WithRegistry(reg))

	if s.Registry() != reg {
		t.Error("Registry() should return the supplied registry")
	}

	count, err := testutil.GatherAndCount(reg, "shapes_notifications_total")
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("notification series = %d, want 4", count)
	}

	size, err := testutil.GatherAndCount(reg, "shapes_collection_size")
	if err != nil {
		t.Fatal(err)
	}
	if size != 1 {
		t.Errorf("size series = %d, want 1", size)
	}

	// Two scenes on default options must not collide.
	build(t, config.Example())
	build(t, config.Example())
}

func TestBuildLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := Build(context.Background(), config.Example(), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ApplyEdits(context.Background(), config.Example().Edits); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{`msg="scene built"`, "scene=example", "points=4", `msg="point dragged"`, "point=c"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
