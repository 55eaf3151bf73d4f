package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/geom/internal/errors"
	"github.com/vango-dev/geom/internal/scene"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func initScene(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	if _, _, err := run(t, append([]string{"init", dir}, args...)...); err != nil {
		t.Fatalf("init error: %v", err)
	}
	return dir
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	var ge *errors.Error
	if !stderrors.As(err, &ge) {
		t.Fatalf("error %v is not a coded error", err)
	}
	if ge.Code != code {
		t.Errorf("code = %s, want %s", ge.Code, code)
	}
}

func TestVersionShort(t *testing.T) {
	out, _, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("version --short = %q, want %q", out, version+"\n")
	}
}

func TestInspectText(t *testing.T) {
	dir := initScene(t)

	out, _, err := run(t, "inspect", dir)
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"Scene example", "Points:      4", "Intersections", "Ray hits", "#808080", "Notifications"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectJSONBeforeEdits(t *testing.T) {
	dir := initScene(t)

	out, _, err := run(t, "inspect", filepath.Join(dir, "scene.yaml"), "--output", "json", "--no-edits")
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}

	var r scene.Report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(r.Intersections) != 1 || r.Intersections[0].At != (scene.Point{X: 2, Y: 1.5}) {
		t.Errorf("Intersections = %+v", r.Intersections)
	}
	if r.Notifications[scene.SourcePoints] != 0 {
		t.Errorf("points notifications = %v, want 0 without edits", r.Notifications[scene.SourcePoints])
	}
}

func TestInspectYAMLAfterEdits(t *testing.T) {
	dir := initScene(t, "--format", "json")

	out, _, err := run(t, "inspect", dir, "-o", "yaml")
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}

	var r scene.Report
	if err := yaml.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	if r.Name != "example" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Bounds == nil || r.Bounds.Max != (scene.Point{X: 5, Y: 4}) {
		t.Errorf("Bounds = %+v, want max (5, 4) after the edit", r.Bounds)
	}
	if r.Notifications[scene.SourcePoints] != 1 {
		t.Errorf("points notifications = %v, want 1", r.Notifications[scene.SourcePoints])
	}
}

func TestInspectMetrics(t *testing.T) {
	dir := initScene(t)

	out, _, err := run(t, "inspect", dir, "--metrics")
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	if !strings.Contains(out, `geom_notifications_total{scene="example",source="points"} 1`) {
		t.Errorf("metrics missing points counter:\n%s", out)
	}
	if !strings.Contains(out, "geom_collection_size") {
		t.Errorf("metrics missing size gauge:\n%s", out)
	}
}

func TestInspectLogFlags(t *testing.T) {
	dir := initScene(t)

	_, stderr, err := run(t, "inspect", dir, "--log-level", "debug", "--log-format", "json")
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	if !strings.Contains(stderr, `"msg":"scene loaded"`) || !strings.Contains(stderr, `"msg":"point dragged"`) {
		t.Errorf("stderr = %s", stderr)
	}

	_, _, err = run(t, "inspect", dir, "--log-level", "loud")
	wantCode(t, err, "G102")
}

func TestInspectErrors(t *testing.T) {
	dir := initScene(t)

	_, _, err := run(t, "inspect", dir, "--output", "xml")
	wantCode(t, err, "G300")

	_, _, err = run(t, "inspect", t.TempDir())
	wantCode(t, err, "G100")
}

func TestInspectRejectsBadNamespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("metrics:\n  namespace: my-scene\npoints:\n  - {x: 1, y: 2}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := run(t, "inspect", path)
	wantCode(t, err, "G102")
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := initScene(t)

	_, _, err := run(t, "init", dir)
	wantCode(t, err, "G301")

	out, _, err := run(t, "init", dir, "--force")
	if err != nil {
		t.Fatalf("init --force error: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, "scene.yaml")) {
		t.Errorf("output = %q", out)
	}

	_, _, err = run(t, "init", dir, "--format", "toml")
	wantCode(t, err, "G103")
}
