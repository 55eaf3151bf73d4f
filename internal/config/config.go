package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/geom/internal/errors"
)

const (
	// DefaultFileName is the scene file Load looks for first.
	DefaultFileName = "scene.yaml"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default slog handler format.
	DefaultLogFormat = "text"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "geom"
)

// candidates are tried in order by Load.
var candidates = []string{"scene.yaml", "scene.yml", "scene.json"}

// Config is a scene file.
type Config struct {
	// Name labels the scene in reports. Defaults to the file stem.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Log     LogConfig     `json:"log" yaml:"log"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Points form the scene's polyline, in order.
	Points []PointConfig `json:"points" yaml:"points" validate:"dive"`

	// Lines join two named points.
	Lines []LineConfig `json:"lines,omitempty" yaml:"lines,omitempty" validate:"dive"`

	// Ray is cast against every line when set.
	Ray *RayConfig `json:"ray,omitempty" yaml:"ray,omitempty"`

	Gradient GradientConfig `json:"gradient,omitempty" yaml:"gradient,omitempty"`

	// Edits are applied after the scene is built, as snap then drag.
	Edits []EditConfig `json:"edits,omitempty" yaml:"edits,omitempty" validate:"dive"`

	// path is where this config was loaded from.
	path string
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig names the Prometheus namespace for scene metrics.
// Namespace must itself be a valid metric name.
type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace" validate:"required,metricname"`
}

// PointConfig is one point. Name is optional; unnamed points cannot be
// referenced by lines, rays or edits.
type PointConfig struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

type LineConfig struct {
	From string `json:"from" yaml:"from" validate:"required"`
	To   string `json:"to" yaml:"to" validate:"required,nefield=From"`
}

// RayConfig starts at a named point.
type RayConfig struct {
	Origin    string       `json:"origin" yaml:"origin" validate:"required"`
	Direction VectorConfig `json:"direction" yaml:"direction"`
}

type VectorConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type GradientConfig struct {
	Stops []StopConfig `json:"stops,omitempty" yaml:"stops,omitempty" validate:"dive"`

	// Samples are positions to evaluate the gradient at.
	Samples []float64 `json:"samples,omitempty" yaml:"samples,omitempty" validate:"dive,gte=0,lte=1"`
}

type StopConfig struct {
	Position float64 `json:"position" yaml:"position" validate:"gte=0,lte=1"`
	Color    string  `json:"color" yaml:"color" validate:"required"`
}

// EditConfig drags a named point by (DX, DY).
type EditConfig struct {
	Point string  `json:"point" yaml:"point" validate:"required"`
	DX    float64 `json:"dx" yaml:"dx"`
	DY    float64 `json:"dy" yaml:"dy"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
	}
}

// Example returns a small scene that exercises every section.
func Example() *Config {
	cfg := New()
	cfg.Name = "example"
	cfg.Points = []PointConfig{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 4, Y: 0},
		{Name: "c", X: 4, Y: 3},
		{Name: "d", X: 0, Y: 3},
	}
	cfg.Lines = []LineConfig{
		{From: "a", To: "c"},
		{From: "b", To: "d"},
	}
	cfg.Ray = &RayConfig{Origin: "a", Direction: VectorConfig{X: 1, Y: 1}}
	cfg.Gradient = GradientConfig{
		Stops: []StopConfig{
			{Position: 0, Color: "#000000"},
			{Position: 1, Color: "#ffffff"},
		},
		Samples: []float64{0, 0.5, 1},
	}
	cfg.Edits = []EditConfig{{Point: "c", DX: 1, DY: 1}}
	return cfg
}

// Load reads the first scene file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("G100").
		WithDetail("No scene.yaml, scene.yml or scene.json found in " + dir).
		WithSuggestion("Run 'geom init' to write an example scene")
}

// LoadFile reads a scene file. The format follows the extension.
func LoadFile(path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isYAML(ext) && ext != ".json" {
		return nil, errors.New("G103").
			WithDetail("Cannot read " + filepath.Base(path) + ": expected .json, .yaml or .yml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("G100").
				WithDetail("No scene file at " + path).
				WithSuggestion("Check the path or run 'geom init'")
		}
		return nil, errors.New("G100").Wrap(err)
	}

	cfg := New()
	if isYAML(ext) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = decodeJSON(data, cfg)
	}
	if err != nil {
		e := errors.New("G101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
		if line := errorLine(data, err); line > 0 {
			e.WithLocation(path, line, 0)
		}
		return nil, e
	}

	cfg.path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeJSON(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func isYAML(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// errorLine finds the 1-based line a decode error points at, or 0.
func errorLine(data []byte, err error) int {
	var syntax *json.SyntaxError
	if stderrors.As(err, &syntax) {
		return lineAt(data, syntax.Offset)
	}
	var typ *json.UnmarshalTypeError
	if stderrors.As(err, &typ) {
		return lineAt(data, typ.Offset)
	}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.Newf(errors.CategoryConfig, "no scene path set")
	}
	return c.SaveTo(c.path)
}

// SaveTo writes the configuration to path, as YAML or JSON by extension.
func (c *Config) SaveTo(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		data []byte
		err  error
	)
	switch {
	case isYAML(ext):
		data, err = yaml.Marshal(c)
	case ext == ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		// Add newline at end of file
		data = append(data, '\n')
	default:
		return errors.New("G103").
			WithDetail("Cannot write " + filepath.Base(path) + ": expected .json, .yaml or .yml")
	}
	if err != nil {
		return errors.New("G101").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("G100").Wrap(err)
	}

	c.path = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" && c.path != "" {
		base := filepath.Base(c.path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their file names rather than Go names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterValidation("metricname", func(fl validator.FieldLevel) bool {
		return model.IsValidMetricName(model.LabelValue(fl.Field().String()))
	})
	return v
}

// Validate checks field values and that point names are unique.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if !stderrors.As(err, &fields) {
			return errors.New("G102").Wrap(err)
		}
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, describe(f))
		}
		return errors.New("G102").
			WithDetail(strings.Join(msgs, "; ")).
			Wrap(err)
	}

	seen := make(map[string]bool, len(c.Points))
	for _, p := range c.Points {
		if p.Name == "" {
			continue
		}
		if seen[p.Name] {
			return errors.New("G102").
				WithDetail("Point name " + strconv.Quote(p.Name) + " is used more than once")
		}
		seen[p.Name] = true
	}
	return nil
}

func describe(f validator.FieldError) string {
	field := strings.TrimPrefix(f.Namespace(), "Config.")
	switch f.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + f.Param()
	case "gte", "lte":
		return field + " must be between 0 and 1"
	case "metricname":
		return field + " must match [a-zA-Z_:][a-zA-Z0-9_:]*"
	case "nefield":
		return field + " must differ from " + strings.ToLower(f.Param())
	}
	return field + " failed " + f.Tag()
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Handler returns a slog handler writing to w in the configured format.
func (l LogConfig) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
