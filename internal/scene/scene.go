package scene

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/geom/internal/config"
	"github.com/vango-dev/geom/internal/errors"
	"github.com/vango-dev/geom/pkg/collection"
	"github.com/vango-dev/geom/pkg/geom"
	"github.com/vango-dev/geom/pkg/metrics"
)

const defaultTracerName = "geom"

// Metric sources, one per shape group.
const (
	SourcePoints   = "points"
	SourceLines    = "lines"
	SourceRay      = "ray"
	SourceGradient = "gradient"
)

// Options configures Build.
type Options struct {
	// Logger receives build and edit events (default: slog.Default()).
	Logger *slog.Logger

	// Registry receives the scene metrics. A private registry is created
	// when nil, so several scenes can coexist in one process.
	Registry *prometheus.Registry

	// TracerName names the OpenTelemetry tracer (default: "geom").
	TracerName string
}

// Option configures Build.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(o *Options) {
		o.Registry = registry
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(o *Options) {
		o.TracerName = name
	}
}

// NamedLine is a line between two named points.
type NamedLine struct {
	From string
	To   string
	*geom.Line
}

// Name is "from-to".
func (l NamedLine) Name() string {
	return l.From + "-" + l.To
}

// Scene is the geometry built from one scene file.
type Scene struct {
	name     string
	points   *collection.Points
	lines    []NamedLine
	ray      *geom.Ray
	rayFrom  string
	gradient *geom.Gradient
	samples  []float64

	recorder *metrics.Recorder
	registry *prometheus.Registry
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Build assembles the scene described by cfg.
func Build(ctx context.Context, cfg *config.Config, opts ...Option) (*Scene, error) {
	options := Options{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Registry == nil {
		options.Registry = prometheus.NewRegistry()
	}
	// promauto panics on a bad metric name; report it instead.
	if !model.IsValidMetricName(model.LabelValue(cfg.Metrics.Namespace)) {
		return nil, errors.New("G102").
			WithDetail("metrics.namespace " + strconv.Quote(cfg.Metrics.Namespace) + " is not a valid Prometheus metric name")
	}

	s := &Scene{
		name:     cfg.Name,
		points:   collection.NewPoints(),
		gradient: geom.NewGradient(),
		samples:  append([]float64(nil), cfg.Gradient.Samples...),
		registry: options.Registry,
		logger:   options.Logger.With("scene", cfg.Name),
		tracer:   otel.Tracer(options.TracerName),
	}

	_, span := s.tracer.Start(ctx, "scene.build",
		trace.WithAttributes(
			attribute.String("geom.scene", cfg.Name),
			attribute.Int("geom.points", len(cfg.Points)),
			attribute.Int("geom.lines", len(cfg.Lines)),
			attribute.Int("geom.stops", len(cfg.Gradient.Stops)),
		),
	)
	defer span.End()

	if err := s.build(cfg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")

	s.recorder = metrics.NewRecorder(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithConstLabels(prometheus.Labels{"scene": cfg.Name}),
		metrics.WithRegistry(s.registry),
	)
	s.watch()

	s.logger.Info("scene built",
		"points", s.points.Len(),
		"lines", len(s.lines),
		"ray", s.ray != nil,
		"stops", s.gradient.Len(),
	)
	return s, nil
}

func (s *Scene) build(cfg *config.Config) error {
	for i, pc := range cfg.Points {
		p := geom.NewVec2(pc.X, pc.Y)
		if pc.Name == "" {
			s.points.Push(p)
			continue
		}
		if err := s.points.PushNamed(p, pc.Name); err != nil {
			return errors.Classify(err, "G202").
				WithDetail("Point " + strconv.Itoa(i) + " reuses the name " + strconv.Quote(pc.Name))
		}
	}

	for _, lc := range cfg.Lines {
		from, err := s.point(lc.From)
		if err != nil {
			return err
		}
		to, err := s.point(lc.To)
		if err != nil {
			return err
		}
		s.lines = append(s.lines, NamedLine{From: lc.From, To: lc.To, Line: geom.NewLine(from, to)})
	}

	if rc := cfg.Ray; rc != nil {
		origin, err := s.point(rc.Origin)
		if err != nil {
			return err
		}
		s.ray = geom.NewRay(origin, geom.NewVec2(rc.Direction.X, rc.Direction.Y))
		s.rayFrom = rc.Origin
	}

	for _, sc := range cfg.Gradient.Stops {
		color, err := geom.ParseHex(sc.Color)
		if err != nil {
			return errors.New("G201").
				WithDetail("Cannot parse gradient color " + strconv.Quote(sc.Color)).
				Wrap(err)
		}
		s.gradient.AddStop(sc.Position, color)
	}
	return nil
}

// point resolves a point name, reporting G200 when it is unknown.
func (s *Scene) point(name string) (*geom.Vec2, error) {
	p, err := s.points.ByName(name)
	if err != nil {
		return nil, errors.New("G200").
			WithDetail("No point named " + strconv.Quote(name)).
			WithSuggestion("Add a point with this name or fix the reference").
			Wrap(err)
	}
	return p, nil
}

func (s *Scene) watch() {
	s.recorder.Watch(SourcePoints, s.points)
	s.recorder.WatchSize(SourcePoints, s.points)
	for _, l := range s.lines {
		s.recorder.Watch(SourceLines, l)
	}
	if s.ray != nil {
		s.recorder.Watch(SourceRay, s.ray)
	}
	s.recorder.Watch(SourceGradient, s.gradient)
}

// ApplyEdits moves each named point by its offset. A point is snapped
// before every drag, so repeated edits of one point accumulate.
// Edits before a failing one stay applied.
func (s *Scene) ApplyEdits(ctx context.Context, edits []config.EditConfig) error {
	_, span := s.tracer.Start(ctx, "scene.edit",
		trace.WithAttributes(
			attribute.String("geom.scene", s.name),
			attribute.Int("geom.edits", len(edits)),
		),
	)
	defer span.End()

	for _, e := range edits {
		p, err := s.point(e.Point)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		p.Snap()
		p.Drag(geom.NewVec2(e.DX, e.DY))
		s.logger.Debug("point dragged",
			"point", e.Point,
			"x", p.X(),
			"y", p.Y(),
		)
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *Scene) Name() string               { return s.name }
func (s *Scene) Points() *collection.Points { return s.points }
func (s *Scene) Lines() []NamedLine         { return append([]NamedLine(nil), s.lines...) }
func (s *Scene) Ray() *geom.Ray             { return s.ray }
func (s *Scene) Gradient() *geom.Gradient   { return s.gradient }

// Registry returns the registry holding the scene metrics.
func (s *Scene) Registry() *prometheus.Registry {
	return s.registry
}

// Notifications returns how many change notifications source has seen
// since Build returned.
func (s *Scene) Notifications(source string) float64 {
	return s.recorder.Notifications(source)
}
