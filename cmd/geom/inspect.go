package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/geom/internal/config"
	"github.com/vango-dev/geom/internal/errors"
	"github.com/vango-dev/geom/internal/scene"
)

var outputFormats = []string{"text", "json", "yaml"}

func inspectCmd(logs *logFlags) *cobra.Command {
	var (
		output      string
		skipEdits   bool
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file|dir]",
		Short: "Build a scene and report its geometry",
		Long: `Build the scene described by a scene file, apply its edits and print
a report.

Without an argument the scene file is looked up in the working directory
(scene.yaml, scene.yml, then scene.json).

Examples:
  geom inspect
  geom inspect shapes/scene.yaml --output=json
  geom inspect --no-edits --metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			return runInspect(cmd, target, logs, output, skipEdits, showMetrics)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&skipEdits, "no-edits", false, "Report the scene before its edits")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Append the scene metrics in Prometheus text format")

	return cmd
}

func runInspect(cmd *cobra.Command, target string, logs *logFlags, output string, skipEdits, showMetrics bool) error {
	if !slices.Contains(outputFormats, output) {
		return errors.New("G300").
			WithDetail("Unknown output format " + output).
			WithSuggestion("Use --output=" + strings.Join(outputFormats, ", --output="))
	}

	cfg, err := load(target)
	if err != nil {
		return err
	}
	if logs.level != "" {
		cfg.Log.Level = logs.level
	}
	if logs.format != "" {
		cfg.Log.Format = logs.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(cfg.Log.Handler(cmd.ErrOrStderr()))
	logger.Debug("scene loaded", "path", cfg.Path())

	ctx := cmd.Context()
	s, err := scene.Build(ctx, cfg, scene.WithLogger(logger))
	if err != nil {
		return err
	}
	if !skipEdits {
		if err := s.ApplyEdits(ctx, cfg.Edits); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if err := writeReport(out, s.Report(), output); err != nil {
		return err
	}
	if showMetrics {
		return writeMetrics(out, s)
	}
	return nil
}

// load accepts a scene file or a directory holding one.
func load(target string) (*config.Config, error) {
	if fi, err := os.Stat(target); err == nil && fi.IsDir() {
		return config.Load(target)
	}
	return config.LoadFile(target)
}

func writeReport(w io.Writer, r *scene.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	writeText(w, r)
	return nil
}

func writeText(w io.Writer, r *scene.Report) {
	fmt.Fprintf(w, "Scene %s\n\n", r.Name)
	fmt.Fprintf(w, "  Points:      %d\n", r.Points)
	if r.Bounds != nil {
		fmt.Fprintf(w, "  Bounds:      %s .. %s (center %s)\n",
			formatPoint(r.Bounds.Min), formatPoint(r.Bounds.Max), formatPoint(r.Bounds.Center))
	} else {
		fmt.Fprintf(w, "  Bounds:      empty\n")
	}
	fmt.Fprintf(w, "  Path length: %g\n", r.PathLength)
	fmt.Fprintf(w, "  Perimeter:   %g\n", r.Perimeter)

	if len(r.Lines) > 0 {
		fmt.Fprintf(w, "\nLines\n")
		for _, l := range r.Lines {
			fmt.Fprintf(w, "  %-12s length %g\n", l.Name, l.Length)
		}
	}

	if len(r.Intersections) > 0 {
		fmt.Fprintf(w, "\nIntersections\n")
		for _, x := range r.Intersections {
			fmt.Fprintf(w, "  %s × %s at %s%s\n", x.A, x.B, formatPoint(x.At), offSegment(x.OnSegments))
		}
	}

	if len(r.RayHits) > 0 {
		fmt.Fprintf(w, "\nRay hits\n")
		for _, h := range r.RayHits {
			fmt.Fprintf(w, "  %-12s at %s distance %g%s\n", h.Line, formatPoint(h.At), h.Distance, offSegment(h.OnSegment))
		}
	}

	if len(r.Gradient) > 0 {
		fmt.Fprintf(w, "\nGradient\n")
		for _, s := range r.Gradient {
			fmt.Fprintf(w, "  t=%-6g %s\n", s.T, s.Color)
		}
	}

	fmt.Fprintf(w, "\nNotifications\n")
	sources := make([]string, 0, len(r.Notifications))
	for source := range r.Notifications {
		sources = append(sources, source)
	}
	slices.Sort(sources)
	for _, source := range sources {
		fmt.Fprintf(w, "  %-12s %g\n", source, r.Notifications[source])
	}
}

func formatPoint(p scene.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func offSegment(on bool) string {
	if on {
		return ""
	}
	return " (off segment)"
}

func writeMetrics(w io.Writer, s *scene.Scene) error {
	families, err := s.Registry().Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
