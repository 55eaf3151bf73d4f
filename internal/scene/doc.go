// Package scene turns a scene file into live geometry.
//
// Build wires named points into a collection and shares those same point
// objects with the scene's lines and ray, so an edit to a point is seen by
// every shape that references it. Each shape group is watched by a
// metrics.Recorder; the notification counts appear in the Report.
//
//	cfg, _ := config.LoadFile("scene.yaml")
//	s, err := scene.Build(ctx, cfg, scene.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if err := s.ApplyEdits(ctx, cfg.Edits); err != nil {
//	    return err
//	}
//	report := s.Report()
//
// Build and ApplyEdits run inside OpenTelemetry spans from the global
// tracer provider.
package scene
