// Package config loads scene files for the geom command.
//
// A scene is stored as scene.yaml, scene.yml or scene.json. YAML and JSON
// share one schema; the file extension picks the decoder.
//
// # Scene File Structure
//
//	name: example
//	log:
//	  level: info        # debug, info, warn or error
//	  format: text       # text or json
//	metrics:
//	  namespace: geom
//	points:
//	  - {name: a, x: 0, y: 0}
//	  - {name: b, x: 4, y: 0}
//	lines:
//	  - {from: a, to: b}
//	ray:
//	  origin: a
//	  direction: {x: 1, y: 1}
//	gradient:
//	  stops:
//	    - {position: 0, color: "#000000"}
//	    - {position: 1, color: "#ffffff"}
//	  samples: [0, 0.5, 1]
//	edits:
//	  - {point: b, dx: 1, dy: 1}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := slog.New(cfg.Log.Handler(os.Stderr))
//
// Parse failures carry the offending line when the decoder reports one.
// Field values are checked with go-playground/validator; every failure is
// an *errors.Error with a G1xx code.
package config
