// Package errors provides structured, coded error reports for the geom
// command line and scene loader.
//
// Library packages return plain sentinel errors (see pkg/collection). This
// package turns those, and failures while reading scene files, into reports
// that carry a code, a category, an optional scene-file location and a hint:
//
//	err := errors.New("G101").
//	    WithLocation("scene.yaml", 12, 5).
//	    WithSuggestion("Each point needs both x and y")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR G101: Invalid scene file
//	//
//	//   scene.yaml:12:5
//	//   ...
//	//
//	//   Hint: Each point needs both x and y
//
// # Error Categories
//
//   - collection: misuse of a collection (duplicate names, bad indexes)
//   - config: unreadable or invalid scene files
//   - scene: scene files that parse but reference unknown objects
//   - cli: command line misuse
package errors
