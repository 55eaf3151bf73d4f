package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Collection errors (G001-G099)

	"G001": {
		Category: CategoryCollection,
		Message:  "Name not unique",
		Detail:   "A collection name can only be bound once. Remove the existing binding first or pick another name.",
	},
	"G002": {
		Category: CategoryCollection,
		Message:  "Index out of bounds",
		Detail:   "Insert accepts indexes from 0 to the length of the collection; lookups and removals accept 0 to length-1.",
	},
	"G003": {
		Category: CategoryCollection,
		Message:  "No such name",
		Detail:   "The name was never bound in this collection, or it has been removed.",
	},

	// Config errors (G100-G199)

	"G100": {
		Category: CategoryConfig,
		Message:  "Scene file not found",
		Detail:   "The scene file could not be opened.",
	},
	"G101": {
		Category: CategoryConfig,
		Message:  "Invalid scene file",
		Detail:   "The scene file could not be parsed.",
	},
	"G102": {
		Category: CategoryConfig,
		Message:  "Scene validation failed",
		Detail:   "The scene file parsed but some fields have invalid values.",
	},
	"G103": {
		Category: CategoryConfig,
		Message:  "Unsupported scene format",
		Detail:   "Scene files must end in .json, .yaml or .yml.",
	},

	// Scene errors (G200-G299)

	"G200": {
		Category: CategoryScene,
		Message:  "Unknown point",
		Detail:   "A line, ray or edit refers to a point name that is not defined.",
	},
	"G201": {
		Category: CategoryScene,
		Message:  "Invalid color",
		Detail:   "Gradient colors must be hex strings such as \"#ff8000\" or \"#f80\".",
	},
	"G202": {
		Category: CategoryScene,
		Message:  "Scene build failed",
		Detail:   "The scene could not be assembled.",
	},

	// CLI errors (G300-G399)

	"G300": {
		Category: CategoryCLI,
		Message:  "Unsupported output format",
		Detail:   "Output must be one of text, json or yaml.",
	},
	"G301": {
		Category: CategoryCLI,
		Message:  "Scene file exists",
		Detail:   "Refusing to overwrite an existing scene file.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
