package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/vango-dev/geom/pkg/collection"
)

// Category represents the type of error.
type Category string

const (
	CategoryCollection Category = "collection"
	CategoryConfig     Category = "config"
	CategoryScene      Category = "scene"
	CategoryCLI        Category = "cli"
)

// Location is a position inside a scene file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a coded error report.
type Error struct {
	// Code is a unique identifier such as "G001".
	Code string

	Category Category

	// Message is a short description.
	Message string

	// Detail is a longer explanation.
	Detail string

	Location *Location

	// Context holds the scene file lines around Location.
	Context []string

	// ContextStart is the 1-based line number of Context[0].
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation points the error at a scene file line and loads the lines
// around it for display.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context, e.ContextStart = readContextLines(file, line, 5)
	return e
}

func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap records err as the cause.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines returns up to contextSize lines centred on targetLine,
// clipped to the file, and the line number of the first one.
func readContextLines(filename string, targetLine, contextSize int) ([]string, int) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	first := max(targetLine-contextSize/2, 1)
	last := targetLine + contextSize/2

	var lines []string
	scanner := bufio.NewScanner(file)
	for n := 1; scanner.Scan() && n <= last; n++ {
		if n >= first {
			lines = append(lines, scanner.Text())
		}
	}
	if len(lines) == 0 {
		return nil, 0
	}
	return lines, first
}

// New creates an Error from a registered code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err under code unless it already is an *Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var ge *Error
	if stderrors.As(err, &ge) {
		return ge
	}
	return New(code).Wrap(err)
}

// Classify maps collection sentinel errors to their codes. Other errors
// are wrapped under fallback.
func Classify(err error, fallback string) *Error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, collection.ErrNameNotUnique):
		return FromError(err, "G001")
	case stderrors.Is(err, collection.ErrIndexOutOfBounds):
		return FromError(err, "G002")
	case stderrors.Is(err, collection.ErrNoSuchName):
		return FromError(err, "G003")
	}
	return FromError(err, fallback)
}
