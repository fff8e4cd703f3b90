package svgconv

import "fmt"

// The converter fails as close to the offending attribute or command as
// possible: there is no best-effort recovery or silent coercion of invalid
// geometry. Degenerate but well-formed input (zero sized shapes, zero-area
// viewBox) is not an error and yields empty results instead.

// FormatError reports malformed markup content: bad numeric or unit
// literals, negative dimensions, wrong transform-function arity, invalid
// path data, missing required shape attributes.
type FormatError string

func (e FormatError) Error() string { return "svg: " + string(e) }

// ReferenceError reports a use element whose target identifier is missing
// or was not registered earlier in document order.
type ReferenceError string

func (e ReferenceError) Error() string { return "svg: " + string(e) }

// StructuralError reports a document whose root element is not <svg>.
type StructuralError string

func (e StructuralError) Error() string { return "svg: " + string(e) }

// UnsupportedFeatureError reports well-formed markup relying on features
// outside the supported subset, such as relative length units.
type UnsupportedFeatureError string

func (e UnsupportedFeatureError) Error() string { return "svg: unsupported: " + string(e) }

func formatErrorf(format string, args ...interface{}) FormatError {
	return FormatError(fmt.Sprintf(format, args...))
}
