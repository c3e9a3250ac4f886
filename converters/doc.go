// Package converters turns textual edge lists into records the builder
// package can assemble into a core.Graph.
//
// Format:
//
//	start-A
//	start-b
//	A-c
//	A-end
//
// One record per line, two labels joined by a single hyphen. Surrounding
// whitespace (including a trailing "\r") is ignored, blank lines are
// skipped, and the final line needs no terminator.
//
// Errors:
//
//	*MalformedInputError - a record does not split into exactly two
//	                       non-empty labels; unwraps to ErrMalformedInput.
package converters
