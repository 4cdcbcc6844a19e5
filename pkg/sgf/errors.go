package sgf

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code. Codes are grouped by the stage
// that detects the fault: LEX_* for tokenization, STRUCTURE_* for game
// tree shape, and VALUE_* for property value validation.
type Code string

const (
	// Lexer errors
	CodeUnterminatedValue   Code = "LEX_UNTERMINATED_VALUE"
	CodeUnexpectedCharacter Code = "LEX_UNEXPECTED_CHARACTER"

	// Structure errors
	CodeUnbalancedParens  Code = "STRUCTURE_UNBALANCED_PARENS"
	CodeEmptyGameTree     Code = "STRUCTURE_EMPTY_GAME_TREE"
	CodeDuplicateProperty Code = "STRUCTURE_DUPLICATE_PROPERTY"
	CodeUnexpectedToken   Code = "STRUCTURE_UNEXPECTED_TOKEN"

	// Value errors
	CodeTooManyValues         Code = "VALUE_TOO_MANY"
	CodeMissingValue          Code = "VALUE_MISSING"
	CodeInvalidNumber         Code = "VALUE_INVALID_NUMBER"
	CodeInvalidDouble         Code = "VALUE_INVALID_DOUBLE"
	CodeInvalidColor          Code = "VALUE_INVALID_COLOR"
	CodeInvalidPoint          Code = "VALUE_INVALID_POINT"
	CodePointOutOfBounds      Code = "VALUE_POINT_OUT_OF_BOUNDS"
	CodeInvalidCompose        Code = "VALUE_INVALID_COMPOSE"
	CodeInvalidText           Code = "VALUE_INVALID_TEXT"
	CodeRootPropertyMisplaced Code = "VALUE_ROOT_PROPERTY_MISPLACED"
)

// Error is a structured parse or validation error. Offset is the byte
// offset into the original input that locates the fault, or -1 for
// errors raised on programmatically built trees.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Offset  int    // Byte offset into the input, -1 if not positioned
	Ident   string // Property identifier involved, if any
	Cause   error  // Underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Ident != "" {
		msg = fmt.Sprintf("%s: %s", e.Ident, msg)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (at offset %d)", e.Code, msg, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// withCause attaches an underlying error and returns e for chaining.
func (e *Error) withCause(err error) *Error {
	e.Cause = err
	return e
}

// newError creates an Error with the given code, offset and formatted message.
func newError(code Code, offset int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}

// propError creates an Error attributed to a property identifier.
func propError(code Code, ident string, offset int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Ident:   ident,
	}
}

// IsCode reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// ErrorCode extracts the error code from err, or "" if err is not an *Error.
func ErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsLexError reports whether err was raised during tokenization.
func IsLexError(err error) bool { return hasPrefix(err, "LEX_") }

// IsStructureError reports whether err was raised while assembling the game tree.
func IsStructureError(err error) bool { return hasPrefix(err, "STRUCTURE_") }

// IsValueError reports whether err was raised while typing property values.
func IsValueError(err error) bool { return hasPrefix(err, "VALUE_") }

func hasPrefix(err error, prefix string) bool {
	code := ErrorCode(err)
	return len(code) >= len(prefix) && string(code[:len(prefix)]) == prefix
}
