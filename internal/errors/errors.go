package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoHeader        = errors.New("CSV file has no header row")
	ErrNoMatches       = errors.New("no files matched the pattern")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput        ErrorType = "input"
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypeEncoding     ErrorType = "encoding"
	ErrorTypeSchema       ErrorType = "schema"
	ErrorTypeMalformedRow ErrorType = "malformed_row"
	ErrorTypeJSONDecode   ErrorType = "json_decode"
	ErrorTypeOutput       ErrorType = "output"
	ErrorTypeUnknown      ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error

	// Row is the 1-based row number for malformed-row errors, counting the
	// header row as row 1. Zero for every other error type.
	Row int
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input handling
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewFileNotFoundError creates a new error for a missing input file
func NewFileNotFoundError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeFileNotFound,
		Message: message,
		Err:     err,
	}
}

// NewEncodingError creates a new error for undecodable input bytes
func NewEncodingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEncoding,
		Message: message,
		Err:     err,
	}
}

// NewSchemaError creates a new error for a structurally invalid input shape
func NewSchemaError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSchema,
		Message: message,
		Err:     err,
	}
}

// NewMalformedRowError creates a new error for a CSV row whose cell count
// does not match the header. The row number is 1-based with the header as
// row 1.
func NewMalformedRowError(row int, message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedRow,
		Message: message,
		Err:     err,
		Row:     row,
	}
}

// NewJSONDecodeError creates a new error for syntactically invalid JSON
func NewJSONDecodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeJSONDecode,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing the destination file
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// Exit codes by error kind, consumed by launcher scripts that map a
// non-zero status to a precise failure message.
const (
	ExitOK           = 0
	ExitUnknown      = 1
	ExitInput        = 2
	ExitFileNotFound = 3
	ExitEncoding     = 4
	ExitSchema       = 5
	ExitMalformedRow = 6
	ExitJSONDecode   = 7
	ExitOutput       = 8
)

// ExitCode maps an error to the process exit code for its failure kind.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return ExitUnknown
	}
	switch appErr.Type {
	case ErrorTypeInput:
		return ExitInput
	case ErrorTypeFileNotFound:
		return ExitFileNotFound
	case ErrorTypeEncoding:
		return ExitEncoding
	case ErrorTypeSchema:
		return ExitSchema
	case ErrorTypeMalformedRow:
		return ExitMalformedRow
	case ErrorTypeJSONDecode:
		return ExitJSONDecode
	case ErrorTypeOutput:
		return ExitOutput
	default:
		return ExitUnknown
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeFileNotFound:
			return fmt.Sprintf("File error: %s", appErr.Message)
		case ErrorTypeEncoding:
			return fmt.Sprintf("Encoding error: %s", appErr.Message)
		case ErrorTypeSchema:
			return fmt.Sprintf("Schema error: %s", appErr.Message)
		case ErrorTypeMalformedRow:
			return fmt.Sprintf("Malformed row error: %s", appErr.Message)
		case ErrorTypeJSONDecode:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide data to convert."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrNoHeader) {
		return "Error: The CSV file has no header row. The first non-empty line must name the columns."
	}
	if errors.Is(err, ErrNoMatches) {
		return "Error: No files matched the given pattern. Please check the glob pattern."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
