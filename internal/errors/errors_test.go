package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("permission denied"),
			},
			expected: "input: failed to read input: permission denied",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeSchema,
				Message: "duplicate header column",
				Err:     nil,
			},
			expected: "schema: duplicate header column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: NewSchemaError("duplicate header", nil),
			target:   &AppError{Type: ErrorTypeSchema},
			expected: true,
		},
		{
			name:     "different type",
			appError: NewSchemaError("duplicate header", nil),
			target:   &AppError{Type: ErrorTypeMalformedRow},
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: NewSchemaError("duplicate header", nil),
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Is(tt.target)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNewMalformedRowError_CarriesRowNumber(t *testing.T) {
	err := NewMalformedRowError(7, "row 7 has 3 cells, expected 4", nil)
	assert.Equal(t, 7, err.Row)
	assert.Equal(t, ErrorTypeMalformedRow, err.Type)

	var appErr *AppError
	assert.True(t, errors.As(fmt.Errorf("converting: %w", err), &appErr))
	assert.Equal(t, 7, appErr.Row)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitOK},
		{name: "input error", err: NewInputError("bad flag", nil), expected: ExitInput},
		{name: "file not found", err: NewFileNotFoundError("missing", nil), expected: ExitFileNotFound},
		{name: "encoding error", err: NewEncodingError("not UTF-8", nil), expected: ExitEncoding},
		{name: "schema error", err: NewSchemaError("duplicate header", nil), expected: ExitSchema},
		{name: "malformed row", err: NewMalformedRowError(2, "arity", nil), expected: ExitMalformedRow},
		{name: "JSON decode error", err: NewJSONDecodeError("syntax", nil), expected: ExitJSONDecode},
		{name: "output error", err: NewOutputError("rename failed", nil), expected: ExitOutput},
		{name: "plain error", err: errors.New("boom"), expected: ExitUnknown},
		{name: "wrapped app error", err: fmt.Errorf("ctx: %w", NewSchemaError("dup", nil)), expected: ExitSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("failed to read file", nil),
			expected: "Input error: failed to read file",
		},
		{
			name:     "file not found error",
			err:      NewFileNotFoundError("input file 'in.csv' not found", nil),
			expected: "File error: input file 'in.csv' not found",
		},
		{
			name:     "encoding error",
			err:      NewEncodingError("input is not valid UTF-8", nil),
			expected: "Encoding error: input is not valid UTF-8",
		},
		{
			name:     "schema error",
			err:      NewSchemaError("duplicate header column", nil),
			expected: "Schema error: duplicate header column",
		},
		{
			name:     "malformed row error",
			err:      NewMalformedRowError(3, "row 3 has 2 cells, expected 4", nil),
			expected: "Malformed row error: row 3 has 2 cells, expected 4",
		},
		{
			name:     "JSON decode error",
			err:      NewJSONDecodeError("JSON syntax error at offset 12", nil),
			expected: "JSON parsing error: JSON syntax error at offset 12",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide data to convert.",
		},
		{
			name:     "standard error - invalid JSON",
			err:      ErrInvalidJSON,
			expected: "Error: The input contains invalid JSON. Please check your JSON syntax.",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserFriendlyError(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
