package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInputError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := &InputError{
			Path:    "api.yaml",
			Message: "cannot open",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "input error reading api.yaml: cannot open: permission denied" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &InputError{}
		if err.Error() != "input error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInput", func(t *testing.T) {
		err := fmt.Errorf("reading spec: %w", &InputError{Path: "api.yaml"})
		if !errors.Is(err, ErrInput) {
			t.Error("expected errors.Is(err, ErrInput) to be true")
		}
		if errors.Is(err, ErrParse) {
			t.Error("expected errors.Is(err, ErrParse) to be false")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &InputError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "api.yaml"}
		if err.Error() != "parse error in api.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "parse error at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := fmt.Errorf("parsing: %w", &ParseError{Message: "not an object"})
		if !errors.Is(err, ErrParse) {
			t.Error("expected errors.Is(err, ErrParse) to be true")
		}
	})

	t.Run("As extracts typed error", func(t *testing.T) {
		err := fmt.Errorf("parsing: %w", &ParseError{Path: "api.yaml", Line: 3})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("expected errors.As to extract *ParseError")
		}
		if parseErr.Line != 3 {
			t.Errorf("expected line 3, got %d", parseErr.Line)
		}
	})
}

func TestSerializeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("bad node")
		err := &SerializeError{
			Format:  "json",
			Message: "cannot encode scalar",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "serialization error to json: cannot encode scalar: bad node" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is matches ErrSerialize", func(t *testing.T) {
		err := fmt.Errorf("writing output: %w", &SerializeError{Format: "yaml"})
		if !errors.Is(err, ErrSerialize) {
			t.Error("expected errors.Is(err, ErrSerialize) to be true")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "method",
			Value:   "teapot",
			Message: "not a valid HTTP method",
		}

		msg := err.Error()
		if msg != "configuration error for method (value: teapot): not a valid HTTP method" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := fmt.Errorf("options: %w", &ConfigError{Option: "input"})
		if !errors.Is(err, ErrConfig) {
			t.Error("expected errors.Is(err, ErrConfig) to be true")
		}
	})
}
