// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/cctweak/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "target_not_found_error",
			code:    errors.ErrTargetNotFound,
			message: "no installation located",
			wantStr: "[TARGET_NOT_FOUND] no installation located",
		},
		{
			name:    "unsafe_replacement_error",
			code:    errors.ErrUnsafeReplacement,
			message: "replacement exceeds span",
			wantStr: "[UNSAFE_REPLACEMENT] replacement exceeds span",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := errors.Wrap(inner, errors.ErrFileWrite, "write failed")

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[FILE_WRITE] write failed: disk full"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrLengthInvariant, "output %d != input %d", 10, 12)

	if !errors.IsErrorCode(err, errors.ErrLengthInvariant) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrUnsafeReplacement) {
		t.Error("IsErrorCode() should not match a different code")
	}

	// Works through wrapping
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrLengthInvariant) {
		t.Error("IsErrorCode() should unwrap to find the code")
	}

	if errors.GetErrorCode(stderrors.New("plain")) != errors.ErrUnknown {
		t.Error("GetErrorCode() on a plain error should be ErrUnknown")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnrecognizedShape, "no pattern matched").
		WithDetail("path", "/usr/local/bin/claude").
		WithDetail("rules", 7)

	details := errors.GetErrorDetails(err)
	if details["path"] != "/usr/local/bin/claude" {
		t.Errorf("WithDetail() path = %v", details["path"])
	}
	if details["rules"] != 7 {
		t.Errorf("WithDetail() rules = %v", details["rules"])
	}
}
