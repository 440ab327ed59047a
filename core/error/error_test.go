// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "old value must not be empty"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original"),
			message: "wrapper",
			wantMsg: "wrapper: original",
		},
		{
			name:    "wrap textkit error",
			err:     New("original").WithCode(CodeInvalidArgument),
			message: "wrapper",
			wantMsg: "wrapper: original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestWrapPreservesMetadata(t *testing.T) {
	inner := New("inner").
		WithCode(CodeInvalidArgument).
		WithOperation("stringx.replace").
		WithDetail("argument", "oldValue")

	outer := Wrap(inner, "outer")

	if outer.Code() != CodeInvalidArgument {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInvalidArgument)
	}
	if outer.Operation() != "stringx.replace" {
		t.Errorf("Operation() = %q, want %q", outer.Operation(), "stringx.replace")
	}
	if outer.Details()["argument"] != "oldValue" {
		t.Errorf("Details()[argument] = %v, want oldValue", outer.Details()["argument"])
	}
	if outer.RootCause() != inner {
		t.Error("RootCause() should return the innermost error")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, "layer")
	}

	length := 0
	truncated := false
	for current := err; current != nil; current = errors.Unwrap(current) {
		length++
		if e, ok := current.(*Error); ok && e.Details()["truncated"] == true {
			truncated = true
		}
	}

	if !truncated {
		t.Error("expected a truncated node in a chain deeper than MaxErrorChainDepth")
	}
	if length > MaxErrorChainDepth {
		t.Errorf("chain length = %d, want <= %d", length, MaxErrorChainDepth)
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidArgument, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeEnvironmentError, SeverityCritical},
		{CodeOperationFailed, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidArgument)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("x").WithDetail("k", "v")
	details := err.Details()
	details["k"] = "changed"

	if err.Details()["k"] != "v" {
		t.Error("Details() must not expose internal map")
	}
}

func TestString(t *testing.T) {
	err := New("bad argument").
		WithCode(CodeInvalidArgument).
		WithOperation("stringx.replace").
		WithDetails(map[string]interface{}{"b": 2, "a": 1})

	s := err.String()
	for _, want := range []string{
		"Error: bad argument",
		"Code: INVALID_ARGUMENT",
		"Severity: low",
		"Operation: stringx.replace",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeConfigError).
		WithOperation("config.load")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", unmarshalErr)
	}

	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v, want CONFIG_ERROR", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v, want cause", decoded["cause"])
	}
	if decoded["operation"] != "config.load" {
		t.Errorf("operation = %v, want config.load", decoded["operation"])
	}
}

func TestCodeHelpers(t *testing.T) {
	err := New("x").WithCode(CodeNotFound)

	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Error("HasCode() on plain error = true, want false")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on plain error should be SeverityMedium")
	}

	wrapped := fmt.Errorf("context: %w", New("inner").WithCode(CodeInvalidInput))
	if !HasCode(wrapped, CodeInvalidInput) || GetSeverity(wrapped) != SeverityLow {
		t.Error("helpers should find an *Error wrapped by fmt.Errorf")
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeInvalidArgument, true, "input", 2},
		{CodeValidationFailed, true, "validation", 2},
		{CodeInvalidConfig, true, "configuration", 3},
		{CodeInternal, true, "generic", 1},
		{Code("SOMETHING_ELSE"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		str      string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.severity.ShouldAlert(); got != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", got, tt.alert)
			}
		})
	}
}
