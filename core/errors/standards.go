// File: standards.go
// Title: Standard Error Constructors
// Description: Standard constructors and module-specific shortcuts used by
//              the textkit packages, plus helpers to inspect the module and
//              operation recorded on an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package errors

import (
	stderrors "errors"
	"fmt"

	tkerror "github.com/msto63/textkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleCharx   = "charx"
	ModuleFilex   = "filex"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(tkerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tkerror.SeverityLow).
		Build()
}

// InvalidArgument creates a standardized error for a rejected function
// argument. The argument name is part of the message.
func InvalidArgument(module, operation, argument string, value interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid argument %s: expected %s", module, operation, argument, expected).
		Code(tkerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Severity(tkerror.SeverityLow).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation("validate_"+field).
		Messagef("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason).
		Code(tkerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(tkerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(tkerror.CodeOperationFailed).
		Severity(tkerror.SeverityHigh).
		Build()
}

// ExtractDetails extracts all details from the first textkit error in
// err's chain
func ExtractDetails(err error) map[string]interface{} {
	var tkErr *tkerror.Error
	if stderrors.As(err, &tkErr) {
		return tkErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// Stringx convenience functions

// StringxInvalidArgument reports a rejected stringx argument.
func StringxInvalidArgument(operation, argument string, value interface{}, expected string) *tkerror.Error {
	return InvalidArgument(ModuleStringx, operation, argument, value, expected)
}

// StringxInvalidInput reports an unusable stringx input value.
func StringxInvalidInput(operation string, input interface{}) *tkerror.Error {
	return InvalidInput(ModuleStringx, operation, input, "valid string")
}

// Config convenience functions

// ConfigInvalidValue reports a configuration key holding an unusable value.
func ConfigInvalidValue(key string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message(fmt.Sprintf("invalid configuration value for %s: %s", key, reason)).
		Code(tkerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Severity(tkerror.SeverityLow).
		Build()
}

// CLI convenience functions

// CLIUsage reports a command invoked with unusable arguments.
func CLIUsage(command string, args interface{}, expected string) *tkerror.Error {
	return InvalidInput(ModuleCLI, command, args, expected)
}
