package workout

import (
	"errors"
	"fmt"
)

// Code classifies an operation failure. Codes are part of the API: they
// appear verbatim in HTTP error bodies and MCP tool errors.
type Code string

const (
	CodeBadRequest       Code = "BAD_REQUEST"
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeExerciseNotFound Code = "EXERCISE_NOT_FOUND"
	CodeTemplateNotFound Code = "TEMPLATE_NOT_FOUND"
	CodeSessionNotFound  Code = "SESSION_NOT_FOUND"
	CodeNoSessions       Code = "NO_SESSIONS_FOR_TEMPLATE"
	CodeExerciseExists   Code = "EXERCISE_ALREADY_EXISTS"
	CodeTemplateExists   Code = "TEMPLATE_ALREADY_EXISTS"
	CodeExerciseInUse    Code = "EXERCISE_IN_USE"
	CodeInternal         Code = "INTERNAL_ERROR"
)

// Error is a classified operation failure.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errf builds a classified error with a formatted message.
func Errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the classification code from err, unwrapping as
// needed. Errors that carry no code map to CodeInternal.
func CodeOf(err error) Code {
	var we *Error
	if errors.As(err, &we) {
		return we.Code
	}
	return CodeInternal
}
