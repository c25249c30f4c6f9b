package errors

import (
	"errors"
	"fmt"
)

// Error is a coded error. Meta holds structured details that survive the
// trip through HTTP and gRPC, such as the enchant options of a rejected level.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// WithMeta sets one metadata entry and returns e
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = map[string]interface{}{}
	}
	e.Meta[key] = value
	return e
}

// New returns an error with code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap annotates err. A coded cause keeps its code and meta; any other
// cause becomes Internal. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	return wrap(err, "", message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return wrap(err, "", fmt.Sprintf(format, args...))
}

// WrapWithCode annotates err and replaces its code. Meta of a coded cause is kept.
func WrapWithCode(err error, code Code, message string) *Error {
	return wrap(err, code, message)
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return wrap(err, code, fmt.Sprintf(format, args...))
}

// wrap builds the wrapper; an empty code inherits the cause's code
func wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: code, Message: message, Cause: err}
	if cause, ok := asError(err); ok {
		if out.Code == "" {
			out.Code = cause.Code
		}
		if len(cause.Meta) > 0 {
			out.Meta = make(map[string]interface{}, len(cause.Meta))
			for k, v := range cause.Meta {
				out.Meta[k] = v
			}
		}
	}
	if out.Code == "" {
		out.Code = CodeInternal
	}
	return out
}

// InvalidArgument reports a malformed request or config
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFoundf reports a missing document, item or file
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// FailedPreconditionf reports an operation on a slot whose catalog is not loaded
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Unavailablef reports an upstream that could not be reached
func Unavailablef(format string, args ...interface{}) *Error {
	return Newf(CodeUnavailable, format, args...)
}
