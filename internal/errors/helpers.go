package errors

import "errors"

func asError(err error) (*Error, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// GetCode returns the code of err: OK for nil, Internal for uncoded errors
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if coded, ok := asError(err); ok {
		return coded.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost coded error in err's chain
func GetMeta(err error) map[string]interface{} {
	if coded, ok := asError(err); ok {
		return coded.Meta
	}
	return nil
}

// GetMessage returns the client-facing message, without code or cause
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if coded, ok := asError(err); ok {
		return coded.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is coded NotFound
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports whether err is coded InvalidArgument
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsFailedPrecondition reports whether err is coded FailedPrecondition
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsUnavailable reports whether err is coded Unavailable
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
