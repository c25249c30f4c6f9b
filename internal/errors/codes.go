package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error independently of the transport that reports it
type Code string

// Codes the service produces or receives from its peers
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

type transportCodes struct {
	grpc codes.Code
	http int
}

// transports is the single source for both status mappings.
// FailedPrecondition is 412 because the catalog for the slot is not loaded yet.
var transports = map[Code]transportCodes{
	CodeOK:                 {grpc: codes.OK, http: http.StatusOK},
	CodeCanceled:           {grpc: codes.Canceled, http: http.StatusRequestTimeout},
	CodeDeadlineExceeded:   {grpc: codes.DeadlineExceeded, http: http.StatusGatewayTimeout},
	CodeInvalidArgument:    {grpc: codes.InvalidArgument, http: http.StatusBadRequest},
	CodeNotFound:           {grpc: codes.NotFound, http: http.StatusNotFound},
	CodeFailedPrecondition: {grpc: codes.FailedPrecondition, http: http.StatusPreconditionFailed},
	CodeUnavailable:        {grpc: codes.Unavailable, http: http.StatusServiceUnavailable},
	CodeInternal:           {grpc: codes.Internal, http: http.StatusInternalServerError},
}

func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the response status for c; unknown codes are 500
func (c Code) HTTPStatus() int {
	if t, ok := transports[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the status code for c; unknown codes are codes.Unknown
func (c Code) GRPCCode() codes.Code {
	if t, ok := transports[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

// codeFromGRPC maps a received status code back; anything unmapped is Internal
func codeFromGRPC(gc codes.Code) Code {
	for code, t := range transports {
		if t.grpc == gc {
			return code
		}
	}
	return CodeInternal
}
