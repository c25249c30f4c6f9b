// Package errors provides the coded errors every layer of the build share
// service returns.
//
// An *Error carries a Code, a client-facing message, optional metadata and
// the cause it wraps. The code alone decides the HTTP status
// (Code.HTTPStatus) and the gRPC status (ToGRPCError); metadata rides along
// as a google.protobuf.Struct status detail and is restored by FromGRPCError.
//
// The codes the service produces:
//
//   - InvalidArgument: unknown slots, malformed identifiers, enchant levels
//     outside the item's options (meta "options" lists the valid levels) and
//     config problems (meta ValidationMetaKey lists them per field)
//   - FailedPrecondition: the slot's catalog has not been loaded yet
//   - NotFound: no cached document or config file
//   - Unavailable: the catalog host or Redis could not be reached
//   - Internal: anything uncoded
//
// Wrap and Wrapf keep the code and meta of a coded cause:
//
//	if err != nil {
//	    return errors.Wrapf(err, "failed to fetch catalog for slot %s", slot)
//	}
//
// WrapWithCode replaces the code of a foreign error:
//
//	return errors.WrapWithCodef(err, errors.CodeUnavailable, "catalog request for slot %s failed", slot)
package errors
