package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// detailCodeKey names the original code inside the status detail
const detailCodeKey = "@code"

// ToGRPCError turns err into a status error. Meta is attached as a single
// google.protobuf.Struct detail; a detail that cannot be encoded is dropped
// and the status is still returned. Status errors pass through unchanged.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	coded, ok := asError(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(coded.Code.GRPCCode(), coded.Message)
	if len(coded.Meta) == 0 {
		return st.Err()
	}
	detail, encErr := metaToStruct(coded.Code, coded.Meta)
	if encErr != nil {
		return st.Err()
	}
	if withDetail, detErr := st.WithDetails(detail); detErr == nil {
		st = withDetail
	}
	return st.Err()
}

// FromGRPCError restores a coded error from a status error, meta included.
// Errors without a status are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := New(codeFromGRPC(st.Code()), st.Message())
	for _, d := range st.Details() {
		detail, isStruct := d.(*structpb.Struct)
		if !isStruct {
			continue
		}
		meta := detail.AsMap()
		delete(meta, detailCodeKey)
		if len(meta) > 0 {
			out.Meta = meta
		}
		break
	}
	return out
}

// metaToStruct encodes meta for the wire. String slices and the validation
// field map become lists; other unsupported values are sent as fmt strings.
func metaToStruct(code Code, meta map[string]interface{}) (*structpb.Struct, error) {
	fields := make(map[string]interface{}, len(meta)+1)
	for k, v := range meta {
		fields[k] = wireValue(v)
	}
	fields[detailCodeKey] = code.String()
	return structpb.NewStruct(fields)
}

func wireValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, bool, string, int, int32, int64, uint, uint32, uint64, float32, float64:
		return val
	case []string:
		return stringList(val)
	case map[string][]string:
		nested := make(map[string]interface{}, len(val))
		for field, msgs := range val {
			nested[field] = stringList(msgs)
		}
		return nested
	default:
		return fmt.Sprint(val)
	}
}

func stringList(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
