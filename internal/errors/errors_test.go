package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/muutmoku/ao-build-share/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

// unloadedSlot is what the build and catalog orchestrators return before warm-up
func unloadedSlot(slot string) *errors.Error {
	return errors.FailedPreconditionf("catalog for slot %s is not loaded", slot)
}

// rejectedEnchant is what SelectEnchant returns for a level outside the options
func rejectedEnchant(level string, options []string) *errors.Error {
	return errors.InvalidArgumentf("enchant %q is not available for T4_MAIN_SWORD", level).
		WithMeta("options", options)
}

func (s *ErrorsTestSuite) TestUnloadedSlot() {
	err := unloadedSlot("bag")

	s.Equal("FAILED_PRECONDITION: catalog for slot bag is not loaded", err.Error())
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(http.StatusPreconditionFailed, errors.GetCode(err).HTTPStatus())

	wrapped := errors.Wrapf(err, "failed to list enchants for %s", "T4_BAG")
	s.True(errors.IsFailedPrecondition(wrapped), "wrapping keeps the code")
	s.Equal("failed to list enchants for T4_BAG", errors.GetMessage(wrapped))
	s.Same(err, stderrors.Unwrap(wrapped))

	st, ok := status.FromError(errors.ToGRPCError(wrapped))
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Empty(st.Details(), "no meta, no detail")

	back := errors.FromGRPCError(st.Err())
	s.True(errors.IsFailedPrecondition(back))
	s.Nil(errors.GetMeta(back))
}

func (s *ErrorsTestSuite) TestRejectedEnchantCarriesOptions() {
	err := rejectedEnchant("9", []string{"0", "1"})

	s.True(errors.IsInvalidArgument(err))
	s.Equal(http.StatusBadRequest, err.Code.HTTPStatus())
	s.Equal([]string{"0", "1"}, errors.GetMeta(err)["options"])

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal(`enchant "9" is not available for T4_MAIN_SWORD`, st.Message())
	s.Require().Len(st.Details(), 1)

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsInvalidArgument(back))
	s.Equal(st.Message(), errors.GetMessage(back))
	meta := errors.GetMeta(back)
	s.Equal([]interface{}{"0", "1"}, meta["options"])
	s.NotContains(meta, "@code", "the code marker is not user meta")
}

func (s *ErrorsTestSuite) TestWrappedMetaIsCopied() {
	cause := rejectedEnchant("4", []string{"0"})
	wrapped := errors.Wrap(cause, "select enchant").WithMeta("slot", "mainhand")

	s.Equal("mainhand", errors.GetMeta(wrapped)["slot"])
	s.Equal([]string{"0"}, errors.GetMeta(wrapped)["options"])
	s.NotContains(cause.Meta, "slot")
}

func (s *ErrorsTestSuite) TestFetchFailure() {
	dial := fmt.Errorf("dial tcp 10.0.0.7:443: connect: connection refused")
	err := errors.WrapWithCodef(dial, errors.CodeUnavailable, "catalog request for slot %s failed", "head")

	s.True(errors.IsUnavailable(err))
	s.True(stderrors.Is(err, dial))
	s.Equal(http.StatusServiceUnavailable, err.Code.HTTPStatus())
	s.Equal("UNAVAILABLE: catalog request for slot head failed: dial tcp 10.0.0.7:443: connect: connection refused", err.Error())

	loaded := errors.Wrapf(err, "failed to fetch catalog for slot %s", "head")
	s.True(errors.IsUnavailable(loaded))

	st, ok := status.FromError(errors.ToGRPCError(loaded))
	s.Require().True(ok)
	s.Equal(codes.Unavailable, st.Code())
	s.Equal("failed to fetch catalog for slot head", st.Message())
}

func (s *ErrorsTestSuite) TestUncodedErrors() {
	plain := fmt.Errorf("unexpected EOF")

	s.Equal(errors.CodeInternal, errors.GetCode(plain))
	s.Equal("unexpected EOF", errors.GetMessage(plain))
	s.Nil(errors.GetMeta(plain))
	s.Equal(errors.CodeInternal, errors.Wrap(plain, "decode catalog").Code)

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Empty(errors.GetMessage(nil))
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeUnavailable, "nothing"))

	st, ok := status.FromError(errors.ToGRPCError(plain))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	s.True(stderrors.Is(unloadedSlot("cape"), errors.New(errors.CodeFailedPrecondition, "")))
	s.False(stderrors.Is(unloadedSlot("cape"), errors.New(errors.CodeNotFound, "")))
	s.True(errors.IsNotFound(errors.Wrap(errors.NotFoundf("config file %s does not exist", "x.yaml"), "load")))
}

func (s *ErrorsTestSuite) TestStatusPassthrough() {
	original := status.Error(codes.DeadlineExceeded, "context deadline exceeded")
	s.Same(original, errors.ToGRPCError(original))

	back := errors.FromGRPCError(original)
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(back))

	plain := fmt.Errorf("not a status")
	s.Same(plain, errors.FromGRPCError(plain))
	s.Nil(errors.FromGRPCError(nil))

	s.Equal(errors.CodeInternal, errors.GetCode(errors.FromGRPCError(status.Error(codes.Aborted, "aborted"))))
}

func (s *ErrorsTestSuite) TestUnencodableMetaIsStringified() {
	err := errors.InvalidArgument("bad slot").WithMeta("slot", struct{ Name string }{"ring"})

	meta := errors.GetMeta(errors.FromGRPCError(errors.ToGRPCError(err)))
	s.Equal("{ring}", meta["slot"])
}

func (s *ErrorsTestSuite) TestCodeMappings() {
	testCases := []struct {
		code errors.Code
		grpc codes.Code
		http int
	}{
		{errors.CodeOK, codes.OK, http.StatusOK},
		{errors.CodeCanceled, codes.Canceled, http.StatusRequestTimeout},
		{errors.CodeDeadlineExceeded, codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.CodeInvalidArgument, codes.InvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, codes.NotFound, http.StatusNotFound},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeUnavailable, codes.Unavailable, http.StatusServiceUnavailable},
		{errors.CodeInternal, codes.Internal, http.StatusInternalServerError},
		{errors.Code("TEAPOT"), codes.Unknown, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.grpc, tc.code.GRPCCode())
			s.Equal(tc.http, tc.code.HTTPStatus())
		})
	}
}
