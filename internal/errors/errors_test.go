package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/special-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "actor not found",
			expected: "NOT_FOUND: actor not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "value exceeds maximum",
			expected: "OUT_OF_RANGE: value exceeds maximum",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	base := errors.NotFound("actor not found").WithMeta("actor_id", "a1")
	wrapped := errors.Wrap(base, "failed to load actor")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("a1", wrapped.Meta["actor_id"])
	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().ErrorIs(wrapped, errors.NotFound(""))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrapf(base, "failed to get %s", "actor:a1")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get actor:a1", wrapped.Message)
	s.Assert().Equal(base, wrapped.Unwrap())
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("boom"), errors.CodeAborted, "retry")
	s.Assert().Equal(errors.CodeAborted, wrapped.Code)
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", errors.NotFound("missing"), codes.NotFound},
		{"out of range", errors.OutOfRangef("%d > %d", 20, 15), codes.OutOfRange},
		{"failed precondition", errors.FailedPrecondition("not derived"), codes.FailedPrecondition},
		{"plain", fmt.Errorf("plain"), codes.Internal},
		{"already status", status.Error(codes.Aborted, "x"), codes.Aborted},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := errors.ToGRPCError(tc.err)
			s.Assert().Equal(tc.expected, status.Code(got))
		})
	}
}

func (s *ErrorsTestSuite) TestValidationRoundTripThroughGRPC() {
	vb := errors.NewValidationBuilder()
	vb.Field(errors.IndexedField("rules", 1), "invalid JSON")
	vb.RequiredField("name")

	grpcErr := errors.ToGRPCError(vb.Build())
	s.Require().Equal(codes.InvalidArgument, status.Code(grpcErr))

	back := errors.FromGRPCError(grpcErr)
	s.Assert().True(errors.IsInvalidArgument(back))

	fields, ok := errors.GetMeta(back)[errors.MetaValidationErrors].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Equal([]string{"invalid JSON"}, fields["rules[1]"])
	s.Assert().Equal([]string{"is required"}, fields["name"])
}
