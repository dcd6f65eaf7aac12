package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
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
			message:  "sheet not found",
			expected: "NOT_FOUND: sheet not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown field path",
			expected: "INVALID_ARGUMENT: unknown field path",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("sheet not found").
		WithMeta("location", "/tmp/agumon.json").
		WithMeta("store", "file")

	s.Assert().Equal("/tmp/agumon.json", err.Meta["location"])
	s.Assert().Equal("file", err.Meta["store"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to save sheet")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to save sheet", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal("INTERNAL: failed to save sheet: disk full", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.NotFound("sheet not found").WithMeta("location", "a.json")
	wrapped := errors.Wrap(original, "failed to open sheet")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("a.json", wrapped.Meta["location"])
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	original := errors.Internal("decode failed").WithMeta("location", "a.json")
	wrapped := errors.WrapWithCode(original, errors.CodeInvalidArgument, "not a sheet document")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("a.json", wrapped.Meta["location"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "message"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "message"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("sheet a not found")
	err2 := errors.NotFound("sheet b not found")
	err3 := errors.InvalidArgument("bad path")

	s.Assert().True(errors.Is(err1, err2))
	s.Assert().False(errors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("no location")))

	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("no location", errors.GetMessage(errors.FailedPrecondition("no location")))
	s.Assert().Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	s.Assert().Equal(0, errors.CodeOK.ExitCode())
	s.Assert().Equal(2, errors.CodeInvalidArgument.ExitCode())
	s.Assert().Equal(3, errors.CodeNotFound.ExitCode())
	s.Assert().Equal(4, errors.CodeFailedPrecondition.ExitCode())
	s.Assert().Equal(1, errors.CodeInternal.ExitCode())
}
