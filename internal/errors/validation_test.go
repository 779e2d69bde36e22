package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorMessageIsOrdered() {
	ve := errors.NewValidationError()
	ve.AddFieldError("PageSize", "must be positive")
	ve.AddFieldError("BaseURL", "is required")

	s.Assert().Equal("validation failed: BaseURL: is required; PageSize: must be positive", ve.Error())
}

func (s *ValidationTestSuite) TestBuilderErrorCarriesFields() {
	vb := errors.NewValidationBuilder()
	vb.Fieldf("PageSize", "must be at most %d", 500)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(map[string][]string{"PageSize": {"must be at most 500"}},
		errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", "https://pokeapi.co/api/v2", vb)
	errors.ValidateRange("PageSize", 20, 1, 500, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	testCases := []struct {
		name     string
		validate func(*errors.ValidationBuilder)
		contains string
	}{
		{
			name:     "required blank",
			validate: func(vb *errors.ValidationBuilder) { errors.ValidateRequired("BaseURL", "  ", vb) },
			contains: "BaseURL: is required",
		},
		{
			name:     "out of range",
			validate: func(vb *errors.ValidationBuilder) { errors.ValidateRange("PageSize", 0, 1, 500, vb) },
			contains: "PageSize: must be between 1 and 500",
		},
		{
			name: "enum",
			validate: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("SortKey", "speed", []string{"level", "name"}, vb)
			},
			contains: "SortKey: must be one of: level, name",
		},
		{
			name:     "invalid field",
			validate: func(vb *errors.ValidationBuilder) { vb.InvalidField("Link", "no trailing id") },
			contains: "Link: is invalid: no trailing id",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			err := vb.Build()
			s.Require().Error(err)
			s.Assert().Contains(err.Error(), tc.contains)
		})
	}
}
