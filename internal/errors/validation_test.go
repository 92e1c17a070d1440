package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("generator", "is required")
	ve.AddFieldError("seed", "is invalid")
	ve.AddFieldErrorf("seeds", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "generator: is required")
	s.Assert().Contains(ve.Error(), "seed: is invalid")
	s.Assert().Contains(ve.Error(), "seeds: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorMessageIsOrdered() {
	ve := errors.NewValidationError()
	ve.AddFieldError("zeta", "bad")
	ve.AddFieldError("alpha", "bad")

	s.Assert().Equal("validation failed: alpha: bad; zeta: bad", ve.Error())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("generator", "is required").
		Fieldf("width", "must be between %d and %d", 1, 80).
		RequiredField("run_id")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "bsp", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  bsp  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("generator", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("seeds", 100, 1, 64, vb)
	errors.ValidateRange("width", 80, 1, 256, vb)
	errors.ValidateRange("height", 0, 1, 256, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["seeds"][0], "must be between 1 and 64")
	s.Assert().Contains(validationErrors["height"][0], "must be between 1 and 256")
	s.Assert().NotContains(validationErrors, "width")
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("capacity", 0, vb)
	errors.ValidatePositive("attempts", 20, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["capacity"][0], "must be positive, got 0")
	s.Assert().NotContains(validationErrors, "attempts")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"pythagoras", "manhattan", "chebyshev"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("metric", "euclid", allowed, vb)
	errors.ValidateEnum("boundary_metric", "pythagoras", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["metric"][0], "must be one of: pythagoras, manhattan, chebyshev")
	s.Assert().NotContains(validationErrors, "boundary_metric")
}
