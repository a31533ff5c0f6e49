package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "age", Rule: "integer", Message: "must be an integer, got \"x\""})
		errs.Add(validator.ValidationError{Field: "tags", Rule: "list", Message: "must be a list"})

		assert.Equal(t, `validation failed: age: must be an integer, got "x"; tags: must be a list`, errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing digit"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Empty(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "age", Message: "bad"}}
		wrapped := fmt.Errorf("signup: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.Equal(t, "age", extracted[0].Field)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})

	t.Run("other errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestFieldErrors(t *testing.T) {
	errs := validator.FieldErrors{"age": {}, "name": {}}
	assert.True(t, errs.IsEmpty())

	errs.Add("name", "field is required")
	errs.Add("name", "must contain only letters")

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("age"))
	assert.Equal(t, "field is required", errs.Get("name"))
	assert.Equal(t, "", errs.Get("age"))
	assert.Equal(t, []string{"name"}, errs.Failed())
}
