package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qauto/garage/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("name", "Kate"),
			validator.ValidEmail("email", "kate@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in rule order", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.LettersOnly("name", "A1"),
			validator.LenBetween("name", "A1", 3, 20),
			validator.RequiredString("email", ""),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "email"}, verrs.Fields())
		assert.Equal(t, []string{
			"must contain only English letters",
			"must be from 3 to 20 characters long",
		}, verrs.Get("name"))
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("password"))
	})

	t.Run("no rules means no error", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "email", Message: "required"},
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "incorrect"},
	}

	assert.Equal(t, "validation failed: email: required; password: too short; email: incorrect", verrs.Error())
	assert.Equal(t, map[string][]string{
		"email":    {"required", "incorrect"},
		"password": {"too short"},
	}, verrs.Map())
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	assert.Nil(t, validator.ValidationErrors{}.Map())

	var added validator.ValidationErrors
	added.Add(validator.ValidationError{Field: "name", Message: "x"})
	assert.False(t, added.IsEmpty())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("register: %w", validator.Apply(validator.RequiredString("email", "")))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.False(t, validator.IsValidationError(nil))
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.RequiredString("name", "")
	custom := base.WithMessage("Name required")

	assert.Equal(t, "Name required", custom.Error.Message)
	assert.Equal(t, "field is required", base.Error.Message)
	assert.Equal(t, "validation.required", custom.Error.TranslationKey)
}

func TestRule_When(t *testing.T) {
	t.Parallel()

	failing := validator.RequiredString("name", "")
	assert.True(t, failing.When(false).Check())
	assert.False(t, failing.When(true).Check())
}
