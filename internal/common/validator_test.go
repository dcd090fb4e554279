package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	t.Run("new validator is valid", func(t *testing.T) {
		v := NewValidator()
		assert.True(t, v.Valid())
	})

	t.Run("check records the first error per field", func(t *testing.T) {
		v := NewValidator()
		v.Check(false, "field", "first message")
		v.Check(false, "field", "second message")

		assert.False(t, v.Valid())
		assert.Equal(t, "first message", v.Errors["field"])
	})

	t.Run("passing checks record nothing", func(t *testing.T) {
		v := NewValidator()
		v.Check(true, "field", "message")
		assert.True(t, v.Valid())
	})

	t.Run("string length bounds", func(t *testing.T) {
		v := NewValidator()
		assert.True(t, v.CheckStringLength("abc", 1, 3))
		assert.False(t, v.CheckStringLength("abcd", 1, 3))
		assert.False(t, v.CheckStringLength("", 1, 3))
		assert.True(t, v.CheckMinLength("abc", 3))
		assert.False(t, v.CheckMinLength("ab", 3))
	})

	t.Run("validation error carries the field map", func(t *testing.T) {
		v := NewValidator()
		v.AddError("email", "must be provided")

		err := v.ValidationError()

		var validationErr ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, map[string]string{"email": "must be provided"}, validationErr.Errors)
	})
}
