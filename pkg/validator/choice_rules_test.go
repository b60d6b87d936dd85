package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formspoon/formspoon/pkg/validator"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("accepts a configured option without transform", func(t *testing.T) {
		out, err := validator.Select("a", "b").Validate("option", "a")
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("rejects an unknown option", func(t *testing.T) {
		_, err := validator.Select("a", "b").Validate("option", "c")
		assert.Error(t, err)
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		_, err := validator.Select("1").Validate("option", 1)
		assert.Error(t, err)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := validator.Select("apples").Validate("option", "Apples")
		assert.Error(t, err)
	})

	t.Run("populate reports sorted options", func(t *testing.T) {
		meta := validator.Select("oranges", "apples", "bananas").Populate("fruit")
		assert.Equal(t, map[string]any{"options": []string{"apples", "bananas", "oranges"}}, meta)
	})
}
