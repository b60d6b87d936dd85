package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formspoon/formspoon/pkg/validator"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	t.Run("accepts a canonical UUID", func(t *testing.T) {
		out, err := validator.UUID().Validate("id", uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("rejects wrong shape", func(t *testing.T) {
		for _, value := range []string{"", "not-a-uuid", "123e4567e89b12d3a456426614174000"} {
			_, err := validator.UUID().Validate("id", value)
			assert.Error(t, err, value)
		}
	})

	t.Run("rejects bad hex in the right shape", func(t *testing.T) {
		_, err := validator.UUID().Validate("id", "123e4567-e89b-12d3-a456-42661417400g")
		assert.Error(t, err)
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		_, err := validator.UUID().Validate("id", 12)
		assert.Error(t, err)
	})
}
