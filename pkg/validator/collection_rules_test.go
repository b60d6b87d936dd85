package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formspoon/formspoon/pkg/validator"
)

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-lists", func(t *testing.T) {
		_, err := validator.List(validator.Exists()).Validate("items", "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a list")
	})

	t.Run("reports the failing element path", func(t *testing.T) {
		v := validator.List(validator.Length(1, -1))
		_, err := v.Validate("key", []any{"ok", ""})
		require.Error(t, err)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "key[1]", verr.Key)
	})

	t.Run("rebuilds the slice on transform without touching the input", func(t *testing.T) {
		input := []any{"yes", "no"}
		out, err := validator.List(validator.Bool()).Validate("flags", input)
		require.NoError(t, err)

		assert.Equal(t, []any{true, false}, out)
		assert.Equal(t, []any{"yes", "no"}, input)
	})

	t.Run("returns nil when nothing changed", func(t *testing.T) {
		out, err := validator.List(validator.Exists()).Validate("items", []any{"a", "b"})
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("populate recurses with a list suffix", func(t *testing.T) {
		meta := validator.List(validator.Regex("^x$")).Populate("items")
		assert.Equal(t, map[string]any{
			"validators": []map[string]any{{"pattern": "^x$"}},
		}, meta)
	})
}

func TestDict(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-dicts", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{"x": validator.With(validator.Exists())})
		_, err := v.Validate("user", []any{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a dict")
	})

	t.Run("missing configured key is a FormKeyError with a dotted path", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{"x": validator.With(validator.Exists())})
		_, err := v.Validate("key", map[string]any{})
		require.Error(t, err)

		var kerr *validator.FormKeyError
		require.ErrorAs(t, err, &kerr)
		assert.Equal(t, "key.x", kerr.Key)
	})

	t.Run("present configured key passes", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{"x": validator.With(validator.Exists())})
		out, err := v.Validate("key", map[string]any{"x": 1})
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("extra unconfigured keys are ignored", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{"x": validator.With(validator.Exists())})
		_, err := v.Validate("key", map[string]any{"x": 1, "y": "anything"})
		assert.NoError(t, err)
	})

	t.Run("child failures carry the field path", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{
			"email": validator.With(validator.Email("")),
		})
		_, err := v.Validate("user", map[string]any{"email": "broken"})
		require.Error(t, err)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "user.email", verr.Key)
	})

	t.Run("rebuilds the map on transform without touching the input", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{"active": validator.With(validator.Bool())})
		input := map[string]any{"active": "yes", "other": "kept"}

		out, err := v.Validate("user", input)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"active": true, "other": "kept"}, out)
		assert.Equal(t, map[string]any{"active": "yes", "other": "kept"}, input)
	})

	t.Run("populate reports per-field metadata", func(t *testing.T) {
		v := validator.Dict(map[string]validator.Set{
			"count": validator.With(validator.Length(1, 4)),
		})
		meta := v.Populate("form")
		assert.Equal(t, map[string]any{
			"count": []map[string]any{{"min": 1, "max": 4}},
		}, meta)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-maps", func(t *testing.T) {
		_, err := validator.Map(validator.Exists()).Validate("attrs", 3)
		assert.Error(t, err)
	})

	t.Run("applies the same rule to every value", func(t *testing.T) {
		v := validator.Map(validator.Select("a", "b"))
		_, err := v.Validate("key", map[string]any{"k1": "a", "k2": "b"})
		assert.NoError(t, err)
	})

	t.Run("reports the failing entry path", func(t *testing.T) {
		v := validator.Map(validator.Select("a", "b"))
		_, err := v.Validate("key", map[string]any{"k1": "a", "k2": "z"})
		require.Error(t, err)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "key[k2]", verr.Key)
	})

	t.Run("rebuilds on transform", func(t *testing.T) {
		input := map[string]any{"a": "on", "b": "off"}
		out, err := validator.Map(validator.Bool()).Validate("flags", input)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": true, "b": false}, out)
		assert.Equal(t, map[string]any{"a": "on", "b": "off"}, input)
	})

	t.Run("populate recurses with a map suffix", func(t *testing.T) {
		meta := validator.Map(validator.Select("a")).Populate("attrs")
		assert.Equal(t, map[string]any{
			"validators": []map[string]any{{"options": []string{"a"}}},
		}, meta)
	})
}

func TestNestedStructures(t *testing.T) {
	t.Parallel()

	t.Run("list of dicts reports a combined path", func(t *testing.T) {
		v := validator.List(validator.Dict(map[string]validator.Set{
			"email": validator.With(validator.Email("")),
		}))
		_, err := v.Validate("user", []any{
			map[string]any{"email": "a@b"},
			map[string]any{"email": "broken"},
		})
		require.Error(t, err)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "user[1].email", verr.Key)
	})

	t.Run("transforms bubble through nesting", func(t *testing.T) {
		v := validator.List(validator.Dict(map[string]validator.Set{
			"active": validator.With(validator.Bool()),
		}))
		out, err := v.Validate("users", []any{map[string]any{"active": "yes"}})
		require.NoError(t, err)
		assert.Equal(t, []any{map[string]any{"active": true}}, out)
	})

	t.Run("repeated validation of validated output is stable", func(t *testing.T) {
		v := validator.List(validator.Length(1, 10))
		input := []any{"alpha", "beta"}

		for i := 0; i < 2; i++ {
			out, err := v.Validate("items", input)
			require.NoError(t, err)
			assert.Nil(t, out)
		}
	})
}
