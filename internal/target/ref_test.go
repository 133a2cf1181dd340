package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		var ref Ref[string]
		_, ok := ref.Get()
		assert.False(t, ok)
		assert.Equal(t, Unset, ref.Resolve(Registry[string]{}).State())
	})

	t.Run("direct", func(t *testing.T) {
		ref := To("editor")
		got, ok := ref.Get()
		assert.True(t, ok)
		assert.Equal(t, "editor", got)

		// resolution leaves a direct reference alone
		ref = ref.Resolve(Registry[string]{"": "other"})
		assert.Equal(t, Direct, ref.State())
	})

	t.Run("by id", func(t *testing.T) {
		ref := ByID[string]("main")
		assert.Equal(t, Pending, ref.State())
		_, ok := ref.Get()
		assert.False(t, ok)

		ref = ref.Resolve(Registry[string]{})
		assert.Equal(t, Missing, ref.State())
		_, ok = ref.Get()
		assert.False(t, ok)

		// a missing reference can be resolved once the target exists
		ref = ref.Resolve(Registry[string]{"main": "editor"})
		assert.Equal(t, Resolved, ref.State())
		got, ok := ref.Get()
		assert.True(t, ok)
		assert.Equal(t, "editor", got)
		assert.Equal(t, "resolved", ref.State().String())
	})
}
