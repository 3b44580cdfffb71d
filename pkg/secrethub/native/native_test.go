package native_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

func fieldNames(v any) []string {
	t := reflect.TypeOf(v)
	names := make([]string, t.NumField())
	for i := range names {
		names[i] = t.Field(i).Name
	}
	return names
}

// TestStructLayoutMatchesNativeOrder guards the positional decoding contract:
// reordering a Go field silently breaks compatibility with the library.
func TestStructLayoutMatchesNativeOrder(t *testing.T) {
	assert.Equal(t, native.SecretFieldOrder, fieldNames(native.RawSecret{}))
	assert.Equal(t, native.SecretVersionFieldOrder, fieldNames(native.RawSecretVersion{}))
}

func TestSecretVersionEmbedsSecretByValue(t *testing.T) {
	field, ok := reflect.TypeOf(native.RawSecretVersion{}).FieldByName("Secret")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(native.RawSecret{}), field.Type)
	assert.Equal(t, 1, field.Index[0])
}

func TestErrorSlot(t *testing.T) {
	t.Run("zero value is no error", func(t *testing.T) {
		var slot native.ErrorSlot
		msg, failed := slot.Err()
		assert.False(t, failed)
		assert.Empty(t, msg)
	})

	t.Run("nil slot is no error", func(t *testing.T) {
		var slot *native.ErrorSlot
		_, failed := slot.Err()
		assert.False(t, failed)
	})

	t.Run("empty message is no error", func(t *testing.T) {
		var slot native.ErrorSlot
		slot.Set("")
		_, failed := slot.Err()
		assert.False(t, failed)
	})

	t.Run("message is returned verbatim", func(t *testing.T) {
		var slot native.ErrorSlot
		slot.Set("invalid client object")
		msg, failed := slot.Err()
		assert.True(t, failed)
		assert.Equal(t, "invalid client object", msg)
	})
}
