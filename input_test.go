package gltut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitKeys(t *testing.T) {
	for n := 0; n <= 9; n++ {
		k := DigitKey(n)
		d, ok := k.Digit()
		assert.True(t, ok)
		assert.Equal(t, n, d)
		assert.Equal(t, string(rune('0'+n)), k.String())
	}
	assert.Equal(t, KeyNone, DigitKey(-1))
	assert.Equal(t, KeyNone, DigitKey(10))

	d, ok := KeyA.Digit()
	assert.False(t, ok)
	assert.Equal(t, -1, d)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "Space", KeyName(KeySpace))
	assert.Equal(t, "KP+", KeyName(KeyKPAdd))
	assert.Equal(t, "F1", KeyF1.String())
	assert.Equal(t, "?", KeyName(KeyCount))
}

func TestModifiersHas(t *testing.T) {
	m := ModShift | ModCtrl
	assert.True(t, m.Has(ModShift))
	assert.True(t, m.Has(ModShift|ModCtrl))
	assert.False(t, m.Has(ModAlt))
	assert.True(t, Modifiers(0).Has(0))
}
