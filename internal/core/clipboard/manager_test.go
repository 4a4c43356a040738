package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalRegister(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.UsesSystem())
	assert.Equal(t, "", m.Get())

	assert.NoError(t, m.Set("copied\ntext"))
	assert.Equal(t, "copied\ntext", m.Get())

	assert.NoError(t, m.Set(""))
	assert.Equal(t, "", m.Get())
}
