package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	dirs := r.Default()
	require.Len(t, dirs, 24)
	assert.Equal(t, "adobe", dirs[0])
	assert.Contains(t, dirs, "maya/scenes/global")
	assert.Contains(t, dirs, "maya/scripts/global")
	assert.Contains(t, dirs, "maya/Time Editor")
	assert.Equal(t, "zbrush", dirs[len(dirs)-1])
}

func TestGetReturnsCopy(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	first := r.Default()
	first[0] = "mutated"

	assert.Equal(t, "adobe", r.Default()[0])
}

func TestUnknownLayout(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Get("does-not-exist")
	assert.Error(t, err)
	assert.Contains(t, r.Names(), DefaultName)
}
