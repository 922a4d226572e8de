package engine

import (
	"reflect"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestFrameHoldsNoSurfaceTexture(t *testing.T) {
	// The surface keeps ownership of the texture returned by
	// GetCurrentTexture; a frame may only hold, and release, views
	// created from it.
	tt := reflect.TypeOf(wgpuFrame{})
	for i := 0; i < tt.NumField(); i++ {
		assert.NotEqual(t, reflect.TypeOf((*wgpu.Texture)(nil)), tt.Field(i).Type,
			"frame must not hold the surface texture")
	}
}

func TestFrameDiscardWithoutRecordingIsSafe(t *testing.T) {
	f := &wgpuFrame{}

	assert.NotPanics(t, func() { f.Discard() })
	// Discard after discard releases nothing twice.
	assert.NotPanics(t, func() { f.Discard() })
}
