package engine

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceConfigApply(t *testing.T) {
	cfg := SurfaceConfig{}

	assert.True(t, cfg.Apply(WindowSize{Width: 640, Height: 480}))
	assert.Equal(t, uint32(640), cfg.Width)
	assert.Equal(t, uint32(480), cfg.Height)
}

func TestSurfaceConfigApplyZeroAreaIsNoOp(t *testing.T) {
	cfg := SurfaceConfig{Width: 640, Height: 480}

	assert.False(t, cfg.Apply(WindowSize{Width: 0, Height: 480}))
	assert.False(t, cfg.Apply(WindowSize{Width: 640, Height: 0}))
	assert.False(t, cfg.Apply(WindowSize{}))

	assert.Equal(t, uint32(640), cfg.Width)
	assert.Equal(t, uint32(480), cfg.Height)
}

func TestSurfaceConfigApplyIsIdempotent(t *testing.T) {
	cfg := SurfaceConfig{}

	cfg.Apply(WindowSize{Width: 300, Height: 200})
	once := cfg
	cfg.Apply(WindowSize{Width: 300, Height: 200})

	assert.Equal(t, once, cfg)
}

func TestPreferredFormatPicksFirstSRGB(t *testing.T) {
	got := preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatRGBA8UnormSrgb,
	})
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, got)
}

func TestPreferredFormatFallsBackToFirst(t *testing.T) {
	got := preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatRGBA8Unorm,
	})
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, got)
}

func TestClassifySurfaceError(t *testing.T) {
	cases := []struct {
		msg  string
		want SurfaceErrorKind
	}{
		{"surface texture is Lost", SurfaceErrorLost},
		{"surface configuration is Outdated", SurfaceErrorOutdated},
		{"OutOfMemory acquiring texture", SurfaceErrorOutOfMemory},
		{"acquisition ran out of memory", SurfaceErrorOutOfMemory},
		{"Timeout waiting for texture", SurfaceErrorOther},
		{"something else entirely", SurfaceErrorOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifySurfaceError(errors.New(tc.msg)), tc.msg)
	}
}

func TestAcquireErrorUnwrap(t *testing.T) {
	cause := errors.New("Lost")
	err := &AcquireError{Kind: SurfaceErrorLost, cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Lost")
}
