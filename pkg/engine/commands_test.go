package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchEscapeExits(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 1}

	assert.Equal(t, ActionExit, s.Dispatch(KeyEscape, win, testLogger()))
	assert.Empty(t, win.calls)
}

func TestDispatchFullscreenRoundTrip(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 2}
	log := testLogger()

	s.Dispatch(KeyF, win, log)
	assert.Equal(t, []string{"exclusive:0"}, win.calls)

	// Either fullscreen key leaves fullscreen once active.
	s.Dispatch(KeyF, win, log)
	assert.Equal(t, []string{"exclusive:0", "windowed"}, win.calls)

	s.Dispatch(KeyB, win, log)
	assert.Equal(t, "borderless", win.calls[len(win.calls)-1])

	s.Dispatch(KeyB, win, log)
	assert.Equal(t, "windowed", win.calls[len(win.calls)-1])
}

func TestDispatchModeCycleWraps(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 3}
	log := testLogger()

	s.Dispatch(KeyM, win, log)
	assert.Equal(t, 1, s.ModeIndex)
	s.Dispatch(KeyM, win, log)
	assert.Equal(t, 2, s.ModeIndex)
	s.Dispatch(KeyM, win, log)
	assert.Equal(t, 0, s.ModeIndex)
}

func TestDispatchSelectedModeUsedForExclusive(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 3}
	log := testLogger()

	s.Dispatch(KeyM, win, log)
	s.Dispatch(KeyF, win, log)

	assert.Equal(t, []string{"exclusive:1"}, win.calls)
}

func TestDispatchDecorationsToggle(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 1}
	log := testLogger()

	assert.True(t, s.Decorations)
	s.Dispatch(KeyD, win, log)
	assert.False(t, s.Decorations)
	s.Dispatch(KeyD, win, log)
	assert.True(t, s.Decorations)
	assert.Equal(t, []string{"decorated:false", "decorated:true"}, win.calls)
}

func TestDispatchMaximizeMinimizeToggles(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 1}
	log := testLogger()

	s.Dispatch(KeyX, win, log)
	s.Dispatch(KeyZ, win, log)
	s.Dispatch(KeyX, win, log)

	assert.Equal(t, []string{"maximized:true", "minimized:true", "maximized:false"}, win.calls)
	assert.False(t, s.Maximized)
	assert.True(t, s.Minimized)
}

func TestDispatchSizeLimitsCombine(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 1}
	log := testLogger()

	s.Dispatch(KeyI, win, log)
	assert.Equal(t, "limits:100:100:-1:-1", win.calls[len(win.calls)-1])

	s.Dispatch(KeyA, win, log)
	assert.Equal(t, "limits:100:100:200:200", win.calls[len(win.calls)-1])

	s.Dispatch(KeyI, win, log)
	assert.Equal(t, "limits:-1:-1:200:200", win.calls[len(win.calls)-1])

	s.Dispatch(KeyA, win, log)
	assert.Equal(t, "limits:-1:-1:-1:-1", win.calls[len(win.calls)-1])
}

func TestDispatchIgnoresUnboundKeys(t *testing.T) {
	s := NewWindowCommandState()
	win := &fakeCommander{modeCount: 1}

	assert.Equal(t, ActionNone, s.Dispatch(KeyUnknown, win, testLogger()))
	assert.Empty(t, win.calls)
}
