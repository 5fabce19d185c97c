package skybox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInWindowWraparound(t *testing.T) {
	l := NewLayer("night", 0, 22, 2)

	assert.True(t, l.InWindow(23, 24))
	assert.True(t, l.InWindow(1, 24))
	assert.False(t, l.InWindow(12, 24))
	assert.True(t, l.InWindow(22, 24))
	assert.True(t, l.InWindow(2, 24))
}

func TestInWindowPlain(t *testing.T) {
	l := NewLayer("day", 0, 6, 18)

	assert.True(t, l.InWindow(6, 24))
	assert.True(t, l.InWindow(18, 24))
	assert.False(t, l.InWindow(5.9, 24))
	assert.False(t, l.InWindow(18.1, 24))
}

func TestSelectSingleCandidate(t *testing.T) {
	active := NewLayer("active", 0, 0, 12)
	outside := NewLayer("outside", 0, 13, 20)
	disabled := NewLayer("disabled", 0, 0, 12)
	disabled.Enabled = false
	layers := []*Layer{outside, active, disabled}

	got := SelectActiveLayer(layers, 0, 6, 24)

	require.Same(t, active, got)
	assert.Equal(t, Rendering, active.RenderType)
	assert.Equal(t, NotRendering, outside.RenderType)
	assert.Equal(t, NotRendering, disabled.RenderType)
}

func TestSelectConflictTagging(t *testing.T) {
	l1 := NewLayer("l1", 0, 0, 12)
	l2 := NewLayer("l2", 0, 0, 12)

	got := SelectActiveLayer([]*Layer{l1, l2}, 0, 6, 24)

	require.Same(t, l1, got)
	assert.Equal(t, ConflictPlaying, l1.RenderType)
	assert.Equal(t, ConflictNotPlaying, l2.RenderType)
}

func TestSelectThreeWayConflict(t *testing.T) {
	l1 := NewLayer("l1", 0, 0, 12)
	l2 := NewLayer("l2", 0, 0, 12)
	l3 := NewLayer("l3", 0, 0, 12)

	got := SelectActiveLayer([]*Layer{l1, l2, l3}, 0, 6, 24)

	require.Same(t, l1, got)
	assert.Equal(t, ConflictPlaying, l1.RenderType)
	assert.Equal(t, ConflictNotPlaying, l2.RenderType)
	assert.Equal(t, ConflictNotPlaying, l3.RenderType)
}

func TestSelectIgnoresOtherSlots(t *testing.T) {
	mine := NewLayer("mine", 1, 0, 12)
	other := NewLayer("other", 2, 0, 12)
	other.RenderType = ConflictPlaying

	got := SelectActiveLayer([]*Layer{other, mine}, 1, 6, 24)

	require.Same(t, mine, got)
	assert.Equal(t, ConflictPlaying, other.RenderType, "layers of other slots keep their tag")
}

func TestSelectNoCandidate(t *testing.T) {
	l := NewLayer("late", 0, 20, 22)
	l.RenderType = Rendering

	assert.Nil(t, SelectActiveLayer([]*Layer{l}, 0, 6, 24))
	assert.Equal(t, NotRendering, l.RenderType)
	assert.Nil(t, SelectActiveLayer(nil, 0, 6, 24))
}

func TestSelectRetagsEveryTick(t *testing.T) {
	l1 := NewLayer("l1", 0, 0, 12)
	l2 := NewLayer("l2", 0, 6, 18)

	SelectActiveLayer([]*Layer{l1, l2}, 0, 9, 24)
	require.Equal(t, ConflictPlaying, l1.RenderType)

	got := SelectActiveLayer([]*Layer{l1, l2}, 0, 15, 24)
	require.Same(t, l2, got)
	assert.Equal(t, NotRendering, l1.RenderType)
	assert.Equal(t, Rendering, l2.RenderType)
}

func TestFadeInRamp(t *testing.T) {
	l := NewLayer("dawn", 0, 0, 12)
	l.FadeInTime = 2

	assert.Equal(t, float32(0.5), FadeWeight(l, 1, 24))
	assert.Equal(t, float32(0), FadeWeight(l, 0, 24))
	assert.Equal(t, float32(1), FadeWeight(l, 2, 24))
}

func TestFadeOutRampRunsDownToEnd(t *testing.T) {
	l := NewLayer("dusk", 0, 0, 12)
	l.FadeOutTime = 4

	assert.Equal(t, float32(1), FadeWeight(l, 8, 24))
	assert.Equal(t, float32(0.75), FadeWeight(l, 9, 24))
	assert.Equal(t, float32(0.25), FadeWeight(l, 11, 24))
	assert.Equal(t, float32(0), FadeWeight(l, 12, 24))
}

func TestFadeNoFadeIsOpaque(t *testing.T) {
	l := NewLayer("noon", 0, 6, 18)
	l.FadeInTime = 1
	l.FadeOutTime = 1

	assert.Equal(t, float32(1), FadeWeight(l, 12, 24))
	assert.Equal(t, float32(1), FadeWeight(nil, 12, 24))
}

func TestFadeOutOverridesFadeIn(t *testing.T) {
	// Both spans cover the whole window; the fade-out value wins.
	l := NewLayer("short", 0, 10, 14)
	l.FadeInTime = 4
	l.FadeOutTime = 4

	// fade-in would give 0.25, fade-out gives InverseLerp(14, 10, 11) = 0.75
	assert.Equal(t, float32(0.75), FadeWeight(l, 11, 24))
}

func TestFadeAcrossMidnight(t *testing.T) {
	l := NewLayer("night", 0, 22, 2)
	l.FadeInTime = 2
	l.FadeOutTime = 2

	assert.Equal(t, float32(0.5), FadeWeight(l, 23, 24))
	assert.Equal(t, float32(0.5), FadeWeight(l, 1, 24))
	assert.Equal(t, float32(1), FadeWeight(l, 0, 24))
}

func TestNormalizedLayerTime(t *testing.T) {
	l := NewLayer("night", 0, 22, 2)
	assert.Equal(t, float32(0.5), NormalizedLayerTime(l, 0, 24))
	assert.Equal(t, float32(0.75), NormalizedLayerTime(l, 1, 24))

	day := NewLayer("day", 0, 6, 18)
	assert.Equal(t, float32(0.5), NormalizedLayerTime(day, 12, 24))
}

func TestResolveSlotOverlappingLayers(t *testing.T) {
	early := NewLayer("early", 0, 0, 12)
	early.FadeInTime = 1
	early.FadeOutTime = 4
	late := NewLayer("late", 0, 6, 18)

	st := ResolveSlot([]*Layer{early, late}, 0, 9, 24)

	require.Same(t, early, st.Layer)
	assert.True(t, st.Active())
	assert.Equal(t, ConflictPlaying, early.RenderType)
	assert.Equal(t, ConflictNotPlaying, late.RenderType)
	// Fade-out starts at 8 for the early layer: InverseLerp(12, 8, 9) = 0.75.
	assert.Equal(t, float32(0.75), st.Fade)
	assert.Equal(t, float32(0.75), st.LayerTime)
}

func TestResolveEmptySlot(t *testing.T) {
	st := ResolveSlot(nil, 3, 9, 24)
	assert.Nil(t, st.Layer)
	assert.False(t, st.Active())
	assert.Equal(t, float32(1), st.Fade)
	assert.Equal(t, 3, st.Slot)
}

func TestRenderTypeString(t *testing.T) {
	assert.Equal(t, "rendering", Rendering.String())
	assert.Equal(t, "conflict_playing", ConflictPlaying.String())
	assert.Equal(t, "conflict_not_playing", ConflictNotPlaying.String())
	assert.Equal(t, "not_rendering", NotRendering.String())
}
