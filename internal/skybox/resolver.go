package skybox

import "SkyCycle/internal/timeline"

// effectiveWindow unrolls a wrapping window onto a continuous axis and
// returns the window end and current time on that axis.
func (l *Layer) effectiveWindow(currentTime, cycleLength float32) (end, t float32) {
	end, t = l.TimeSpanEnd, currentTime
	if l.Wraps() {
		end += cycleLength
		if currentTime < l.TimeSpanStart {
			t += cycleLength
		}
	}
	return end, t
}

// InWindow reports whether currentTime falls inside the layer's window, bounds included.
func (l *Layer) InWindow(currentTime, cycleLength float32) bool {
	end, t := l.effectiveWindow(currentTime, cycleLength)
	return t >= l.TimeSpanStart && t <= end
}

// SelectActiveLayer picks the layer that renders on slotID at currentTime and
// tags every layer of that slot.
//
// The first enabled in-window layer in collection order wins and is tagged
// Rendering. Every later candidate is tagged ConflictNotPlaying and flips the
// winner to ConflictPlaying; the winner is still returned. Layers outside
// their window or disabled are tagged NotRendering. Layers bound to other
// slots are left untouched. Returns nil when no layer qualifies.
func SelectActiveLayer(layers []*Layer, slotID int, currentTime, cycleLength float32) *Layer {
	var active *Layer
	for _, l := range layers {
		if l == nil || l.SlotID != slotID {
			continue
		}
		if !l.InWindow(currentTime, cycleLength) || !l.Enabled {
			l.RenderType = NotRendering
			continue
		}
		if active == nil {
			l.RenderType = Rendering
			active = l
			continue
		}
		active.RenderType = ConflictPlaying
		l.RenderType = ConflictNotPlaying
	}
	return active
}

// FadeWeight returns the layer opacity near its window edges.
//
// Inside the fade-in span the weight ramps 0→1 from the window start. Inside
// the fade-out span it is InverseLerp(end, end-fadeOut, t), which runs 1→0
// towards the end. When both spans apply the fade-out value is the one kept.
// Outside both spans, or for a nil layer, the weight is 1.
func FadeWeight(l *Layer, currentTime, cycleLength float32) float32 {
	if l == nil {
		return 1
	}

	end, _ := l.effectiveWindow(currentTime, cycleLength)
	t := currentTime
	if currentTime < l.TimeSpanStart {
		t += cycleLength
	}

	weight := float32(1)
	fadeInEnd := l.TimeSpanStart + l.FadeInTime
	if t < fadeInEnd {
		weight = timeline.InverseLerp(l.TimeSpanStart, fadeInEnd, t)
	}
	fadeOutStart := end - l.FadeOutTime
	if t > fadeOutStart {
		weight = timeline.InverseLerp(end, fadeOutStart, t)
	}
	return weight
}

// NormalizedLayerTime is the position of currentTime inside the layer's window, in [0,1].
func NormalizedLayerTime(l *Layer, currentTime, cycleLength float32) float32 {
	end, t := l.effectiveWindow(currentTime, cycleLength)
	return timeline.InverseLerp(l.TimeSpanStart, end, t)
}

// SlotState is the per-slot outcome of one tick.
type SlotState struct {
	Slot      int
	Layer     *Layer
	Fade      float32
	LayerTime float32
}

// Active reports whether a layer renders on the slot.
func (s SlotState) Active() bool {
	return s.Layer != nil && s.Layer.Enabled
}

// ResolveSlot runs layer selection for one slot and computes the winner's fade
// weight and window position. An empty slot reports full opacity.
func ResolveSlot(layers []*Layer, slotID int, currentTime, cycleLength float32) SlotState {
	st := SlotState{Slot: slotID, Fade: 1}
	st.Layer = SelectActiveLayer(layers, slotID, currentTime, cycleLength)
	if st.Layer == nil {
		return st
	}
	st.Fade = FadeWeight(st.Layer, currentTime, cycleLength)
	st.LayerTime = NormalizedLayerTime(st.Layer, currentTime, cycleLength)
	return st
}
