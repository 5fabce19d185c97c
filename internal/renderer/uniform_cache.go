package renderer

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// MaterialProperties is an in-memory material surface. Values are keyed by
// property name ("_fadeTime_0", "_skyColor", ...) and grouped by kind.
type MaterialProperties struct {
	Name     string
	floats   map[string]float32
	vectors  map[string]mgl32.Vec4
	colors   map[string]mgl32.Vec4
	textures map[string]string
	writes   int
}

func NewMaterialProperties(name string) *MaterialProperties {
	return &MaterialProperties{
		Name:     name,
		floats:   make(map[string]float32),
		vectors:  make(map[string]mgl32.Vec4),
		colors:   make(map[string]mgl32.Vec4),
		textures: make(map[string]string),
	}
}

func (mp *MaterialProperties) SetFloat(name string, value float32) {
	mp.floats[name] = value
	mp.writes++
}

func (mp *MaterialProperties) SetVector(name string, value mgl32.Vec4) {
	mp.vectors[name] = value
	mp.writes++
}

func (mp *MaterialProperties) SetColor(name string, value mgl32.Vec4) {
	mp.colors[name] = value
	mp.writes++
}

// SetTexture stores a texture reference. An empty reference unbinds the slot.
func (mp *MaterialProperties) SetTexture(name string, ref string) {
	mp.textures[name] = ref
	mp.writes++
}

func (mp *MaterialProperties) Float(name string) (float32, bool) {
	v, ok := mp.floats[name]
	return v, ok
}

func (mp *MaterialProperties) Vector(name string) (mgl32.Vec4, bool) {
	v, ok := mp.vectors[name]
	return v, ok
}

func (mp *MaterialProperties) Color(name string) (mgl32.Vec4, bool) {
	v, ok := mp.colors[name]
	return v, ok
}

func (mp *MaterialProperties) Texture(name string) (string, bool) {
	v, ok := mp.textures[name]
	return v, ok
}

// Writes counts every Set call since creation or the last Clear.
func (mp *MaterialProperties) Writes() int {
	return mp.writes
}

// Names lists every stored property name in sorted order.
func (mp *MaterialProperties) Names() []string {
	names := make([]string, 0, len(mp.floats)+len(mp.vectors)+len(mp.colors)+len(mp.textures))
	for n := range mp.floats {
		names = append(names, n)
	}
	for n := range mp.vectors {
		names = append(names, n)
	}
	for n := range mp.colors {
		names = append(names, n)
	}
	for n := range mp.textures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clear drops every stored value.
func (mp *MaterialProperties) Clear() {
	mp.floats = make(map[string]float32)
	mp.vectors = make(map[string]mgl32.Vec4)
	mp.colors = make(map[string]mgl32.Vec4)
	mp.textures = make(map[string]string)
	mp.writes = 0
}
