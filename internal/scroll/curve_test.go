package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestKeyframesAt(t *testing.T) {
	k := Keyframes{In: []float64{-0.6, 0, 0.6, 1}, Out: []float64{0.8, 1, 0.95, 1.1}}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below first point clamps", -5, 0.8},
		{"first point", -0.6, 0.8},
		{"halfway up the first leg", -0.3, 0.9},
		{"control point", 0, 1},
		{"between interior points", 0.3, 0.975},
		{"last point", 1, 1.1},
		{"above last point clamps", 42, 1.1},
		{"negative infinity", math.Inf(-1), 0.8},
		{"positive infinity", math.Inf(1), 1.1},
		{"NaN maps to first output", math.NaN(), 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, k.At(tt.x), eps)
		})
	}
}

func TestKeyframesDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Keyframes{}.At(1))
	assert.Equal(t, 0.0, Keyframes{In: []float64{0, 1}, Out: []float64{1}}.At(0.5))

	step := Keyframes{In: []float64{0, 0.5, 0.5, 1}, Out: []float64{0, 0, 1, 1}}
	assert.InDelta(t, 0.0, step.At(0.25), eps)
	assert.InDelta(t, 1.0, step.At(0.75), eps)
}

func TestProjectStateSettled(t *testing.T) {
	s := ProjectState(0, false, Desktop)
	assert.InDelta(t, 1.0, s.Opacity, eps)
	assert.InDelta(t, 1.0, s.Scale, eps)
	assert.InDelta(t, 0.0, s.Rotation, eps)
	assert.InDelta(t, 150.0, s.ClipRadius, eps)
	assert.InDelta(t, 0.0, s.TitleOffsetX, eps)
	assert.InDelta(t, 0.0, s.DescOffsetY, eps)
	assert.Equal(t, "circle(150% at 50% 50%)", s.ClipPath())
	assert.Equal(t, "scale(1) rotate(0deg)", s.Transform())
}

func TestProjectStateControlPoints(t *testing.T) {
	tests := []struct {
		x                              float64
		opacity, scale, rotation, clip float64
		titleX, descY                  float64
	}{
		{-0.6, 0, 0.8, -10, 0, -50, 50},
		{0, 1, 1, 0, 150, 0, 0},
		{0.6, 1, 0.95, -2, 150, 0, 0},
		{1.0, 0, 1.1, 0, 150, -50, 50},
	}
	for _, tt := range tests {
		s := ProjectState(tt.x, false, Desktop)
		assert.InDelta(t, tt.opacity, s.Opacity, eps, "opacity at %v", tt.x)
		assert.InDelta(t, tt.scale, s.Scale, eps, "scale at %v", tt.x)
		assert.InDelta(t, tt.rotation, s.Rotation, eps, "rotation at %v", tt.x)
		assert.InDelta(t, tt.clip, s.ClipRadius, eps, "clip at %v", tt.x)
		assert.InDelta(t, tt.titleX, s.TitleOffsetX, eps, "title x at %v", tt.x)
		assert.InDelta(t, tt.descY, s.DescOffsetY, eps, "desc y at %v", tt.x)
	}
}

func TestProjectStateBackgroundParallax(t *testing.T) {
	assert.InDelta(t, -10.0, ProjectState(-0.6, false, Desktop).BackgroundOffsetX, eps)
	assert.InDelta(t, 0.0, ProjectState(0.2, false, Desktop).BackgroundOffsetX, eps)
	assert.InDelta(t, 10.0, ProjectState(1, false, Desktop).BackgroundOffsetX, eps)
	assert.InDelta(t, 10.0, ProjectState(7, false, Desktop).BackgroundOffsetX, eps)
}

func TestProjectStateLastFadesLater(t *testing.T) {
	assert.InDelta(t, 0.0, ProjectState(1.0, false, Desktop).Opacity, eps)
	assert.InDelta(t, 1.0, ProjectState(0.8, true, Desktop).Opacity, eps)
	assert.InDelta(t, 0.5, ProjectState(1.0, true, Desktop).Opacity, eps)
	assert.InDelta(t, 0.0, ProjectState(1.2, true, Desktop).Opacity, eps)

	// Only opacity deviates for the last project.
	a, b := ProjectState(0.9, false, Desktop), ProjectState(0.9, true, Desktop)
	assert.Equal(t, a.Scale, b.Scale)
	assert.Equal(t, a.TitleOpacity, b.TitleOpacity)
}

func TestProjectStateMobileIsFlat(t *testing.T) {
	s := ProjectState(-0.3, false, Mobile)
	assert.InDelta(t, 0.5, s.Opacity, eps)
	assert.Equal(t, 1.0, s.Scale)
	assert.Equal(t, 0.0, s.Rotation)
	assert.Equal(t, 0.0, s.TitleOffsetX)
	assert.Equal(t, 0.0, s.DescOffsetY)
	assert.Equal(t, 0.0, s.BackgroundOffsetX)
	assert.Equal(t, "none", s.ClipPath())
}

func TestProjectStateTotal(t *testing.T) {
	for _, x := range []float64{math.Inf(-1), -1e300, -0.61, 1.21, 1e300, math.Inf(1), math.NaN()} {
		s := ProjectState(x, true, Desktop)
		for _, v := range []float64{s.Opacity, s.Scale, s.Rotation, s.ClipRadius, s.TitleOffsetX, s.DescOffsetY, s.BackgroundOffsetX} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite output for %v", x)
		}
	}
}

func TestInteractiveBoundaries(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{-0.2000001, false},
		{-0.2, true},
		{0, true},
		{0.8, true},
		{0.8000001, false},
		{-0.6, false},
		{1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Interactive(tt.x), "Interactive(%v)", tt.x)
	}
	assert.Equal(t, "auto", PointerEvents(0))
	assert.Equal(t, "none", PointerEvents(0.9))
}
