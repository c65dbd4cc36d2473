package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Geometry is a snapshot of the host's scroll and viewport primitives.
// All values are in pixels; ContainerTop is the gallery's page offset.
type Geometry struct {
	ScrollY         float64
	ContainerTop    float64
	ContainerHeight float64
	ViewportHeight  float64
	ViewportWidth   float64
}

// Scrollable is the distance the page scrolls while the container's top
// edge sits at or above the viewport top and its bottom edge has not yet
// risen above the viewport bottom.
func (g Geometry) Scrollable() float64 {
	return g.ContainerHeight - g.ViewportHeight
}

// RawProgress returns the unsmoothed progress of g in [0,1]. A container
// that cannot scroll yields 0.
func RawProgress(g Geometry) float64 {
	scrollable := g.Scrollable()
	if !(scrollable > 0) || math.IsInf(scrollable, 0) {
		return 0
	}
	return clamp01((g.ScrollY - g.ContainerTop) / scrollable)
}

// SpringConfig describes the smoothing spring in mass-spring-damper terms.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	FPS       int
	RestDelta float64
}

// DefaultSpring is the gallery's smoothing spring.
var DefaultSpring = SpringConfig{
	Stiffness: 200,
	Damping:   25,
	Mass:      1,
	FPS:       60,
	RestDelta: 0.001,
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness <= 0 {
		c.Stiffness = DefaultSpring.Stiffness
	}
	if c.Damping <= 0 {
		c.Damping = DefaultSpring.Damping
	}
	if c.Mass <= 0 {
		c.Mass = DefaultSpring.Mass
	}
	if c.FPS <= 0 {
		c.FPS = DefaultSpring.FPS
	}
	if c.RestDelta <= 0 {
		c.RestDelta = DefaultSpring.RestDelta
	}
	return c
}

// AngularFrequency is sqrt(k/m).
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio is c/(2*sqrt(k*m)).
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Source turns observed scroll geometry into a smoothed progress signal.
// Observe records the newest raw sample, Tick advances the spring by one
// frame and publishes the result to the cell.
type Source struct {
	cfg    SpringConfig
	spring harmonica.Spring
	cell   *Cell

	pos    float64
	vel    float64
	target float64
}

// NewSource returns a Source at rest at progress 0.
func NewSource(cfg SpringConfig) *Source {
	cfg = cfg.withDefaults()
	return &Source{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency(), cfg.DampingRatio()),
		cell:   NewCell(0),
	}
}

// Progress returns the smoothed progress cell.
func (s *Source) Progress() Progress {
	return s.cell
}

// Config returns the spring configuration in effect.
func (s *Source) Config() SpringConfig {
	return s.cfg
}

// Observe records a new geometry sample as the spring's target.
func (s *Source) Observe(g Geometry) {
	s.target = RawProgress(g)
}

// Target returns the latest raw progress.
func (s *Source) Target() float64 {
	return s.target
}

// Tick advances the spring by one frame and publishes the smoothed value.
// It reports whether the spring is still moving.
func (s *Source) Tick() bool {
	if s.Settled() {
		s.pos, s.vel = s.target, 0
		s.cell.Set(s.pos)
		return false
	}

	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.target-s.pos) < s.cfg.RestDelta && math.Abs(s.vel) < s.cfg.RestDelta {
		s.pos, s.vel = s.target, 0
	}
	s.cell.Set(clamp01(s.pos))
	return !s.Settled()
}

// Settled reports whether the spring has converged on its target.
func (s *Source) Settled() bool {
	return s.pos == s.target && s.vel == 0
}

// Jump moves the smoothed value to p without animation.
func (s *Source) Jump(p float64) {
	p = clamp01(p)
	s.pos, s.vel, s.target = p, 0, p
	s.cell.Set(p)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
