package scroll

import "math"

const (
	gridLeadIn      = 0.05
	gridResetMargin = 0.1
	gridRaisedZ     = 40
)

// GridView is the closing grid's visual state.
type GridView struct {
	Opacity     float64 `json:"opacity"`
	Scale       float64 `json:"scale"`
	OffsetY     float64 `json:"offset_y"`
	ZIndex      int     `json:"z_index"`
	Interactive bool    `json:"interactive"`
}

// GridState returns the closing grid's visual state at progress. It fades
// in over a short lead-in ending at the grid's start.
func GridState(l Layout, progress float64) GridView {
	start := l.GridStart()
	in := []float64{start - gridLeadIn, start}
	v := GridView{
		Opacity: Keyframes{In: in, Out: []float64{0, 1}}.At(progress),
		Scale:   Keyframes{In: in, Out: []float64{0.95, 1}}.At(progress),
		OffsetY: Keyframes{In: in, Out: []float64{50, 0}}.At(progress),
	}
	if progress >= start-gridLeadIn {
		v.ZIndex = gridRaisedZ
	}
	v.Interactive = v.Opacity > 0
	return v
}

// ClosingGrid is the independently scrollable overview shown in the final
// segment. Its internal offset returns to the top whenever progress falls
// clearly below the grid's start.
type ClosingGrid struct {
	layout        Layout
	offset        float64
	contentHeight float64
	viewHeight    float64
	unsubscribe   func()
}

// NewClosingGrid returns a grid for layout l.
func NewClosingGrid(l Layout) *ClosingGrid {
	return &ClosingGrid{layout: l}
}

// SetLayout replaces the layout used for the reset threshold.
func (g *ClosingGrid) SetLayout(l Layout) {
	g.layout = l
}

// ResetThreshold is the progress below which the offset is reset.
func (g *ClosingGrid) ResetThreshold() float64 {
	return g.layout.GridStart() - gridResetMargin
}

// Attach resets the offset and subscribes to progress. A previous
// subscription is dropped first.
func (g *ClosingGrid) Attach(p Progress) {
	g.Detach()
	g.offset = 0
	g.unsubscribe = p.Subscribe(g.observe)
}

// Detach ends the progress subscription.
func (g *ClosingGrid) Detach() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

func (g *ClosingGrid) observe(progress float64) {
	if progress < g.ResetThreshold() {
		g.offset = 0
	}
}

// SetExtent sets the grid's content and visible heights.
func (g *ClosingGrid) SetExtent(contentHeight, viewHeight float64) {
	g.contentHeight = contentHeight
	g.viewHeight = viewHeight
	g.offset = g.clampOffset(g.offset)
}

// ScrollBy moves the internal offset by delta, clamped to the content.
func (g *ClosingGrid) ScrollBy(delta float64) float64 {
	g.offset = g.clampOffset(g.offset + delta)
	return g.offset
}

// Offset returns the internal scroll offset.
func (g *ClosingGrid) Offset() float64 {
	return g.offset
}

func (g *ClosingGrid) clampOffset(v float64) float64 {
	limit := math.Max(0, g.contentHeight-g.viewHeight)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, limit)
}
