package scroll

import "math"

// Mode is the responsive layout branch.
type Mode int

const (
	Desktop Mode = iota
	Mobile
)

// DefaultBreakpoint is the widest viewport, in pixels, rendered as Mobile.
const DefaultBreakpoint = 768

func (m Mode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ModeFor returns the layout mode for a viewport width using breakpoint
// (DefaultBreakpoint when breakpoint <= 0).
func ModeFor(width float64, breakpoint int) Mode {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width > 0 && width <= float64(breakpoint) {
		return Mobile
	}
	return Desktop
}

const (
	// phaseShift moves each project's settle point ahead of its naive
	// proportional slot.
	phaseShift = 0.8
	// SegmentViewportRatio is the height of one segment in viewport heights.
	SegmentViewportRatio = 1.5
)

// Layout divides [0,1] into an intro segment, one segment per project and
// an optional closing grid segment.
type Layout struct {
	Projects    int  `json:"projects"`
	ClosingGrid bool `json:"closing_grid"`
}

// NewLayout returns the layout for n projects; the closing grid is shown on
// Desktop only.
func NewLayout(n int, mode Mode) Layout {
	if n < 0 {
		n = 0
	}
	return Layout{Projects: n, ClosingGrid: mode == Desktop}
}

// TotalSegments is the number of equal slices of [0,1].
func (l Layout) TotalSegments() int {
	n := l.Projects
	if n < 0 {
		n = 0
	}
	if l.ClosingGrid {
		return n + 2
	}
	return n + 1
}

// Step is the width of one segment in progress units.
func (l Layout) Step() float64 {
	return 1 / float64(l.TotalSegments())
}

// ProjectStart is the progress at which project i settles.
func (l Layout) ProjectStart(i int) float64 {
	return (float64(i) + phaseShift) * l.Step()
}

// GridStart is the progress at which the closing grid is fully shown. It is
// defined even when the grid is disabled.
func (l Layout) GridStart() float64 {
	return (float64(l.Projects) + phaseShift) * l.Step()
}

// ActiveValue is project i's distance, in segments, from its settle point.
// It is unbounded; 0 means settled.
func (l Layout) ActiveValue(i int, progress float64) float64 {
	if math.IsNaN(progress) {
		progress = 0
	}
	return progress*float64(l.TotalSegments()) - (float64(i) + phaseShift)
}

// ContainerHeightVH is the gallery container height in viewport-height units.
func (l Layout) ContainerHeightVH() float64 {
	return float64(l.TotalSegments()) * SegmentViewportRatio * 100
}

// ContainerHeight is the gallery container height in pixels.
func (l Layout) ContainerHeight(viewportHeight float64) float64 {
	return float64(l.TotalSegments()) * SegmentViewportRatio * viewportHeight
}

// SnapPointsVH returns the top of every segment in viewport-height units.
func (l Layout) SnapPointsVH() []float64 {
	out := make([]float64, l.TotalSegments())
	for i := range out {
		out[i] = float64(i) * SegmentViewportRatio * 100
	}
	return out
}
