package scroll

import (
	"errors"
	"fmt"
)

// ErrSegmentOutOfRange is returned when a jump targets a segment the layout
// does not have.
var ErrSegmentOutOfRange = errors.New("segment out of range")

const (
	indicatorDim         = 0.4
	indicatorActiveScale = 1.5
)

// Indicator is the state of one navigation dot.
type Indicator struct {
	Segment int     `json:"segment"`
	Grid    bool    `json:"grid"`
	Active  bool    `json:"active"`
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
}

// Window returns the [start, end) progress range in which segment is
// focused.
func (l Layout) Window(segment int) (start, end float64) {
	start = (float64(segment) + phaseShift) * l.Step()
	return start, start + l.Step()
}

// Focused returns the project index (or l.Projects for the grid) whose
// window contains progress, or -1 when nothing is focused. The grid's
// window is closed at progress 1.
func (l Layout) Focused(progress float64) int {
	for i := 0; i < l.Projects; i++ {
		start, end := l.Window(i)
		if progress >= start && progress < end {
			return i
		}
	}
	if l.ClosingGrid && progress >= l.GridStart() && progress <= 1 {
		return l.Projects
	}
	return -1
}

// Indicators returns one indicator per project, followed by the grid's when
// the layout has one.
func Indicators(l Layout, progress float64) []Indicator {
	focused := l.Focused(progress)
	n := l.Projects
	if l.ClosingGrid {
		n++
	}
	out := make([]Indicator, 0, n)
	for seg := 0; seg < n; seg++ {
		ind := Indicator{
			Segment: seg,
			Grid:    l.ClosingGrid && seg == l.Projects,
			Opacity: indicatorDim,
			Scale:   1,
		}
		if seg == focused {
			ind.Active = true
			ind.Opacity = 1
			ind.Scale = indicatorActiveScale
		}
		out = append(out, ind)
	}
	return out
}

// JumpOffset is the scroll distance below the container top at which
// segment settles, for a viewport of the given height.
func JumpOffset(segment int, viewportHeight float64) float64 {
	return (float64(segment) + phaseShift) * viewportHeight * SegmentViewportRatio
}

// Scroller is the host's scroll-to-offset primitive.
type Scroller interface {
	ScrollTo(offset float64)
}

// ScrollerFunc adapts a func to Scroller.
type ScrollerFunc func(offset float64)

// ScrollTo calls f(offset).
func (f ScrollerFunc) ScrollTo(offset float64) { f(offset) }

// Navigator performs programmatic jumps between gallery segments.
type Navigator struct {
	layout   Layout
	scroller Scroller
}

// NewNavigator returns a Navigator that scrolls through s.
func NewNavigator(l Layout, s Scroller) *Navigator {
	return &Navigator{layout: l, scroller: s}
}

// SetLayout replaces the layout, e.g. after a mode switch.
func (n *Navigator) SetLayout(l Layout) {
	n.layout = l
}

// Target returns the page offset for segment without scrolling.
func (n *Navigator) Target(segment int, viewportHeight, containerTop float64) (float64, error) {
	last := n.layout.Projects - 1
	if n.layout.ClosingGrid {
		last = n.layout.Projects
	}
	if segment < 0 || segment > last {
		return 0, fmt.Errorf("jump to %d of %d: %w", segment, last+1, ErrSegmentOutOfRange)
	}
	return containerTop + JumpOffset(segment, viewportHeight), nil
}

// Jump scrolls the host to segment's settle point.
func (n *Navigator) Jump(segment int, viewportHeight, containerTop float64) (float64, error) {
	offset, err := n.Target(segment, viewportHeight, containerTop)
	if err != nil {
		return 0, err
	}
	if n.scroller != nil {
		n.scroller.ScrollTo(offset)
	}
	return offset, nil
}
