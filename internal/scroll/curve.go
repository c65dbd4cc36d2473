package scroll

import (
	"fmt"
	"math"
	"sort"
)

// Keyframes is a piecewise-linear mapping through (In[i], Out[i]) control
// points. In must be non-decreasing. Inputs outside the first or last control
// point are clamped to the boundary outputs, so At is defined for every
// float64 including infinities.
type Keyframes struct {
	In  []float64
	Out []float64
}

// At evaluates the mapping at x. NaN maps to the first output.
func (k Keyframes) At(x float64) float64 {
	n := len(k.In)
	if n == 0 || len(k.Out) != n {
		return 0
	}
	if math.IsNaN(x) || x <= k.In[0] {
		return k.Out[0]
	}
	if x >= k.In[n-1] {
		return k.Out[n-1]
	}
	// First control point strictly greater than x; 1 <= j <= n-1.
	j := sort.Search(n, func(i int) bool { return k.In[i] > x })
	x0, x1 := k.In[j-1], k.In[j]
	y0, y1 := k.Out[j-1], k.Out[j]
	if x1 == x0 {
		return y1
	}
	return lerp(y0, y1, (x-x0)/(x1-x0))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

var (
	curveIn      = []float64{-0.6, 0, 0.6, 1}
	lastCurveIn  = []float64{-0.6, 0, 0.8, 1.2}
	clipCurve    = Keyframes{In: []float64{-0.6, 0, 0.6}, Out: []float64{0, 150, 150}}
	scaleCurve   = Keyframes{In: curveIn, Out: []float64{0.8, 1, 0.95, 1.1}}
	rotateCurve  = Keyframes{In: curveIn, Out: []float64{-10, 0, -2, 0}}
	fadeCurve    = Keyframes{In: curveIn, Out: []float64{0, 1, 1, 0}}
	lastFade     = Keyframes{In: lastCurveIn, Out: []float64{0, 1, 1, 0}}
	titleXCurve  = Keyframes{In: curveIn, Out: []float64{-50, 0, 0, -50}}
	descYCurve   = Keyframes{In: curveIn, Out: []float64{50, 0, 0, 50}}
	parallaxEdge = Keyframes{In: []float64{-0.6, 1}, Out: []float64{-10, 10}}
)

const (
	interactiveFrom  = -0.2
	interactiveTo    = 0.8
	desktopImageZoom = 1.2
)

// AnimationState is the visual configuration of one project. Percentages
// are plain numbers (150 means "150%"); offsets are pixels unless noted.
type AnimationState struct {
	Opacity      float64 `json:"opacity"`
	Scale        float64 `json:"scale"`
	Rotation     float64 `json:"rotation"`
	ClipRadius   float64 `json:"clip_radius"`
	Clipped      bool    `json:"clipped"`
	TitleOffsetX float64 `json:"title_offset_x"`
	TitleOpacity float64 `json:"title_opacity"`
	DescOffsetY  float64 `json:"desc_offset_y"`
	DescOpacity  float64 `json:"desc_opacity"`
	// BackgroundOffsetX is a percentage of the image width.
	BackgroundOffsetX float64 `json:"background_offset_x"`
	ImageScale        float64 `json:"image_scale"`
}

// ProjectState maps a project's active value to its animation state. The
// last project fades out later so it overlaps the closing grid's fade-in.
// Mobile keeps the opacity curve and drops every transform.
func ProjectState(activeVal float64, isLast bool, mode Mode) AnimationState {
	opacity := fadeCurve.At(activeVal)
	if isLast {
		opacity = lastFade.At(activeVal)
	}
	s := AnimationState{
		Opacity:      opacity,
		TitleOpacity: fadeCurve.At(activeVal),
		DescOpacity:  fadeCurve.At(activeVal),
	}
	if mode == Mobile {
		s.Scale = 1
		s.ImageScale = 1
		return s
	}
	s.Scale = scaleCurve.At(activeVal)
	s.Rotation = rotateCurve.At(activeVal)
	s.ClipRadius = clipCurve.At(activeVal)
	s.Clipped = true
	s.TitleOffsetX = titleXCurve.At(activeVal)
	s.DescOffsetY = descYCurve.At(activeVal)
	s.BackgroundOffsetX = parallaxEdge.At(activeVal)
	s.ImageScale = desktopImageZoom
	return s
}

// Interactive reports whether a project with this active value accepts
// pointer input.
func Interactive(activeVal float64) bool {
	return activeVal >= interactiveFrom && activeVal <= interactiveTo
}

// ClipPath renders the iris reveal as a CSS clip-path value.
func (s AnimationState) ClipPath() string {
	if !s.Clipped {
		return "none"
	}
	return fmt.Sprintf("circle(%s%% at 50%% 50%%)", formatNum(s.ClipRadius))
}

// Transform renders scale and rotation as a CSS transform value.
func (s AnimationState) Transform() string {
	return fmt.Sprintf("scale(%s) rotate(%sdeg)", formatNum(s.Scale), formatNum(s.Rotation))
}

// TitleTransform renders the title's horizontal offset.
func (s AnimationState) TitleTransform() string {
	return fmt.Sprintf("translateX(%spx)", formatNum(s.TitleOffsetX))
}

// DescTransform renders the description's vertical offset.
func (s AnimationState) DescTransform() string {
	return fmt.Sprintf("translateY(%spx)", formatNum(s.DescOffsetY))
}

// ImageTransform renders the background parallax and zoom.
func (s AnimationState) ImageTransform() string {
	return fmt.Sprintf("translateX(%s%%) scale(%s)", formatNum(s.BackgroundOffsetX), formatNum(s.ImageScale))
}

// PointerEvents is the CSS pointer-events value for the given active value.
func PointerEvents(activeVal float64) string {
	if Interactive(activeVal) {
		return "auto"
	}
	return "none"
}

func formatNum(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.4g", v)
}
