package scroll

// ProjectFrame is one project's derived state at a given progress.
type ProjectFrame struct {
	Index       int            `json:"index"`
	ActiveValue float64        `json:"active_value"`
	Interactive bool           `json:"interactive"`
	State       AnimationState `json:"state"`
}

// Frame is every derived value of the gallery at one progress sample.
type Frame struct {
	Progress      float64        `json:"progress"`
	Mode          Mode           `json:"mode"`
	TotalSegments int            `json:"total_segments"`
	Focused       int            `json:"focused"`
	Intro         IntroView      `json:"intro"`
	Projects      []ProjectFrame `json:"projects"`
	Grid          *GridView      `json:"grid,omitempty"`
	Indicators    []Indicator    `json:"indicators"`
}

// Compute derives the frame for progress. Progress is clamped to [0,1].
func Compute(l Layout, mode Mode, progress float64) Frame {
	progress = clamp01(progress)
	f := Frame{
		Progress:      progress,
		Mode:          mode,
		TotalSegments: l.TotalSegments(),
		Focused:       l.Focused(progress),
		Intro:         IntroState(l, progress),
		Projects:      make([]ProjectFrame, 0, l.Projects),
		Indicators:    Indicators(l, progress),
	}
	for i := 0; i < l.Projects; i++ {
		av := l.ActiveValue(i, progress)
		f.Projects = append(f.Projects, ProjectFrame{
			Index:       i,
			ActiveValue: av,
			Interactive: Interactive(av),
			State:       ProjectState(av, i == l.Projects-1, mode),
		})
	}
	if l.ClosingGrid {
		g := GridState(l, progress)
		f.Grid = &g
	}
	return f
}

// Visible returns the indices of projects whose opacity exceeds threshold.
func (f Frame) Visible(threshold float64) []int {
	var out []int
	for _, p := range f.Projects {
		if p.State.Opacity > threshold {
			out = append(out, p.Index)
		}
	}
	return out
}
