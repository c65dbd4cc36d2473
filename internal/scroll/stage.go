package scroll

// Stage binds a progress Source to a gallery of projects. It subscribes
// once on creation, keeps the latest Frame current on every progress
// change, and releases its subscriptions on Close.
type Stage struct {
	source     *Source
	projects   int
	breakpoint int
	mode       Mode
	layout     Layout
	grid       *ClosingGrid
	nav        *Navigator
	frame      Frame
	frames     int

	unsubscribe func()
}

// NewStage returns a stage for n projects at the given viewport width.
// scroller may be nil when jumps only need their target offset.
func NewStage(src *Source, n int, width float64, breakpoint int, scroller Scroller) *Stage {
	mode := ModeFor(width, breakpoint)
	l := NewLayout(n, mode)
	s := &Stage{
		source:     src,
		projects:   n,
		breakpoint: breakpoint,
		mode:       mode,
		layout:     l,
		grid:       NewClosingGrid(l),
		nav:        NewNavigator(l, scroller),
	}
	if l.ClosingGrid {
		s.grid.Attach(src.Progress())
	}
	s.unsubscribe = src.Progress().Subscribe(s.recompute)
	s.recompute(src.Progress().Get())
	return s
}

func (s *Stage) recompute(progress float64) {
	s.frame = Compute(s.layout, s.mode, progress)
	s.frames++
}

// Resize re-derives the layout mode for a new viewport width. It reports
// whether the mode changed. Progress is left untouched.
func (s *Stage) Resize(width float64) bool {
	mode := ModeFor(width, s.breakpoint)
	if mode == s.mode {
		return false
	}
	s.mode = mode
	s.layout = NewLayout(s.projects, mode)
	s.nav.SetLayout(s.layout)
	s.grid.SetLayout(s.layout)
	if s.layout.ClosingGrid {
		s.grid.Attach(s.source.Progress())
	} else {
		s.grid.Detach()
	}
	s.recompute(s.source.Progress().Get())
	return true
}

// Jump scrolls the host to segment and returns the target page offset.
func (s *Stage) Jump(segment int, viewportHeight, containerTop float64) (float64, error) {
	return s.nav.Jump(segment, viewportHeight, containerTop)
}

// Frame returns the frame for the latest progress.
func (s *Stage) Frame() Frame { return s.frame }

// Layout returns the current layout.
func (s *Stage) Layout() Layout { return s.layout }

// Mode returns the current layout mode.
func (s *Stage) Mode() Mode { return s.mode }

// Grid returns the closing grid.
func (s *Stage) Grid() *ClosingGrid { return s.grid }

// Recomputed returns how many frames have been derived.
func (s *Stage) Recomputed() int { return s.frames }

// Close releases the stage's progress subscriptions.
func (s *Stage) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.grid.Detach()
}
