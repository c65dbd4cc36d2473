// Package preview drives the gallery engine from a terminal. Key and wheel
// events scroll a virtual page, a frame ticker advances the spring, and the
// derived frame is drawn as text.
package preview

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	// One terminal cell stands in for this many CSS pixels.
	cellWidthPx  = 10
	cellHeightPx = 16

	lineRows      = 3
	frameInterval = 16 * time.Millisecond // ~60 FPS
)

// Preview owns the virtual page. The page is one viewport of lead-in, the
// gallery container, then one viewport of tail.
type Preview struct {
	screen   tcell.Screen
	projects []content.Project
	source   *scroll.Source
	stage    *scroll.Stage
	logger   *zap.Logger

	cols, rows int
	scrollY    float64
	status     string
}

// New binds a preview to an initialized screen.
func New(screen tcell.Screen, projects []content.Project, spring scroll.SpringConfig, breakpoint int, logger *zap.Logger) *Preview {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Preview{
		screen:   screen,
		projects: projects,
		source:   scroll.NewSource(spring),
		logger:   logger,
	}
	p.cols, p.rows = screen.Size()
	p.stage = scroll.NewStage(p.source, len(projects), p.viewportWidth(), breakpoint,
		scroll.ScrollerFunc(p.scrollTo))
	p.stage.Grid().SetExtent(float64(len(projects)), float64(p.gridRows()))
	p.observe()
	return p
}

func (p *Preview) viewportWidth() float64  { return float64(p.cols * cellWidthPx) }
func (p *Preview) viewportHeight() float64 { return float64(p.rows * cellHeightPx) }

// containerTop is where the gallery starts on the virtual page.
func (p *Preview) containerTop() float64 { return p.viewportHeight() }

func (p *Preview) maxScroll() float64 {
	return p.containerTop() + p.stage.Layout().ContainerHeight(p.viewportHeight())
}

// gridRows is how many grid list entries fit between the grid heading
// and the indicator row.
func (p *Preview) gridRows() int {
	if p.rows < 7 {
		return 1
	}
	return p.rows - 6
}

func (p *Preview) observe() {
	p.source.Observe(scroll.Geometry{
		ScrollY:         p.scrollY,
		ContainerTop:    p.containerTop(),
		ContainerHeight: p.stage.Layout().ContainerHeight(p.viewportHeight()),
		ViewportHeight:  p.viewportHeight(),
		ViewportWidth:   p.viewportWidth(),
	})
}

func (p *Preview) scrollTo(offset float64) {
	p.scrollY = math.Max(0, math.Min(offset, p.maxScroll()))
	p.observe()
}

func (p *Preview) scrollBy(delta float64) {
	p.scrollTo(p.scrollY + delta)
}

// ScrollY is the virtual page offset in pixels.
func (p *Preview) ScrollY() float64 { return p.scrollY }

// Frame is the latest derived gallery frame.
func (p *Preview) Frame() scroll.Frame { return p.stage.Frame() }

// Mode is the current layout mode.
func (p *Preview) Mode() scroll.Mode { return p.stage.Mode() }

// Close releases the engine's subscriptions.
func (p *Preview) Close() { p.stage.Close() }

// Step advances the spring one frame and redraws.
func (p *Preview) Step() {
	p.source.Tick()
	p.draw()
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.handleKey(ev)
	case *tcell.EventMouse:
		switch ev.Buttons() {
		case tcell.WheelUp:
			p.scrollBy(-lineRows * cellHeightPx)
		case tcell.WheelDown:
			p.scrollBy(lineRows * cellHeightPx)
		}
	case *tcell.EventResize:
		p.resize()
	}
	return true
}

func (p *Preview) handleKey(ev *tcell.EventKey) bool {
	page := p.viewportHeight() * 0.9
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		p.scrollBy(-lineRows * cellHeightPx)
	case tcell.KeyDown:
		p.scrollBy(lineRows * cellHeightPx)
	case tcell.KeyPgUp:
		p.scrollBy(-page)
	case tcell.KeyPgDn:
		p.scrollBy(page)
	case tcell.KeyHome:
		p.scrollTo(0)
	case tcell.KeyEnd:
		p.scrollTo(p.maxScroll())
	case tcell.KeyRune:
		return p.handleRune(ev.Rune())
	}
	return true
}

func (p *Preview) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r >= '1' && r <= '9':
		p.jump(int(r - '1'))
	case r == 'g':
		p.jump(len(p.projects))
	case r == 'j' && p.gridVisible():
		p.stage.Grid().ScrollBy(1)
	case r == 'k' && p.gridVisible():
		p.stage.Grid().ScrollBy(-1)
	}
	return true
}

func (p *Preview) jump(segment int) {
	if _, err := p.stage.Jump(segment, p.viewportHeight(), p.containerTop()); err != nil {
		p.status = err.Error()
		p.logger.Debug("jump rejected", zap.Int("segment", segment), zap.Error(err))
		return
	}
	p.status = ""
}

func (p *Preview) gridVisible() bool {
	g := p.stage.Frame().Grid
	return g != nil && g.Interactive
}

func (p *Preview) resize() {
	p.cols, p.rows = p.screen.Size()
	if p.stage.Resize(p.viewportWidth()) {
		p.logger.Debug("layout mode changed", zap.Stringer("mode", p.stage.Mode()))
	}
	p.stage.Grid().SetExtent(float64(len(p.projects)), float64(p.gridRows()))
	p.scrollTo(p.scrollY)
	p.screen.Sync()
}

// Run polls events and ticks frames until the user quits or ctx ends.
func (p *Preview) Run(ctx context.Context) error {
	p.screen.EnableMouse()
	defer p.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	p.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !p.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			p.Step()
		}
	}
}

func (p *Preview) statusLine() string {
	f := p.stage.Frame()
	focus := "none"
	switch {
	case f.Focused >= 0 && f.Focused < len(p.projects):
		focus = fmt.Sprintf("%d/%d", f.Focused+1, len(p.projects))
	case f.Focused == len(p.projects):
		focus = "grid"
	}
	return fmt.Sprintf(" progress %.3f  focus %s  %s", f.Progress, focus, f.Mode)
}
