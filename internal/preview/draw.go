package preview

import (
	"math"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/gdamore/tcell/v2"
)

const visibleOpacity = 0.01

// shade maps an opacity to a grey foreground.
func shade(opacity float64) tcell.Style {
	v := int32(40 + math.Max(0, math.Min(1, opacity))*215)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
}

func (p *Preview) drawText(x, y int, style tcell.Style, s string) {
	if y < 0 || y >= p.rows {
		return
	}
	for _, r := range s {
		if x >= p.cols {
			return
		}
		if x >= 0 {
			p.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (p *Preview) drawCentered(y int, style tcell.Style, s string) {
	p.drawText((p.cols-len([]rune(s)))/2, y, style, s)
}

func (p *Preview) draw() {
	p.screen.Clear()
	f := p.stage.Frame()

	p.drawText(0, 0, tcell.StyleDefault.Reverse(true), padRight(p.statusLine(), p.cols))
	if p.status != "" {
		for i, line := range wrap(p.status, p.cols-2) {
			p.drawText(1, 1+i, tcell.StyleDefault.Foreground(tcell.ColorRed), line)
		}
	}

	if f.Intro.Opacity > visibleOpacity {
		y := p.rows/3 + int(f.Intro.OffsetY/cellHeightPx)
		p.drawCentered(y, shade(f.Intro.Opacity).Bold(true), "S E L E C T E D   W O R K S")
	}

	if i, ok := dominant(f); ok {
		p.drawProject(p.projects[i], f.Projects[i])
	}

	if f.Grid != nil && f.Grid.Opacity > visibleOpacity {
		p.drawGrid(*f.Grid)
	}

	p.drawIndicators(f.Indicators)
	p.drawText(0, p.rows-1, shade(0.5), " ↑/↓ scroll  1-9 project  g grid  j/k grid list  q quit")
	p.screen.Show()
}

// dominant returns the most opaque visible project.
func dominant(f scroll.Frame) (int, bool) {
	best, bestOpacity := -1, visibleOpacity
	for _, pf := range f.Projects {
		if pf.State.Opacity > bestOpacity {
			best, bestOpacity = pf.Index, pf.State.Opacity
		}
	}
	return best, best >= 0
}

func (p *Preview) drawProject(proj content.Project, pf scroll.ProjectFrame) {
	st := pf.State
	top := p.rows / 4
	left := 4

	titleStyle := shade(st.TitleOpacity).Bold(true)
	if proj.Color != "" && st.TitleOpacity > 0.5 {
		titleStyle = titleStyle.Foreground(tcell.GetColor(proj.Color))
	}
	p.drawText(left, top, shade(st.Opacity), strings.ToUpper(proj.Category))
	p.drawText(left+int(st.TitleOffsetX/cellWidthPx), top+1, titleStyle, proj.Title)

	descTop := top + 3 + int(math.Round(st.DescOffsetY/cellHeightPx))
	for i, line := range wrap(proj.Description, p.cols-2*left) {
		p.drawText(left, descTop+i, shade(st.DescOpacity), line)
	}

	if len(proj.Tech) > 0 {
		p.drawText(left, p.rows-4, shade(st.Opacity), strings.Join(proj.Tech, " · "))
	}
	if pf.Interactive && proj.HasRepo() {
		p.drawText(left, p.rows-3, shade(st.Opacity).Underline(true), proj.Repo)
	}
}

func (p *Preview) drawGrid(gv scroll.GridView) {
	style := shade(gv.Opacity)
	top := 2 + int(gv.OffsetY/cellHeightPx)
	p.drawCentered(top, style.Bold(true), "ALL PROJECTS")

	offset := int(p.stage.Grid().Offset())
	for row := 0; row < p.gridRows(); row++ {
		i := row + offset
		if i >= len(p.projects) {
			break
		}
		proj := p.projects[i]
		p.drawText(6, top+2+row, style, "▪ "+proj.Title+"  ("+proj.Category+")")
	}
}

func (p *Preview) drawIndicators(inds []scroll.Indicator) {
	var b strings.Builder
	for _, ind := range inds {
		switch {
		case ind.Grid && ind.Active:
			b.WriteString("▣ ")
		case ind.Grid:
			b.WriteString("□ ")
		case ind.Active:
			b.WriteString("● ")
		default:
			b.WriteString("○ ")
		}
	}
	p.drawCentered(p.rows-2, tcell.StyleDefault, strings.TrimSpace(b.String()))
}

func padRight(s string, n int) string {
	if pad := n - len([]rune(s)); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	if width < 1 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(line) > 0 && len(line)+1+len(w) > width {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, w...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
