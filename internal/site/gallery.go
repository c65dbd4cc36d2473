package site

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scroll"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// galleryView is the server-rendered starting point of the gallery. The
// page is always rendered for desktop at progress 0; the browser switches
// layout once it knows its width.
type galleryView struct {
	layout     scroll.Layout
	frame      scroll.Frame
	breakpoint int
	spring     scroll.SpringConfig
}

func newGalleryView(projects int, breakpoint int, spring scroll.SpringConfig) galleryView {
	l := scroll.NewLayout(projects, scroll.Desktop)
	return galleryView{
		layout:     l,
		frame:      scroll.Compute(l, scroll.Desktop, 0),
		breakpoint: breakpoint,
		spring:     spring,
	}
}

func styles(decls ...string) g.Node {
	return Style(strings.Join(decls, "; "))
}

func gallerySection(projects []content.Project, v galleryView) g.Node {
	l := v.layout
	var grid g.Node
	if v.frame.Grid != nil {
		grid = closingGrid(projects, *v.frame.Grid)
	}
	return Section(ID("projects"), Class("gallery"),
		styles("position: relative", "height: "+num(l.ContainerHeightVH())+"vh"),
		Data("projects", strconv.Itoa(l.Projects)),
		Data("total-segments", strconv.Itoa(l.TotalSegments())),
		Data("segment-ratio", num(scroll.SegmentViewportRatio)),
		Data("breakpoint", strconv.Itoa(v.breakpoint)),
		Data("stiffness", num(v.spring.Stiffness)),
		Data("damping", num(v.spring.Damping)),
		Data("mass", num(v.spring.Mass)),
		g.Map(l.SnapPointsVH(), func(top float64) g.Node {
			return Div(Class("gallery-snap"), Aria("hidden", "true"),
				styles("position: absolute", "top: "+num(top)+"vh", "height: 1px", "scroll-snap-align: start"),
			)
		}),
		Div(Class("gallery-viewport"),
			styles("position: sticky", "top: 0", "height: 100vh", "overflow: hidden"),
			introHeader(v.frame.Intro),
			g.Map(v.frame.Projects, func(pf scroll.ProjectFrame) g.Node {
				return projectCard(projects[pf.Index], pf)
			}),
			grid,
			indicatorNav(projects, v.frame.Indicators),
		),
	)
}

func introHeader(iv scroll.IntroView) g.Node {
	return Header(Class("gallery-intro"),
		styles(
			"opacity: "+num(iv.Opacity),
			fmt.Sprintf("transform: translateY(%spx) scale(%s)", num(iv.OffsetY), num(iv.Scale)),
		),
		H2(g.Text("Selected Works")),
	)
}

func projectCard(p content.Project, pf scroll.ProjectFrame) g.Node {
	st := pf.State
	return Article(Class("project-card"),
		Data("index", strconv.Itoa(pf.Index)),
		Data("active-value", num(pf.ActiveValue)),
		g.If(!pf.Interactive, Aria("hidden", "true")),
		styles(
			"position: absolute",
			"inset: 0",
			"z-index: "+strconv.Itoa(pf.Index+1),
			"opacity: "+num(st.Opacity),
			"transform: "+st.Transform(),
			"clip-path: "+st.ClipPath(),
			"pointer-events: "+scroll.PointerEvents(pf.ActiveValue),
		),
		g.If(p.Color != "", Data("color", p.Color)),
		Div(Class("project-image"),
			styles("background-image: url('"+p.Image+"')", "transform: "+st.ImageTransform()),
		),
		Div(Class("project-body"),
			Span(Class("project-category"), g.Text(p.Category)),
			H3(Class("project-title"),
				styles("opacity: "+num(st.TitleOpacity), "transform: "+st.TitleTransform()),
				g.Text(p.Title),
			),
			P(Class("project-description"),
				styles("opacity: "+num(st.DescOpacity), "transform: "+st.DescTransform()),
				g.Text(p.Description),
			),
			Ul(Class("project-tech"), g.Map(p.Tech, func(t string) g.Node { return Li(g.Text(t)) })),
			projectLinks(p),
		),
	)
}

func projectLinks(p content.Project) g.Node {
	if !p.HasRepo() && !p.HasLive() {
		return nil
	}
	return Div(Class("project-links"),
		g.If(p.HasRepo(), A(Href(p.Repo), Target("_blank"), Rel("noopener noreferrer"), g.Text("Code"))),
		g.If(p.HasLive(), A(Href(p.Live), Target("_blank"), Rel("noopener noreferrer"), g.Text("Live"))),
	)
}

func closingGrid(projects []content.Project, gv scroll.GridView) g.Node {
	pointer := "none"
	if gv.Interactive {
		pointer = "auto"
	}
	return Div(ID("project-grid"), Class("gallery-grid"),
		styles(
			"position: absolute",
			"inset: 0",
			"overflow-y: auto",
			"opacity: "+num(gv.Opacity),
			fmt.Sprintf("transform: translateY(%spx) scale(%s)", num(gv.OffsetY), num(gv.Scale)),
			"z-index: "+strconv.Itoa(gv.ZIndex),
			"pointer-events: "+pointer,
		),
		H2(g.Text("All Projects")),
		Div(Class("grid-tiles"),
			g.Map(projects, func(p content.Project) g.Node {
				return Div(Class("grid-tile"),
					g.If(p.Image != "", Img(Src(p.Image), Alt(p.Title), Loading("lazy"))),
					H3(g.Text(p.Title)),
					Span(Class("project-category"), g.Text(p.Category)),
					projectLinks(p),
				)
			}),
		),
	)
}

func indicatorNav(projects []content.Project, inds []scroll.Indicator) g.Node {
	return Nav(Class("gallery-nav"), Aria("label", "Project navigation"),
		g.Map(inds, func(ind scroll.Indicator) g.Node {
			label := "All projects"
			if !ind.Grid && ind.Segment < len(projects) {
				label = projects[ind.Segment].Title
			}
			return Button(Type("button"), Class("gallery-dot"),
				Data("segment", strconv.Itoa(ind.Segment)),
				Aria("label", "Go to "+label),
				g.If(ind.Active, Aria("current", "true")),
				styles("opacity: "+num(ind.Opacity), "transform: scale("+num(ind.Scale)+")"),
			)
		}),
	)
}
