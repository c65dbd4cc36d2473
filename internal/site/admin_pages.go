package site

import (
	"strconv"

	"github.com/Zachkp/portfolio/internal/store"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func loginPage(errMsg string) g.Node {
	return document("Admin Login",
		Main(Class("admin admin-login"),
			H1(g.Text("Admin Login")),
			g.If(errMsg != "", P(Class("admin-error"), Role("alert"), g.Text(errMsg))),
			Form(Method("post"), Action("/admin/login"),
				Label(For("username"), g.Text("Username")),
				Input(ID("username"), Name("username"), Type("text"), Required()),
				Label(For("password"), g.Text("Password")),
				Input(ID("password"), Name("password"), Type("password"), Required()),
				Button(Type("submit"), g.Text("Sign in")),
			),
		),
	)
}

func adminErrorPage(msg string) g.Node {
	return document("Admin Error",
		Main(Class("admin"),
			H1(g.Text("Something went wrong")),
			P(Class("admin-error"), g.Text(msg)),
			A(Href("/admin/dashboard"), g.Text("Try again")),
		),
	)
}

func dashboardPage(stats *store.Stats) g.Node {
	card := func(label string, v int64) g.Node {
		return Div(Class("stat-card"),
			Span(Class("stat-value"), g.Text(strconv.FormatInt(v, 10))),
			Span(Class("stat-label"), g.Text(label)),
		)
	}
	return document("Admin Dashboard",
		Main(Class("admin admin-dashboard"),
			Header(
				H1(g.Text("Dashboard")),
				A(Href("/admin/export/stats"), g.Text("Export")),
				A(Href("/admin/logout"), g.Text("Log out")),
			),
			Div(Class("stat-cards"),
				card("Total visits", stats.TotalVisitors),
				card("Unique visitors", stats.UniqueVisitors),
				card("Today", stats.VisitorsToday),
				card("This week", stats.VisitorsThisWeek),
			),
			H2(g.Text("Top pages")),
			Table(
				THead(Tr(Th(g.Text("Path")), Th(g.Text("Visits")))),
				TBody(g.Map(stats.TopPaths, func(pc store.PathCount) g.Node {
					return Tr(Td(g.Text(pc.Path)), Td(g.Text(strconv.FormatInt(pc.Visits, 10))))
				})),
			),
			H2(g.Text("Recent visitors")),
			Table(
				THead(Tr(Th(g.Text("Visitor")), Th(g.Text("Path")), Th(g.Text("User agent")), Th(g.Text("Time")))),
				TBody(g.Map(stats.RecentVisitors, func(v store.Visit) g.Node {
					return Tr(
						Td(Class("mono"), g.Text(v.HashedIP)),
						Td(g.Text(v.Path)),
						Td(g.Text(v.UserAgent)),
						Td(g.Text(v.At.Format("2006-01-02 15:04:05"))),
					)
				})),
			),
			Form(Method("post"), Action("/admin/privacy/prune"),
				g.Attr("hx-post", "/admin/privacy/prune"),
				g.Attr("hx-swap", "none"),
				Button(Type("submit"), g.Text("Remove expired visit records")),
			),
		),
	)
}
