package site

import (
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@1.9.12"

func document(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href("/static/css/styles.css")),
				Script(Src(htmxSrc), Defer()),
				Script(Src("/static/js/gallery.js"), Defer()),
			),
			Body(body...),
		),
	)
}

func indexPage(c *content.Content, gallery galleryView, now time.Time) g.Node {
	return document(c.Hero.Name+" | Portfolio",
		Main(
			heroSection(c.Hero, c.YearsOfExperience(now)),
			techSection(c.Technologies),
			experienceSection(c.Experiences),
			gallerySection(c.Projects, gallery),
			aboutSection(c),
			contactSection(c.Hero),
		),
		Footer(Class("site-footer"),
			A(Href("/privacy"), g.Text("Privacy")),
		),
	)
}

func heroSection(h content.Hero, years int) g.Node {
	return Section(ID("hero"), Class("hero"),
		g.If(h.AvatarURL != "", Img(Class("hero-avatar"), Src(h.AvatarURL), Alt(h.Name))),
		Div(Class("hero-badge"),
			Span(Class("hero-handle"), g.Text("@"+h.Handle)),
			g.If(h.Status != "", Span(Class("hero-status"), g.Text(h.Status))),
		),
		H1(g.Text(h.Name)),
		P(Class("hero-title"), g.Text(h.Title)),
		H2(Class("hero-heading"), g.Text(h.Heading)),
		P(Class("hero-subheading"), g.Text(h.Subheading)),
		g.If(years > 0, P(Class("hero-years"), g.Textf("%d+ years of experience", years))),
		A(Class("hero-cta"), Href("#contact"), g.Text(h.ContactText)),
	)
}

func techSection(techs []content.Technology) g.Node {
	if len(techs) == 0 {
		return nil
	}
	return Section(ID("tech"), Class("tech"),
		H2(g.Text("Technologies")),
		Ul(Class("tech-list"),
			g.Map(techs, func(t content.Technology) g.Node {
				return Li(Class("tech-item"),
					g.If(t.Icon != "", Img(Src(t.Icon), Alt(""), Loading("lazy"))),
					Span(g.Text(t.Name)),
				)
			}),
		),
	)
}

func experienceSection(exps []content.Experience) g.Node {
	if len(exps) == 0 {
		return nil
	}
	return Section(ID("experience"), Class("experience"),
		H2(g.Text("Experience")),
		Div(Class("timeline"),
			g.Map(exps, func(e content.Experience) g.Node {
				return Div(Class("timeline-item"), Data("id", fmt.Sprint(e.ID)),
					g.If(e.Color != "", Style("--accent: "+e.Color)),
					g.If(e.Logo != "", Img(Class("timeline-logo"), Src(e.Logo), Alt(e.Company), Loading("lazy"))),
					H3(g.Text(e.Role)),
					P(Class("timeline-company"), g.Text(e.Company)),
					P(Class("timeline-period"), g.Text(e.Period)),
					g.If(e.Location != "", P(Class("timeline-location"), g.Text(e.Location))),
					Ul(g.Map(e.Description, func(d string) g.Node { return Li(g.Text(d)) })),
					g.If(len(e.Tech) > 0, Div(Class("timeline-tech"),
						g.Map(e.Tech, func(t string) g.Node { return Span(Class("tag"), g.Text(t)) }),
					)),
				)
			}),
		),
	)
}

func aboutSection(c *content.Content) g.Node {
	return Section(ID("about"), Class("about"),
		H2(g.Text("About Me")),
		P(g.Text(c.About)),
		g.If(len(c.Education) > 0, Div(Class("education"),
			H3(g.Text("Education")),
			g.Map(c.Education, func(e content.Education) g.Node {
				return Div(Class("education-item"),
					g.If(e.Logo != "", Img(Class("education-logo"), Src(e.Logo), Alt(e.School), Loading("lazy"))),
					Strong(g.Text(e.Degree)),
					P(g.Text(e.School+" · "+e.Year)),
					g.If(e.Grade != "", P(Class("education-grade"), g.Text(e.GradeLabel+": "+e.Grade))),
					Ul(g.Map(e.Highlights, func(h string) g.Node { return Li(g.Text(h)) })),
				)
			}),
		)),
		g.If(len(c.Socials) > 0, Ul(Class("socials"),
			g.Map(c.Socials, func(s content.SocialLink) g.Node {
				return Li(A(Href(s.URL), Target("_blank"), Rel("noopener noreferrer"), g.Text(s.Name)))
			}),
		)),
	)
}

func contactSection(h content.Hero) g.Node {
	return Section(ID("contact"), Class("contact"),
		H2(g.Text(h.ContactText)),
		Form(Class("contact-form"), Method("post"), Action("/contact"),
			g.Attr("hx-post", "/contact"),
			g.Attr("hx-target", "#contact-result"),
			g.Attr("hx-swap", "innerHTML"),
			Label(For("fullName"), g.Text("Name")),
			Input(ID("fullName"), Name("fullName"), Type("text"), Required()),
			Label(For("email"), g.Text("Email")),
			Input(ID("email"), Name("email"), Type("email"), Required()),
			Label(For("message"), g.Text("Message")),
			Textarea(ID("message"), Name("message"), Required()),
			Button(Type("submit"), g.Text("Send")),
		),
		Div(ID("contact-result")),
	)
}

// contactResult is the fragment swapped in after a submission.
func contactResult(ok bool, msg string) g.Node {
	class := "contact-error"
	if ok {
		class = "contact-success"
	}
	return Div(Class(class), Role("status"), P(g.Text(msg)))
}

func privacyPage(retention time.Duration) g.Node {
	return document("Privacy Policy",
		Main(Class("privacy"),
			H1(g.Text("Privacy Policy")),
			P(g.Text("This site records page visits to understand which sections are useful. "+
				"IP addresses are never stored: each address is combined with a random value that "+
				"changes whenever the server restarts and is reduced to a short hash.")),
			P(g.Text("Browsers that send a Do Not Track header are not recorded at all.")),
			P(g.Textf("Visit records are deleted automatically after %d days.", int(retention.Hours()/24))),
			P(g.Text("Messages sent through the contact form are delivered by email and are not stored on this server.")),
			A(Href("/"), g.Text("Back to the portfolio")),
		),
	)
}
