// Package content holds the portfolio's static records. Content is loaded
// once at startup and never mutated afterwards.
package content

import (
	"strings"
	"time"
)

// Hero is the landing section.
type Hero struct {
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title" json:"title"`
	Handle      string `yaml:"handle" json:"handle"`
	Status      string `yaml:"status" json:"status"`
	AvatarURL   string `yaml:"avatar_url" json:"avatar_url"`
	Heading     string `yaml:"heading" json:"heading"`
	Subheading  string `yaml:"subheading" json:"subheading"`
	ContactText string `yaml:"contact_text" json:"contact_text"`
}

// Technology is one entry of the technology overview.
type Technology struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon" json:"icon"`
}

// Experience is one job on the timeline.
type Experience struct {
	ID          int      `yaml:"id" json:"id"`
	Role        string   `yaml:"role" json:"role"`
	Company     string   `yaml:"company" json:"company"`
	Location    string   `yaml:"location" json:"location"`
	Period      string   `yaml:"period" json:"period"`
	Logo        string   `yaml:"logo" json:"logo"`
	Description []string `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Color       string   `yaml:"color" json:"color"`
}

// Project is one entry of the scrolling gallery.
type Project struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Image       string   `yaml:"image" json:"image"`
	Repo        string   `yaml:"repo" json:"repo"`
	Live        string   `yaml:"live" json:"live"`
	Color       string   `yaml:"color" json:"color"`
}

// HasRepo reports whether the project links to a repository.
func (p Project) HasRepo() bool { return isLink(p.Repo) }

// HasLive reports whether the project links to a live demo.
func (p Project) HasLive() bool { return isLink(p.Live) }

func isLink(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "#"
}

// Education is one degree or certification.
type Education struct {
	ID         int      `yaml:"id" json:"id"`
	Degree     string   `yaml:"degree" json:"degree"`
	School     string   `yaml:"school" json:"school"`
	Year       string   `yaml:"year" json:"year"`
	Grade      string   `yaml:"grade" json:"grade"`
	GradeLabel string   `yaml:"grade_label" json:"grade_label"`
	Logo       string   `yaml:"logo" json:"logo"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

// SocialLink points at a profile elsewhere.
type SocialLink struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Content is everything the page renders.
type Content struct {
	Hero         Hero         `yaml:"hero" json:"hero"`
	About        string       `yaml:"about" json:"about"`
	Technologies []Technology `yaml:"technologies" json:"technologies"`
	Experiences  []Experience `yaml:"experiences" json:"experiences"`
	Projects     []Project    `yaml:"projects" json:"projects"`
	Education    []Education  `yaml:"education" json:"education"`
	Socials      []SocialLink `yaml:"socials" json:"socials"`
}

const periodLayout = "Jan 2006"

// CareerStart returns the earliest parseable start date among the
// experience periods ("Aug 2023 - Present" starts Aug 2023). ok is false
// when no period parses.
func (c *Content) CareerStart() (start time.Time, ok bool) {
	for _, exp := range c.Experiences {
		from, _, _ := strings.Cut(exp.Period, " - ")
		t, err := time.Parse(periodLayout, strings.TrimSpace(from))
		if err != nil {
			continue
		}
		if !ok || t.Before(start) {
			start, ok = t, true
		}
	}
	return start, ok
}

// YearsOfExperience returns whole years between CareerStart and now, or 0.
func (c *Content) YearsOfExperience(now time.Time) int {
	start, ok := c.CareerStart()
	if !ok || now.Before(start) {
		return 0
	}
	years := now.Year() - start.Year()
	if now.YearDay() < start.YearDay() {
		years--
	}
	return years
}
