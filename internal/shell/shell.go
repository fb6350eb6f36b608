// Package shell renders the single portfolio page and the GitHub widget section.
package shell

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"slices"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/naka-gawa/portfolio/internal/content"
	"github.com/naka-gawa/portfolio/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Section identifiers targeted by the navigation.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionGitHub   = "github"
	SectionContact  = "contact"
)

var navItems = []struct{ Label, Target string }{
	{"Home", SectionHero},
	{"About", SectionAbout},
	{"Projects", SectionProjects},
	{"GitHub", SectionGitHub},
	{"Contact", SectionContact},
}

// Options configure a Shell.
type Options struct {
	WidgetEnabled bool
	// Location is used for dates; nil means UTC.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// Shell renders the page from static content.
type Shell struct {
	content *content.Content
	opts    Options
	tmpl    *template.Template
}

type navLink struct {
	Label  string
	Target string
	Href   string
}

type pageView struct {
	Content *content.Content
	Nav     []navLink
	Widget  *widgetView
}

type widgetView struct {
	Status  string
	Handle  string
	Loading bool
	Failed  *domain.Failed
	Ready   *domain.Ready
	Graph   *domain.ContributionGraph
}

// New parses the embedded templates.
func New(c *content.Content, opts Options) (*Shell, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	policy := bluemonday.StrictPolicy()
	funcs := template.FuncMap{
		"formatDate": func(t time.Time) string { return domain.FormatDate(t, opts.Location) },
		"eventLabel": domain.EventLabel,
		"shortRepo":  domain.ShortRepoName,
		// Colors come from fixed tables, never from API data.
		"langColor":    func(lang string) template.CSS { return template.CSS(domain.LanguageColor(lang)) },
		"contribColor": func(n int) template.CSS { return template.CSS(domain.ContributionColor(n)) },
		// Strict policy output is plain escaped text.
		"clean": func(s string) template.HTML { return template.HTML(policy.Sanitize(s)) },
	}
	tmpl, err := template.New("shell").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Shell{content: c, opts: opts, tmpl: tmpl}, nil
}

// Sections lists the identifiers present in the rendered page, in document order.
func (s *Shell) Sections() []string {
	ids := []string{SectionHero, SectionAbout, SectionProjects}
	if s.opts.WidgetEnabled {
		ids = append(ids, SectionGitHub)
	}
	return append(ids, SectionContact)
}

// ScrollTo resolves a navigation target. It returns the in-page anchor when the
// section exists and ok=false otherwise; a missing section is not an error.
func (s *Shell) ScrollTo(sectionID string) (anchor string, ok bool) {
	if !slices.Contains(s.Sections(), sectionID) {
		return "", false
	}
	return "#" + sectionID, true
}

// Handle returns the GitHub account shown by the widget.
func (s *Shell) Handle() string { return s.content.GitHub.Handle }

// RenderPage writes the whole page. The widget, when enabled, is rendered loading.
func (s *Shell) RenderPage(w io.Writer) error {
	view := pageView{Content: s.content}
	for _, item := range navItems {
		// Targets missing from the page get no entry.
		href, ok := s.ScrollTo(item.Target)
		if !ok {
			continue
		}
		view.Nav = append(view.Nav, navLink{Label: item.Label, Target: item.Target, Href: href})
	}
	if s.opts.WidgetEnabled {
		view.Widget = s.newWidgetView(domain.Loading{})
	}
	return s.tmpl.ExecuteTemplate(w, "page", view)
}

// RenderWidget writes only the GitHub section for state.
func (s *Shell) RenderWidget(w io.Writer, state domain.WidgetState) error {
	return s.tmpl.ExecuteTemplate(w, "widget", s.newWidgetView(state))
}

func (s *Shell) newWidgetView(state domain.WidgetState) *widgetView {
	v := &widgetView{Status: state.Status(), Handle: s.content.GitHub.Handle}
	switch st := state.(type) {
	case domain.Loading:
		v.Loading = true
	case domain.Failed:
		v.Failed = &st
	case domain.Ready:
		v.Ready = &st
		graph := domain.BuildContributionGraph(st.Events, s.opts.Now(), s.opts.Location)
		v.Graph = &graph
	}
	return v
}

// Static returns the embedded stylesheet, script and images.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
