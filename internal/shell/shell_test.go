package shell

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/naka-gawa/portfolio/internal/content"
	"github.com/naka-gawa/portfolio/internal/domain"
)

func newTestShell(t *testing.T, widget bool) *Shell {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	s, err := New(c, Options{
		WidgetEnabled: widget,
		Now:           func() time.Time { return time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return s
}

func render(t *testing.T, fn func(*bytes.Buffer) error) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func getElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := getElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAllByClass(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func TestShell_RenderPage(t *testing.T) {
	testCases := []struct {
		name         string
		widget       bool
		expectGitHub bool
	}{
		{name: "widget disabled", widget: false, expectGitHub: false},
		{name: "widget enabled renders loading section", widget: true, expectGitHub: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShell(t, tc.widget)
			doc := render(t, func(b *bytes.Buffer) error { return s.RenderPage(b) })

			for _, id := range []string{SectionHero, SectionAbout, SectionProjects, SectionContact} {
				assert.NotNil(t, getElementByID(doc, id), "section %s", id)
			}
			github := getElementByID(doc, SectionGitHub)
			if !tc.expectGitHub {
				assert.Nil(t, github)
				return
			}
			require.NotNil(t, github)
			assert.Equal(t, "loading", attr(github, "data-state"))
			assert.Contains(t, text(github), "Memuat data GitHub...")
		})
	}
}

func TestShell_RenderPage_StaticContent(t *testing.T) {
	s := newTestShell(t, false)
	doc := render(t, func(b *bytes.Buffer) error { return s.RenderPage(b) })

	assert.Contains(t, text(getElementByID(doc, SectionHero)), "NelsFikar")
	assert.Len(t, findAllByClass(doc, "project-card"), 3)
	assert.Len(t, findAllByClass(doc, "skill-tag"), 6)

	form := findAllByClass(doc, "contact-form")
	require.Len(t, form, 1)
	assert.Equal(t, "/contact", attr(form[0], "action"))
}

func TestShell_ScrollTo(t *testing.T) {
	disabled := newTestShell(t, false)
	enabled := newTestShell(t, true)

	anchor, ok := disabled.ScrollTo(SectionAbout)
	assert.True(t, ok)
	assert.Equal(t, "#about", anchor)

	anchor, ok = disabled.ScrollTo(SectionGitHub)
	assert.False(t, ok)
	assert.Empty(t, anchor)

	anchor, ok = disabled.ScrollTo("does-not-exist")
	assert.False(t, ok)
	assert.Empty(t, anchor)

	anchor, ok = enabled.ScrollTo(SectionGitHub)
	assert.True(t, ok)
	assert.Equal(t, "#github", anchor)
}

func TestShell_NavTargetsExist(t *testing.T) {
	testCases := []struct {
		name     string
		widget   bool
		expected []string
	}{
		{
			name:     "widget disabled - no GitHub entry",
			widget:   false,
			expected: []string{SectionHero, SectionAbout, SectionProjects, SectionContact},
		},
		{
			name:     "widget enabled",
			widget:   true,
			expected: []string{SectionHero, SectionAbout, SectionProjects, SectionGitHub, SectionContact},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShell(t, tc.widget)
			doc := render(t, func(b *bytes.Buffer) error { return s.RenderPage(b) })

			var targets []string
			for _, link := range findAllByClass(doc, "nav-link") {
				target := attr(link, "data-scroll")
				targets = append(targets, target)
				assert.Equal(t, "a", link.Data)
				assert.NotNil(t, getElementByID(doc, target), "link to %s must resolve", target)
				assert.Equal(t, "#"+target, attr(link, "href"))
			}
			assert.Equal(t, tc.expected, targets)
		})
	}
}

func readySnapshot() domain.Ready {
	snap := domain.Snapshot{
		Profile: domain.Profile{
			Login:       "nelsfikar-dotcom",
			Bio:         "<b>Gopher</b> & friends",
			PublicRepos: 3,
			Followers:   7,
			Following:   2,
			CreatedAt:   time.Date(2021, time.May, 5, 0, 0, 0, 0, time.UTC),
		},
		Repos: []domain.Repository{
			{ID: 3, Name: "gamma", Language: "Go"},
			{ID: 1, Name: "alpha", Language: "Elixir", Description: "first"},
			{ID: 2, Name: "beta"},
		},
	}
	for i := 0; i < 10; i++ {
		snap.Events = append(snap.Events, domain.ActivityEvent{
			ID:        string(rune('a' + i)),
			Type:      "PushEvent",
			RepoName:  "nelsfikar-dotcom/repo-" + string(rune('a'+i)),
			CreatedAt: time.Date(2024, time.March, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return domain.Ready{Snapshot: snap}
}

func TestShell_RenderWidget_Ready(t *testing.T) {
	s := newTestShell(t, true)
	doc := render(t, func(b *bytes.Buffer) error { return s.RenderWidget(b, readySnapshot()) })

	section := getElementByID(doc, SectionGitHub)
	require.NotNil(t, section)
	assert.Equal(t, "ready", attr(section, "data-state"))

	profile := findAllByClass(doc, "github-profile")
	require.Len(t, profile, 1)
	assert.Contains(t, text(profile[0]), "nelsfikar-dotcom")
	assert.Contains(t, text(profile[0]), "Bergabung 5 Mei 2021")

	bio := findAllByClass(doc, "github-bio")
	require.Len(t, bio, 1)
	assert.Equal(t, "Gopher & friends", text(bio[0]))

	var names []string
	for _, n := range findAllByClass(doc, "repo-name") {
		names = append(names, text(n))
	}
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, names)

	dots := findAllByClass(doc, "lang-dot")
	require.Len(t, dots, 2)
	assert.Contains(t, attr(dots[0], "style"), "#00ADD8")
	assert.Contains(t, attr(dots[1], "style"), domain.DefaultLanguageColor)

	events := findAllByClass(doc, "event-item")
	require.Len(t, events, domain.MaxDisplayed)
	repos := findAllByClass(doc, "event-repo")
	assert.Equal(t, "repo-a", text(repos[0]))
	assert.Equal(t, "repo-f", text(repos[5]))
	assert.Equal(t, "📤 Push", text(findAllByClass(doc, "event-type")[0]))

	summary := findAllByClass(doc, "contrib-summary")
	require.Len(t, summary, 1)
	assert.Equal(t, "10 kontribusi dalam 16 minggu terakhir", text(summary[0]))
	assert.Empty(t, findAllByClass(doc, "github-error"))
}

func TestShell_RenderWidget_Failed(t *testing.T) {
	testCases := []struct {
		name     string
		state    domain.Failed
		expected string
	}{
		{
			name:     "profile not found",
			state:    domain.NewFailed(domain.FetchFailure, domain.MessageFetchFailed),
			expected: "⚠️ Gagal mengambil data GitHub",
		},
		{
			name:     "transport error",
			state:    domain.NewFailed(domain.UnexpectedFailure, "Failed to fetch"),
			expected: "⚠️ Failed to fetch",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShell(t, true)
			doc := render(t, func(b *bytes.Buffer) error { return s.RenderWidget(b, tc.state) })

			errs := findAllByClass(doc, "github-error")
			require.Len(t, errs, 1)
			assert.Equal(t, tc.expected, text(errs[0]))
			assert.Empty(t, findAllByClass(doc, "github-profile"))
			assert.Empty(t, findAllByClass(doc, "repo-card"))
			assert.Empty(t, findAllByClass(doc, "event-item"))
		})
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"portfolio.css", "portfolio.js", "pikar.svg"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}
