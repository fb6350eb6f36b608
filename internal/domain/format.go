package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLanguageColor is used for unknown or missing languages.
const DefaultLanguageColor = "#8b8b8b"

var eventLabels = map[string]string{
	"PushEvent":              "📤 Push",
	"CreateEvent":            "🆕 Create",
	"PullRequestEvent":       "🔀 Pull Request",
	"IssuesEvent":            "🐛 Issue",
	"WatchEvent":             "⭐ Star",
	"ForkEvent":              "🍴 Fork",
	"DeleteEvent":            "🗑️ Delete",
	"IssueCommentEvent":      "💬 Comment",
	"PullRequestReviewEvent": "👀 Review",
}

var languageColors = map[string]string{
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Java":       "#b07219",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"PHP":        "#4F5D95",
}

// id-ID abbreviated month names.
var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// EventLabel returns the human label for a GitHub event type.
// Unknown types get a generic label built from the type with its "Event" suffix removed.
func EventLabel(eventType string) string {
	if label, ok := eventLabels[eventType]; ok {
		return label
	}
	return "📌 " + strings.TrimSuffix(eventType, "Event")
}

// LanguageColor returns the display color for a repository language.
func LanguageColor(lang string) string {
	if c, ok := languageColors[lang]; ok {
		return c
	}
	return DefaultLanguageColor
}

// FormatDate renders t as "2 Jan 2006" with Indonesian month abbreviations, in loc.
// A nil loc means UTC.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// ShortRepoName returns the part of "owner/name" after the slash.
func ShortRepoName(fullName string) string {
	if _, name, ok := strings.Cut(fullName, "/"); ok {
		return name
	}
	return fullName
}
