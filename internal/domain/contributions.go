package domain

import (
	"time"

	"github.com/montanaflynn/stats"
)

// ContributionWeeks is the span of the contribution graph.
const ContributionWeeks = 16

// ContributionDay is one cell of the contribution graph.
type ContributionDay struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Weekday int    `json:"weekday"`
}

// ContributionWeek holds up to seven days, Sunday first.
type ContributionWeek []ContributionDay

// ContributionGraph is derived from the public events of a snapshot.
type ContributionGraph struct {
	Weeks     []ContributionWeek `json:"weeks"`
	Total     int                `json:"total"`
	BusiestOn string             `json:"busiest_on,omitempty"`
}

// BuildContributionGraph counts events per day over the last ContributionWeeks weeks
// ending at now. The first week starts on a Sunday and the last one may be partial.
func BuildContributionGraph(events []ActivityEvent, now time.Time, loc *time.Location) ContributionGraph {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	perDay := make(map[string]int, len(events))
	for _, e := range events {
		perDay[e.CreatedAt.In(loc).Format(time.DateOnly)]++
	}

	start := today.AddDate(0, 0, -(ContributionWeeks-1)*7-int(today.Weekday()))

	var (
		weeks   []ContributionWeek
		current ContributionWeek
		counts  stats.Float64Data
	)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		day := ContributionDay{Date: key, Count: perDay[key], Weekday: int(d.Weekday())}
		current = append(current, day)
		counts = append(counts, float64(day.Count))
		if d.Weekday() == time.Saturday {
			weeks = append(weeks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		weeks = append(weeks, current)
	}

	graph := ContributionGraph{Weeks: weeks}
	if total, err := stats.Sum(counts); err == nil {
		graph.Total = int(total)
	}
	if peak, err := stats.Max(counts); err == nil && peak > 0 {
		for _, w := range weeks {
			for _, day := range w {
				if float64(day.Count) == peak && graph.BusiestOn == "" {
					graph.BusiestOn = day.Date
				}
			}
		}
	}
	return graph
}

// ContributionColor maps a daily count to its graph cell color.
func ContributionColor(count int) string {
	switch {
	case count <= 0:
		return "rgba(255, 255, 255, 0.04)"
	case count <= 2:
		return "rgba(102, 126, 234, 0.3)"
	case count <= 5:
		return "rgba(102, 126, 234, 0.5)"
	case count <= 9:
		return "rgba(102, 126, 234, 0.7)"
	default:
		return "rgba(102, 126, 234, 0.95)"
	}
}
