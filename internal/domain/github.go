// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Profile holds the public profile of the configured GitHub account.
type Profile struct {
	Login       string    `json:"login"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Name        string    `json:"name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the profile name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// Repository is a single entry of the recently updated repository list.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActivityEvent is a public event performed by the account.
// Type is the raw GitHub event type, e.g. "PushEvent".
type ActivityEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	RepoName  string    `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the result of one successful widget load.
type Snapshot struct {
	Profile Profile         `json:"profile"`
	Repos   []Repository    `json:"repos"`
	Events  []ActivityEvent `json:"events"`
}

// MaxDisplayed caps both the repository list and the activity feed.
const MaxDisplayed = 6

// DisplayedRepos returns at most MaxDisplayed repositories in the order received.
func (s Snapshot) DisplayedRepos() []Repository {
	return firstN(s.Repos, MaxDisplayed)
}

// DisplayedEvents returns at most MaxDisplayed events in the order received.
func (s Snapshot) DisplayedEvents() []ActivityEvent {
	return firstN(s.Events, MaxDisplayed)
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
